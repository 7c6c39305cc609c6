package store

import (
	"github.com/google/btree"

	"github.com/rvcosta/txledger/internal/domain"
)

// AccountStore is an in-memory account index ordered by client id, so that
// snapshot export walks accounts in a deterministic ascending order. It is
// not synchronized: the ledger engine is the single writer, and the
// exporter only reads after the input stream is exhausted.
type AccountStore struct {
	accounts *btree.BTreeG[*domain.Account]
}

func accountLess(a, b *domain.Account) bool {
	return a.Client < b.Client
}

// NewAccountStore creates an empty AccountStore.
func NewAccountStore() *AccountStore {
	const degree = 32
	return &AccountStore{
		accounts: btree.NewG[*domain.Account](degree, accountLess),
	}
}

// Get retrieves the account for a client, or nil if the client has never
// been seen.
func (s *AccountStore) Get(client domain.ClientID) *domain.Account {
	acct, ok := s.accounts.Get(&domain.Account{Client: client})
	if !ok {
		return nil
	}
	return acct
}

// GetOrCreate retrieves the account for a client, lazily creating it with
// zero balances on first reference.
func (s *AccountStore) GetOrCreate(client domain.ClientID) *domain.Account {
	if acct := s.Get(client); acct != nil {
		return acct
	}
	acct := domain.NewAccount(client)
	s.accounts.ReplaceOrInsert(acct)
	return acct
}

// Len returns the number of accounts.
func (s *AccountStore) Len() int {
	return s.accounts.Len()
}

// Ascend walks accounts in ascending client id order until fn returns false.
func (s *AccountStore) Ascend(fn func(*domain.Account) bool) {
	s.accounts.Ascend(fn)
}
