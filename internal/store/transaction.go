package store

import (
	"github.com/rvcosta/txledger/internal/domain"
)

// TransactionStore records applied deposits and withdrawals by transaction
// id so dispute-family events can reference them. Like AccountStore, it is
// owned exclusively by the ledger engine and carries no locking.
type TransactionStore struct {
	transactions map[domain.TxID]*domain.Transaction
}

// NewTransactionStore creates an empty TransactionStore.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{
		transactions: make(map[domain.TxID]*domain.Transaction),
	}
}

// Create records a transaction. It returns domain.ErrDuplicateTransaction
// if the transaction id has already been recorded.
func (s *TransactionStore) Create(tx *domain.Transaction) error {
	if _, ok := s.transactions[tx.Tx]; ok {
		return domain.ErrDuplicateTransaction
	}
	s.transactions[tx.Tx] = tx
	return nil
}

// Get retrieves a recorded transaction, or nil if the id is unknown.
func (s *TransactionStore) Get(id domain.TxID) *domain.Transaction {
	return s.transactions[id]
}

// Len returns the number of recorded transactions.
func (s *TransactionStore) Len() int {
	return len(s.transactions)
}
