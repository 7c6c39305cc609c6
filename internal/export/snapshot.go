// Package export projects final ledger state into account snapshots. It is
// a pure projection: no validation, no errors.
package export

import (
	"github.com/shopspring/decimal"

	"github.com/rvcosta/txledger/internal/domain"
	"github.com/rvcosta/txledger/internal/store"
)

// Snapshot is one exported account row. Total is recomputed at export time
// and never read from stored state.
type Snapshot struct {
	Client    domain.ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// Accounts projects the final account states in ascending client id order.
func Accounts(accounts *store.AccountStore) []Snapshot {
	snaps := make([]Snapshot, 0, accounts.Len())
	accounts.Ascend(func(acct *domain.Account) bool {
		snaps = append(snaps, Snapshot{
			Client:    acct.Client,
			Available: acct.Available,
			Held:      acct.Held,
			Total:     acct.Total(),
			Locked:    acct.Locked,
		})
		return true
	})
	return snaps
}
