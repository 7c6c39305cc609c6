package domain

import "github.com/shopspring/decimal"

// Account holds per-client balance state. Total is always derived from
// Available + Held and never stored. Locked is monotonic: once set it is
// never cleared.
type Account struct {
	Client    ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
}

// NewAccount creates an account with zero balances, unlocked.
func NewAccount(client ClientID) *Account {
	return &Account{
		Client:    client,
		Available: decimal.Zero,
		Held:      decimal.Zero,
	}
}

// Total returns Available + Held.
func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}
