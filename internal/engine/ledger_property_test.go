package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/rvcosta/txledger/internal/domain"
)

var eventTypes = []domain.EventType{
	domain.EventDeposit,
	domain.EventWithdrawal,
	domain.EventDispute,
	domain.EventResolve,
	domain.EventChargeback,
}

// genEvent draws a random event over a small id space so that dispute-family
// events frequently hit recorded transactions and duplicates occur.
func genEvent(t *rapid.T, label string) domain.Event {
	e := domain.Event{
		Type:   rapid.SampledFrom(eventTypes).Draw(t, label+"-type"),
		Client: domain.ClientID(rapid.IntRange(1, 4).Draw(t, label+"-client")),
		Tx:     domain.TxID(rapid.IntRange(1, 16).Draw(t, label+"-tx")),
	}
	if e.Type.FundMoving() {
		// Includes zero and negative amounts to exercise rejection.
		e.Amount = decimal.New(int64(rapid.IntRange(-10_000, 1_000_000).Draw(t, label+"-amount")), -domain.Precision)
	}
	return e
}

type accountSnap struct {
	available string
	held      string
	locked    bool
}

// snapshotState captures every account and transaction state in a
// comparable form.
func snapshotState(l *Ledger) (map[domain.ClientID]accountSnap, map[domain.TxID]domain.DisputeState) {
	accts := make(map[domain.ClientID]accountSnap)
	l.accounts.Ascend(func(acct *domain.Account) bool {
		accts[acct.Client] = accountSnap{
			available: acct.Available.StringFixed(domain.Precision),
			held:      acct.Held.StringFixed(domain.Precision),
			locked:    acct.Locked,
		}
		return true
	})
	states := make(map[domain.TxID]domain.DisputeState)
	for tx := domain.TxID(0); tx <= 16; tx++ {
		if rec := l.transactions.Get(tx); rec != nil {
			states[tx] = rec.State
		}
	}
	return accts, states
}

// Held funds can only come from a matched recorded amount, so held never
// goes negative no matter the event sequence.
func TestProperty_HeldNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l, accounts, _ := newTestLedger()
		n := rapid.IntRange(1, 80).Draw(t, "numEvents")

		for i := 0; i < n; i++ {
			_ = l.Apply(genEvent(t, "e"))
			accounts.Ascend(func(acct *domain.Account) bool {
				if acct.Held.IsNegative() {
					t.Fatalf("client %d: held went negative: %s", acct.Client, acct.Held)
				}
				return true
			})
		}
	})
}

// Once locked, an account stays locked, and no deposit or withdrawal
// against a locked account changes its balances.
func TestProperty_LockIsMonotonicAndFreezesFunds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l, accounts, _ := newTestLedger()
		n := rapid.IntRange(1, 80).Draw(t, "numEvents")
		locked := make(map[domain.ClientID]bool)

		for i := 0; i < n; i++ {
			e := genEvent(t, "e")

			// Balances of a locked account immediately before a fund-moving
			// event against it.
			var before *accountSnap
			if e.Type.FundMoving() {
				if acct := accounts.Get(e.Client); acct != nil && acct.Locked {
					before = &accountSnap{
						available: acct.Available.StringFixed(domain.Precision),
						held:      acct.Held.StringFixed(domain.Precision),
						locked:    true,
					}
				}
			}

			_ = l.Apply(e)

			accounts.Ascend(func(acct *domain.Account) bool {
				if locked[acct.Client] && !acct.Locked {
					t.Fatalf("client %d: locked flag was cleared", acct.Client)
				}
				if acct.Locked {
					locked[acct.Client] = true
				}
				return true
			})

			if before != nil {
				acct := accounts.Get(e.Client)
				if !acct.Locked {
					t.Fatalf("client %d: locked flag was cleared", e.Client)
				}
				if acct.Available.StringFixed(domain.Precision) != before.available ||
					acct.Held.StringFixed(domain.Precision) != before.held {
					t.Fatalf("client %d: %s on locked account moved funds", e.Client, e.Type)
				}
			}
		}
	})
}

// Any rejected event is a strict no-op: the full ledger state is identical
// before and after.
func TestProperty_RejectedEventsLeaveStateUnchanged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l, _, _ := newTestLedger()
		n := rapid.IntRange(1, 80).Draw(t, "numEvents")

		for i := 0; i < n; i++ {
			e := genEvent(t, "e")
			beforeAccts, beforeStates := snapshotState(l)
			if err := l.Apply(e); err == nil {
				continue
			}
			afterAccts, afterStates := snapshotState(l)

			// Lazy account creation on a rejected fund-moving event is the one
			// allowed side effect; the new account must be empty and is
			// excluded from the comparison below.
			if _, existed := beforeAccts[e.Client]; !existed && e.Type.FundMoving() {
				if snap, ok := afterAccts[e.Client]; ok {
					if snap.available != "0.0000" || snap.held != "0.0000" || snap.locked {
						t.Fatalf("rejected %s created a non-empty account: %+v", e.Type, snap)
					}
					delete(afterAccts, e.Client)
				}
			}

			if len(beforeAccts) != len(afterAccts) || len(beforeStates) != len(afterStates) {
				t.Fatalf("rejected %s changed entity counts", e.Type)
			}
			for client, before := range beforeAccts {
				if afterAccts[client] != before {
					t.Fatalf("rejected %s mutated client %d: %+v → %+v", e.Type, client, before, afterAccts[client])
				}
			}
			for tx, before := range beforeStates {
				if afterStates[tx] != before {
					t.Fatalf("rejected %s mutated tx %d state: %s → %s", e.Type, tx, before, afterStates[tx])
				}
			}
		}
	})
}

// Applying the same dispute-family event twice in a row is equivalent to
// applying it once: the second application finds the record out of the
// required state and is ignored.
func TestProperty_DisputeFamilyRepeatIsNoOp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l, _, _ := newTestLedger()
		n := rapid.IntRange(0, 60).Draw(t, "numEvents")
		for i := 0; i < n; i++ {
			_ = l.Apply(genEvent(t, "prefix"))
		}

		e := genEvent(t, "repeated")
		if e.Type.FundMoving() {
			e.Type = domain.EventDispute
		}

		_ = l.Apply(e)
		onceAccts, onceStates := snapshotState(l)
		if err := l.Apply(e); err == nil {
			t.Fatalf("second %s on tx %d was applied, want rejection", e.Type, e.Tx)
		}
		twiceAccts, twiceStates := snapshotState(l)

		for client, want := range onceAccts {
			if twiceAccts[client] != want {
				t.Fatalf("repeated %s changed client %d: %+v → %+v", e.Type, client, want, twiceAccts[client])
			}
		}
		for tx, want := range onceStates {
			if twiceStates[tx] != want {
				t.Fatalf("repeated %s changed tx %d state: %s → %s", e.Type, tx, want, twiceStates[tx])
			}
		}
	})
}
