package engine

import (
	"log/slog"

	"github.com/rvcosta/txledger/internal/domain"
	"github.com/rvcosta/txledger/internal/metrics"
	"github.com/rvcosta/txledger/internal/store"
)

// Ledger replays fund-moving and dispute-family events into per-client
// account state. Apply must be called once per input event, in arrival
// order. The ledger owns its stores exclusively and is not safe for
// concurrent use; intra-account ordering is load-bearing and must never
// be reordered.
type Ledger struct {
	accounts     *store.AccountStore
	transactions *store.TransactionStore
	log          *slog.Logger
	metrics      metrics.Recorder
}

// NewLedger creates a Ledger over the given stores. Pass slog with a
// discarding handler and metrics.Nop{} when diagnostics are not wanted.
func NewLedger(
	accounts *store.AccountStore,
	transactions *store.TransactionStore,
	logger *slog.Logger,
	recorder metrics.Recorder,
) *Ledger {
	return &Ledger{
		accounts:     accounts,
		transactions: transactions,
		log:          logger,
		metrics:      recorder,
	}
}

// Apply applies a single event. A nil return means the event mutated the
// ledger; a sentinel error from the domain package means it was ignored
// without touching any state. Rejections never abort stream processing —
// the caller decides whether to surface them.
func (l *Ledger) Apply(e domain.Event) error {
	var err error
	switch e.Type {
	case domain.EventDeposit:
		err = l.deposit(e)
	case domain.EventWithdrawal:
		err = l.withdrawal(e)
	case domain.EventDispute:
		err = l.dispute(e)
	case domain.EventResolve:
		err = l.resolve(e)
	case domain.EventChargeback:
		err = l.chargeback(e)
	default:
		err = domain.ErrUnknownEventType
	}

	if err != nil {
		reason := domain.RejectReason(err)
		l.metrics.Rejected(string(e.Type), reason)
		l.log.Debug("event ignored",
			slog.String("type", string(e.Type)),
			slog.Uint64("client", uint64(e.Client)),
			slog.Uint64("tx", uint64(e.Tx)),
			slog.String("reason", reason),
		)
		return err
	}
	l.metrics.Applied(string(e.Type))
	return nil
}

func (l *Ledger) deposit(e domain.Event) error {
	acct := l.accounts.GetOrCreate(e.Client)
	if acct.Locked {
		return domain.ErrAccountLocked
	}
	if !e.Amount.IsPositive() {
		return domain.ErrNonPositiveAmount
	}
	if err := l.transactions.Create(&domain.Transaction{
		Tx:     e.Tx,
		Client: e.Client,
		Kind:   domain.TxKindDeposit,
		Amount: e.Amount,
		State:  domain.StateNormal,
	}); err != nil {
		return err
	}
	acct.Available = acct.Available.Add(e.Amount)
	return nil
}

func (l *Ledger) withdrawal(e domain.Event) error {
	acct := l.accounts.GetOrCreate(e.Client)
	if acct.Locked {
		return domain.ErrAccountLocked
	}
	if !e.Amount.IsPositive() {
		return domain.ErrNonPositiveAmount
	}
	// All or nothing: an insufficient-funds withdrawal leaves the account
	// untouched and records no transaction.
	if acct.Available.LessThan(e.Amount) {
		return domain.ErrInsufficientFunds
	}
	if err := l.transactions.Create(&domain.Transaction{
		Tx:     e.Tx,
		Client: e.Client,
		Kind:   domain.TxKindWithdrawal,
		Amount: e.Amount,
		State:  domain.StateNormal,
	}); err != nil {
		return err
	}
	acct.Available = acct.Available.Sub(e.Amount)
	return nil
}

// lookup locates the transaction referenced by a dispute-family event and
// verifies the event's client field against the recorded owner. The
// account is guaranteed non-nil on success since recording a transaction
// creates its account first.
func (l *Ledger) lookup(e domain.Event) (*domain.Transaction, *domain.Account, error) {
	tx := l.transactions.Get(e.Tx)
	if tx == nil {
		return nil, nil, domain.ErrUnknownTransaction
	}
	if tx.Client != e.Client {
		return nil, nil, domain.ErrClientMismatch
	}
	return tx, l.accounts.Get(tx.Client), nil
}

func (l *Ledger) dispute(e domain.Event) error {
	tx, acct, err := l.lookup(e)
	if err != nil {
		return err
	}
	if tx.State != domain.StateNormal {
		return domain.ErrInvalidTransition
	}
	// A lock blocks new deposits and withdrawals only; disputes on earlier
	// transactions still proceed. Available can go negative here when the
	// disputed funds were already withdrawn.
	acct.Available = acct.Available.Sub(tx.Amount)
	acct.Held = acct.Held.Add(tx.Amount)
	tx.State = domain.StateDisputed
	return nil
}

func (l *Ledger) resolve(e domain.Event) error {
	tx, acct, err := l.lookup(e)
	if err != nil {
		return err
	}
	if tx.State != domain.StateDisputed {
		return domain.ErrInvalidTransition
	}
	acct.Held = acct.Held.Sub(tx.Amount)
	acct.Available = acct.Available.Add(tx.Amount)
	tx.State = domain.StateResolved
	return nil
}

func (l *Ledger) chargeback(e domain.Event) error {
	tx, acct, err := l.lookup(e)
	if err != nil {
		return err
	}
	if tx.State != domain.StateDisputed {
		return domain.ErrInvalidTransition
	}
	// Charged-back funds leave the system; they do not return to available.
	acct.Held = acct.Held.Sub(tx.Amount)
	tx.State = domain.StateChargedBack
	acct.Locked = true
	return nil
}
