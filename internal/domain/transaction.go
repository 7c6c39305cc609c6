package domain

import "github.com/shopspring/decimal"

// ClientID identifies an account owner.
type ClientID uint16

// TxID identifies a fund-moving transaction. IDs are unique across the
// whole input stream and never reused.
type TxID uint32

// EventType tags an input event. The values double as the CSV type tokens.
type EventType string

const (
	EventDeposit    EventType = "deposit"
	EventWithdrawal EventType = "withdrawal"
	EventDispute    EventType = "dispute"
	EventResolve    EventType = "resolve"
	EventChargeback EventType = "chargeback"
)

// FundMoving reports whether events of this type carry an amount. Only
// deposits and withdrawals do; the dispute family references a recorded
// transaction and takes its amount from there.
func (t EventType) FundMoving() bool {
	return t == EventDeposit || t == EventWithdrawal
}

// Event is a single well-typed input record. Amount is meaningful only
// when Type is fund-moving.
type Event struct {
	Type   EventType
	Client ClientID
	Tx     TxID
	Amount decimal.Decimal
}

// TxKind distinguishes recorded deposits from recorded withdrawals.
type TxKind string

const (
	TxKindDeposit    TxKind = "deposit"
	TxKindWithdrawal TxKind = "withdrawal"
)

// DisputeState is the lifecycle state of a recorded transaction:
// normal → disputed → {resolved, charged_back}. The last two are terminal.
type DisputeState string

const (
	StateNormal      DisputeState = "normal"
	StateDisputed    DisputeState = "disputed"
	StateResolved    DisputeState = "resolved"
	StateChargedBack DisputeState = "charged_back"
)

// Transaction is a recorded deposit or withdrawal — the only events the
// dispute family can reference.
type Transaction struct {
	Tx     TxID
	Client ClientID
	Kind   TxKind
	Amount decimal.Decimal
	State  DisputeState
}
