package domain

import "errors"

// Sentinel errors for transaction rejections. None of these abort stream
// processing; the engine returns them so callers can count, log, or test
// against them.
var (
	ErrUnknownTransaction   = errors.New("unknown_transaction")
	ErrInvalidTransition    = errors.New("invalid_state_transition")
	ErrInsufficientFunds    = errors.New("insufficient_funds")
	ErrAccountLocked        = errors.New("account_locked")
	ErrClientMismatch       = errors.New("client_mismatch")
	ErrNonPositiveAmount    = errors.New("non_positive_amount")
	ErrDuplicateTransaction = errors.New("duplicate_transaction")
	ErrUnknownEventType     = errors.New("unknown_event_type")
)

var rejectSentinels = []error{
	ErrUnknownTransaction,
	ErrInvalidTransition,
	ErrInsufficientFunds,
	ErrAccountLocked,
	ErrClientMismatch,
	ErrNonPositiveAmount,
	ErrDuplicateTransaction,
	ErrUnknownEventType,
}

// RejectReason returns a stable snake_case label for a rejection error,
// suitable as a metrics dimension or log field. Errors outside the
// sentinel set map to "other".
func RejectReason(err error) string {
	for _, sentinel := range rejectSentinels {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "other"
}
