package core

import "fmt"

// Event is a requested lifecycle transition.
type Event string

const (
	EventAttachTransaction Event = "attach-transaction"
	EventConfirmSignature  Event = "confirm-signature"
	EventValidationFailure Event = "validation-failure"
)

// Transition applies ev to code at now and returns the updated code. It is a
// pure function: the input is never mutated, callers can diff old and new
// values. The expiration check runs before any requested event, so an expired
// code refuses every transition with ErrCodeExpired. The tx argument carries
// the payload for attach-transaction and, optionally, the transaction
// signature evidence for confirm-signature.
func Transition(code ActionCode, ev Event, tx *Transaction, now int64) (ActionCode, error) {
	switch code.Status {
	case StatusFinalized, StatusError:
		return code, fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, code.Status)
	}

	if code.Expired(now) || code.Status == StatusExpired {
		return code, ErrCodeExpired
	}

	if ev == EventValidationFailure {
		out := code
		out.Status = StatusError
		return out, nil
	}

	switch code.Status {
	case StatusPending:
		if ev == EventAttachTransaction {
			if tx == nil {
				return code, fmt.Errorf("%w: attach-transaction without a transaction", ErrInvalidTransition)
			}
			out := code
			out.Transaction = tx.clone()
			out.Status = StatusResolved
			return out, nil
		}

	case StatusResolved:
		switch ev {
		case EventAttachTransaction:
			// Re-attaching the identical payload is idempotent.
			if tx.Equal(code.Transaction) {
				return code, nil
			}
			return code, fmt.Errorf("%w: transaction already attached", ErrInvalidTransition)

		case EventConfirmSignature:
			out := code
			if tx != nil && tx.TxSignature != "" {
				out.Transaction = code.Transaction.clone()
				if out.Transaction == nil {
					out.Transaction = &Transaction{}
				}
				out.Transaction.TxSignature = tx.TxSignature
			}
			if out.Transaction == nil || out.Transaction.TxSignature == "" {
				return code, fmt.Errorf("%w: confirm-signature without transaction signature", ErrInvalidTransition)
			}
			out.Status = StatusFinalized
			return out, nil
		}
	}

	return code, fmt.Errorf("%w: %s not allowed in %s", ErrInvalidTransition, ev, code.Status)
}
