package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingCode() ActionCode {
	code := NewActionCode("AB12CD34", "user-pubkey", ChainSolana, 1000)
	code.Signature = "code-sig"
	return code
}

func TestAttachTransaction(t *testing.T) {
	code := pendingCode()
	tx := &Transaction{Transaction: "tx-bytes", TxType: "transfer"}

	updated, err := Transition(code, EventAttachTransaction, tx, 2000)
	require.NoError(t, err)

	assert.Equal(t, StatusResolved, updated.Status)
	assert.True(t, tx.Equal(updated.Transaction))

	// Input is never mutated.
	assert.Equal(t, StatusPending, code.Status)
	assert.Nil(t, code.Transaction)

	// The attached payload is a copy, not an alias.
	tx.Transaction = "changed"
	assert.Equal(t, "tx-bytes", updated.Transaction.Transaction)
}

func TestAttachWithoutTransaction(t *testing.T) {
	_, err := Transition(pendingCode(), EventAttachTransaction, nil, 2000)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAttachIdempotent(t *testing.T) {
	code := pendingCode()
	tx := &Transaction{Transaction: "tx-bytes"}

	resolved, err := Transition(code, EventAttachTransaction, tx, 2000)
	require.NoError(t, err)

	again, err := Transition(resolved, EventAttachTransaction, &Transaction{Transaction: "tx-bytes"}, 3000)
	require.NoError(t, err)
	assert.Equal(t, resolved, again)

	_, err = Transition(resolved, EventAttachTransaction, &Transaction{Transaction: "different"}, 3000)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestConfirmSignature(t *testing.T) {
	code := pendingCode()
	resolved, err := Transition(code, EventAttachTransaction, &Transaction{Transaction: "tx-bytes"}, 2000)
	require.NoError(t, err)

	// No transaction signature evidence yet.
	_, err = Transition(resolved, EventConfirmSignature, nil, 3000)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	finalized, err := Transition(resolved, EventConfirmSignature, &Transaction{TxSignature: "tx-sig"}, 3000)
	require.NoError(t, err)
	assert.Equal(t, StatusFinalized, finalized.Status)
	assert.Equal(t, "tx-sig", finalized.Transaction.TxSignature)
	assert.Equal(t, "tx-bytes", finalized.Transaction.Transaction)

	// The evidence is recorded on a copy.
	assert.Empty(t, resolved.Transaction.TxSignature)
}

func TestConfirmSkippingResolved(t *testing.T) {
	_, err := Transition(pendingCode(), EventConfirmSignature, &Transaction{TxSignature: "tx-sig"}, 2000)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestValidationFailureFromAnyNonTerminal(t *testing.T) {
	code := pendingCode()

	errored, err := Transition(code, EventValidationFailure, nil, 2000)
	require.NoError(t, err)
	assert.Equal(t, StatusError, errored.Status)

	resolved, err := Transition(code, EventAttachTransaction, &Transaction{Transaction: "tx"}, 2000)
	require.NoError(t, err)
	errored, err = Transition(resolved, EventValidationFailure, nil, 3000)
	require.NoError(t, err)
	assert.Equal(t, StatusError, errored.Status)
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	for _, status := range []Status{StatusFinalized, StatusError} {
		code := pendingCode()
		code.Status = status
		for _, ev := range []Event{EventAttachTransaction, EventConfirmSignature, EventValidationFailure} {
			_, err := Transition(code, ev, &Transaction{Transaction: "tx", TxSignature: "sig"}, 2000)
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s in %s", ev, status)
		}
	}
}

func TestExpiryPrecedesAllEvents(t *testing.T) {
	code := pendingCode()

	for _, ev := range []Event{EventAttachTransaction, EventConfirmSignature, EventValidationFailure} {
		_, err := Transition(code, ev, &Transaction{Transaction: "tx", TxSignature: "sig"}, 121001)
		assert.ErrorIs(t, err, ErrCodeExpired, "%s past expiry", ev)
	}
}

func TestWindowBoundary(t *testing.T) {
	code := pendingCode()

	// expiresAt == 121000: still resolvable right up to the boundary.
	updated, err := Transition(code, EventAttachTransaction, &Transaction{Transaction: "tx"}, 120000)
	require.NoError(t, err)
	assert.Equal(t, StatusResolved, updated.Status)

	_, err = Transition(code, EventAttachTransaction, &Transaction{Transaction: "tx"}, 121001)
	assert.ErrorIs(t, err, ErrCodeExpired)
}

func TestExpiredStatusNeverWritten(t *testing.T) {
	code := pendingCode()

	out, err := Transition(code, EventAttachTransaction, &Transaction{Transaction: "tx"}, 121001)
	assert.ErrorIs(t, err, ErrCodeExpired)
	assert.NotEqual(t, StatusExpired, out.Status, "expired is derived, not stored")
}
