package verifier

import (
	"context"
	"strings"

	"github.com/actioncodesorg/actioncodes/ports"
)

// Multi dispatches verification by key encoding: 0x-prefixed keys go to the
// EVM verifier, everything else to the Solana verifier. Useful for hosts that
// accept codes from more than one chain through a single engine.
type Multi struct {
	solana ports.SignatureVerifier
	evm    ports.SignatureVerifier
}

// NewMulti creates the dispatching verifier.
func NewMulti() *Multi {
	return &Multi{solana: NewSolana(), evm: NewEVM()}
}

func (m *Multi) Verify(ctx context.Context, pubkey string, message []byte, signature string) (bool, error) {
	if strings.HasPrefix(pubkey, "0x") {
		return m.evm.Verify(ctx, pubkey, message, signature)
	}
	return m.solana.Verify(ctx, pubkey, message, signature)
}
