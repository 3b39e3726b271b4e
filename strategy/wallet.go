package strategy

import (
	"context"
	"fmt"

	"github.com/actioncodesorg/actioncodes/core"
	"github.com/actioncodesorg/actioncodes/ports"
)

// Wallet authenticates a code signed directly by the wallet it was generated
// for.
type Wallet struct {
	verifier ports.SignatureVerifier
}

// NewWallet creates the wallet-mode strategy.
func NewWallet(verifier ports.SignatureVerifier) *Wallet {
	return &Wallet{verifier: verifier}
}

func (w *Wallet) Mode() string {
	return core.ModeWallet
}

func (w *Wallet) Capabilities() core.StrategyCapabilities {
	return core.StrategyCapabilities{Mode: core.ModeWallet}
}

// Validate verifies the code signature against the code's own pubkey over the
// canonical message.
func (w *Wallet) Validate(ctx context.Context, vc *core.ValidationContext) (*core.ValidatedProof, error) {
	code := vc.Code
	if code.Signature == "" {
		return nil, fmt.Errorf("%w: code signature is empty", core.ErrSignatureInvalid)
	}

	message, err := core.CodeMessage(code)
	if err != nil {
		return nil, err
	}

	ok, err := w.verifier.Verify(ctx, code.Pubkey, message, code.Signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrSignatureInvalid, err)
	}
	if !ok {
		return nil, core.ErrSignatureInvalid
	}

	return &core.ValidatedProof{Signer: code.Pubkey, Mode: core.ModeWallet}, nil
}
