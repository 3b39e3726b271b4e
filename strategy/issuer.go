package strategy

import (
	"context"
	"fmt"

	"github.com/actioncodesorg/actioncodes/core"
	"github.com/actioncodesorg/actioncodes/ports"
)

// Issuer authenticates a code signed by an issuer key that the wallet has
// authorized for a class of intents. On top of the delegated proof chain, the
// issuer delegation carries a scope checked against the code's chain and
// metadata params before the signature may be accepted.
type Issuer struct {
	verifier    ports.SignatureVerifier
	revocations ports.RevocationChecker
	clock       ports.Clock
}

// NewIssuer creates the issuer-mode strategy.
func NewIssuer(verifier ports.SignatureVerifier, revocations ports.RevocationChecker, clock ports.Clock) *Issuer {
	return &Issuer{verifier: verifier, revocations: revocations, clock: clock}
}

func (i *Issuer) Mode() string {
	return core.ModeIssuer
}

func (i *Issuer) Capabilities() core.StrategyCapabilities {
	return core.StrategyCapabilities{
		Mode:                     core.ModeIssuer,
		RequiresIssuerDelegation: true,
		MultiUse:                 true,
	}
}

// Validate runs the two-stage verification against the issuer delegation,
// then verifies the code signature against the issuer key.
func (i *Issuer) Validate(ctx context.Context, vc *core.ValidationContext) (*core.ValidatedProof, error) {
	del := vc.IssuerDelegation
	if del == nil {
		return nil, fmt.Errorf("%w: issuer delegation", core.ErrMissingProof)
	}
	if err := i.checkDelegation(ctx, vc.Code, del); err != nil {
		return nil, err
	}

	if err := del.Scope.Admits(vc.Code); err != nil {
		return nil, err
	}

	code := vc.Code
	if code.Signature == "" {
		return nil, fmt.Errorf("%w: code signature is empty", core.ErrSignatureInvalid)
	}

	message, err := core.CodeMessage(code)
	if err != nil {
		return nil, err
	}

	ok, err := i.verifier.Verify(ctx, del.Issuer, message, code.Signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrSignatureInvalid, err)
	}
	if !ok {
		return nil, core.ErrSignatureInvalid
	}

	return &core.ValidatedProof{Signer: del.Issuer, Mode: core.ModeIssuer}, nil
}

func (i *Issuer) checkDelegation(ctx context.Context, code *core.ActionCode, del *core.IssuerDelegation) error {
	if err := del.Validate(); err != nil {
		return err
	}
	if del.Delegator != code.Pubkey {
		return fmt.Errorf("%w: delegation delegator does not match code pubkey", core.ErrCertificateInvalid)
	}
	if del.Expired(i.clock.Now()) {
		return core.ErrCertificateExpired
	}

	revoked, err := i.revocations.IsRevoked(ctx, del.ID)
	if err != nil {
		return fmt.Errorf("%w: revocation check failed: %v", core.ErrCertificateInvalid, err)
	}
	if revoked {
		return fmt.Errorf("%w: delegation revoked", core.ErrCertificateInvalid)
	}

	delMessage, err := del.Message()
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrCertificateInvalid, err)
	}
	ok, err := i.verifier.Verify(ctx, del.Delegator, delMessage, del.Signature)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrCertificateInvalid, err)
	}
	if !ok {
		return fmt.Errorf("%w: wallet signature does not verify", core.ErrCertificateInvalid)
	}
	return nil
}
