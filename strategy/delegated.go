package strategy

import (
	"context"
	"fmt"

	"github.com/actioncodesorg/actioncodes/core"
	"github.com/actioncodesorg/actioncodes/ports"
)

// Delegated authenticates a code signed by an authenticator key that the
// wallet has authorized through a delegation certificate. Certificate checks
// run before the code signature is ever examined.
type Delegated struct {
	verifier    ports.SignatureVerifier
	revocations ports.RevocationChecker
	clock       ports.Clock
}

// NewDelegated creates the delegated-mode strategy.
func NewDelegated(verifier ports.SignatureVerifier, revocations ports.RevocationChecker, clock ports.Clock) *Delegated {
	return &Delegated{verifier: verifier, revocations: revocations, clock: clock}
}

func (d *Delegated) Mode() string {
	return core.ModeDelegated
}

func (d *Delegated) Capabilities() core.StrategyCapabilities {
	return core.StrategyCapabilities{
		Mode:                core.ModeDelegated,
		RequiresCertificate: true,
		MultiUse:            true,
	}
}

// Validate runs the two-stage verification: certificate first (structure,
// expiry, revocation, wallet signature), then the code signature against the
// authenticator key named in the certificate.
func (d *Delegated) Validate(ctx context.Context, vc *core.ValidationContext) (*core.ValidatedProof, error) {
	cert := vc.Certificate
	if cert == nil {
		return nil, fmt.Errorf("%w: delegation certificate", core.ErrMissingProof)
	}
	if err := d.checkCertificate(ctx, vc.Code, cert); err != nil {
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

	ok, err := d.verifier.Verify(ctx, cert.Delegate, message, code.Signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrSignatureInvalid, err)
	}
	if !ok {
		return nil, core.ErrSignatureInvalid
	}

	return &core.ValidatedProof{Signer: cert.Delegate, Mode: core.ModeDelegated}, nil
}

func (d *Delegated) checkCertificate(ctx context.Context, code *core.ActionCode, cert *core.DelegationCertificate) error {
	if err := cert.Validate(); err != nil {
		return err
	}
	if cert.Delegator != code.Pubkey {
		return fmt.Errorf("%w: certificate delegator does not match code pubkey", core.ErrCertificateInvalid)
	}
	if cert.Expired(d.clock.Now()) {
		return core.ErrCertificateExpired
	}

	revoked, err := d.revocations.IsRevoked(ctx, cert.ID)
	if err != nil {
		return fmt.Errorf("%w: revocation check failed: %v", core.ErrCertificateInvalid, err)
	}
	if revoked {
		return fmt.Errorf("%w: certificate revoked", core.ErrCertificateInvalid)
	}

	certMessage, err := cert.Message()
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrCertificateInvalid, err)
	}
	ok, err := d.verifier.Verify(ctx, cert.Delegator, certMessage, cert.Signature)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrCertificateInvalid, err)
	}
	if !ok {
		return fmt.Errorf("%w: wallet signature does not verify", core.ErrCertificateInvalid)
	}
	return nil
}
