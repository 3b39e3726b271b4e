package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actioncodesorg/actioncodes/adapters/revocation"
	"github.com/actioncodesorg/actioncodes/core"
	"github.com/actioncodesorg/actioncodes/ports"
)

func newDelegated(verifier ports.SignatureVerifier, now int64) (*Delegated, *revocation.Memory) {
	revocations := revocation.NewMemory()
	return NewDelegated(verifier, revocations, ports.FixedClock(now)), revocations
}

func TestDelegatedValidate(t *testing.T) {
	verifier := &fakeVerifier{}
	delegated, _ := newDelegated(verifier, 2000)

	code := signedCode("wallet-key", "authenticator-key")
	cert := signedCertificate("wallet-key", "authenticator-key", 1000, 3_600_000)

	proof, err := delegated.Validate(context.Background(), &core.ValidationContext{
		Code: &code, Mode: core.ModeDelegated, Certificate: cert,
	})
	require.NoError(t, err)

	assert.Equal(t, "authenticator-key", proof.Signer)
	assert.Equal(t, core.ModeDelegated, proof.Mode)
	assert.Equal(t, 2, verifier.calls, "certificate then code signature")
}

func TestDelegatedExpiredCertificateBeforeCodeSignature(t *testing.T) {
	verifier := &fakeVerifier{}
	delegated, _ := newDelegated(verifier, 10_000_000)

	// Code signature is cryptographically valid, certificate is expired.
	code := signedCode("wallet-key", "authenticator-key")
	cert := signedCertificate("wallet-key", "authenticator-key", 1000, 3_600_000)

	_, err := delegated.Validate(context.Background(), &core.ValidationContext{
		Code: &code, Mode: core.ModeDelegated, Certificate: cert,
	})
	assert.ErrorIs(t, err, core.ErrCertificateExpired)
	assert.Zero(t, verifier.calls, "no signature may be checked after an expired certificate")
}

func TestDelegatedRevokedCertificate(t *testing.T) {
	delegated, revocations := newDelegated(&fakeVerifier{}, 2000)

	code := signedCode("wallet-key", "authenticator-key")
	cert := signedCertificate("wallet-key", "authenticator-key", 1000, 3_600_000)
	require.NoError(t, revocations.Revoke(context.Background(), cert.ID))

	_, err := delegated.Validate(context.Background(), &core.ValidationContext{
		Code: &code, Mode: core.ModeDelegated, Certificate: cert,
	})
	assert.ErrorIs(t, err, core.ErrCertificateInvalid)
}

func TestDelegatedForgedCertificate(t *testing.T) {
	delegated, _ := newDelegated(&fakeVerifier{}, 2000)

	code := signedCode("wallet-key", "authenticator-key")
	cert := signedCertificate("wallet-key", "authenticator-key", 1000, 3_600_000)
	cert.Signature = forge(cert.Signature)

	_, err := delegated.Validate(context.Background(), &core.ValidationContext{
		Code: &code, Mode: core.ModeDelegated, Certificate: cert,
	})
	assert.ErrorIs(t, err, core.ErrCertificateInvalid)
}

func TestDelegatedDelegatorMismatch(t *testing.T) {
	delegated, _ := newDelegated(&fakeVerifier{}, 2000)

	code := signedCode("someone-else", "authenticator-key")
	cert := signedCertificate("wallet-key", "authenticator-key", 1000, 3_600_000)

	_, err := delegated.Validate(context.Background(), &core.ValidationContext{
		Code: &code, Mode: core.ModeDelegated, Certificate: cert,
	})
	assert.ErrorIs(t, err, core.ErrCertificateInvalid)
}

func TestDelegatedWrongAuthenticatorSignature(t *testing.T) {
	delegated, _ := newDelegated(&fakeVerifier{}, 2000)

	// Signed by the wallet itself, not by the delegated authenticator.
	code := signedCode("wallet-key", "wallet-key")
	cert := signedCertificate("wallet-key", "authenticator-key", 1000, 3_600_000)

	_, err := delegated.Validate(context.Background(), &core.ValidationContext{
		Code: &code, Mode: core.ModeDelegated, Certificate: cert,
	})
	assert.ErrorIs(t, err, core.ErrSignatureInvalid)
}

func TestDelegatedMissingCertificate(t *testing.T) {
	delegated, _ := newDelegated(&fakeVerifier{}, 2000)
	code := signedCode("wallet-key", "authenticator-key")

	_, err := delegated.Validate(context.Background(), &core.ValidationContext{
		Code: &code, Mode: core.ModeDelegated,
	})
	assert.ErrorIs(t, err, core.ErrMissingProof)
}

func TestDelegatedCapabilities(t *testing.T) {
	delegated, _ := newDelegated(&fakeVerifier{}, 2000)
	caps := delegated.Capabilities()

	assert.Equal(t, core.ModeDelegated, caps.Mode)
	assert.True(t, caps.RequiresCertificate)
	assert.False(t, caps.RequiresIssuerDelegation)
}
