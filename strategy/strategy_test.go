package strategy

import (
	"context"
	"strings"

	"github.com/actioncodesorg/actioncodes/core"
)

// fakeVerifier accepts signatures of the form "by:<pubkey>" and counts calls.
type fakeVerifier struct {
	calls int
}

func (f *fakeVerifier) Verify(_ context.Context, pubkey string, _ []byte, signature string) (bool, error) {
	f.calls++
	return signature == "by:"+pubkey, nil
}

func signedCode(pubkey, signer string) core.ActionCode {
	code := core.NewActionCode("AB12CD34", pubkey, core.ChainSolana, 1000)
	code.Signature = "by:" + signer
	return code
}

func signedCertificate(delegator, delegate string, issuedAt, ttl int64) *core.DelegationCertificate {
	cert := core.NewDelegationCertificate(delegator, delegate, core.ChainSolana, issuedAt, ttl)
	cert.Signature = "by:" + delegator
	return cert
}

func signedIssuerDelegation(delegator, issuer string, scope core.IssuerScope, issuedAt, ttl int64) *core.IssuerDelegation {
	del := core.NewIssuerDelegation(delegator, issuer, scope, issuedAt, ttl)
	del.Signature = "by:" + delegator
	return del
}

func forge(signature string) string {
	return strings.Replace(signature, "by:", "forged:", 1)
}
