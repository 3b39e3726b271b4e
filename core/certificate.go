package core

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// DelegationCertificate is a wallet-signed statement authorizing a distinct
// authenticator key to sign action codes on the wallet's behalf. The ID is
// the revocation-checkable identifier.
type DelegationCertificate struct {
	ID        string `json:"id"`
	Delegator string `json:"delegator"`
	Delegate  string `json:"delegate"`
	Chain     Chain  `json:"chain"`
	IssuedAt  int64  `json:"issuedAt"`
	ExpiresAt int64  `json:"expiresAt"`
	Signature string `json:"signature"`
}

// NewDelegationCertificate creates an unsigned certificate valid for ttl
// protocol milliseconds.
func NewDelegationCertificate(delegator, delegate string, chain Chain, issuedAt, ttl int64) *DelegationCertificate {
	return &DelegationCertificate{
		ID:        uuid.New().String(),
		Delegator: delegator,
		Delegate:  delegate,
		Chain:     chain,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt + ttl,
	}
}

// Message returns the canonical bytes the delegator wallet signs. The
// signature field itself is excluded.
func (c *DelegationCertificate) Message() ([]byte, error) {
	if c.ID == "" || c.Delegator == "" || c.Delegate == "" {
		return nil, ErrMessageMismatch
	}
	unsigned := *c
	unsigned.Signature = ""
	msg, err := json.Marshal(unsigned)
	if err != nil {
		return nil, ErrMessageMismatch
	}
	return msg, nil
}

// Expired reports whether the certificate's validity window has passed.
func (c *DelegationCertificate) Expired(now int64) bool {
	return now > c.ExpiresAt
}

// Validate checks the structural invariants of a certificate.
func (c *DelegationCertificate) Validate() error {
	if c.ID == "" || c.Delegator == "" || c.Delegate == "" || c.Signature == "" {
		return fmt.Errorf("%w: missing fields", ErrCertificateInvalid)
	}
	if c.Delegator == c.Delegate {
		return fmt.Errorf("%w: delegate must differ from delegator", ErrCertificateInvalid)
	}
	if c.ExpiresAt <= c.IssuedAt {
		return fmt.Errorf("%w: empty validity window", ErrCertificateInvalid)
	}
	return nil
}

// IssuerScope constrains the codes an issuer key may sign. Empty slices mean
// unconstrained.
type IssuerScope struct {
	Chains []Chain  `json:"chains,omitempty"`
	Params []string `json:"params,omitempty"`
}

// Admits checks a code against the scope before the issuer signature may be
// accepted.
func (s IssuerScope) Admits(code *ActionCode) error {
	if len(s.Chains) > 0 {
		ok := false
		for _, c := range s.Chains {
			if c == code.Chain {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: chain %s not in issuer scope", ErrScopeViolation, code.Chain)
		}
	}
	if len(s.Params) > 0 && code.Metadata != nil {
		allowed := make(map[string]struct{}, len(s.Params))
		for _, p := range s.Params {
			allowed[p] = struct{}{}
		}
		for key := range code.Metadata.Params {
			if _, ok := allowed[key]; !ok {
				return fmt.Errorf("%w: param %q not in issuer scope", ErrScopeViolation, key)
			}
		}
	}
	return nil
}

// IssuerDelegation is a wallet-signed statement authorizing an issuer key to
// sign codes for a class of intents, restricted by an issuer scope.
type IssuerDelegation struct {
	ID        string      `json:"id"`
	Delegator string      `json:"delegator"`
	Issuer    string      `json:"issuer"`
	Scope     IssuerScope `json:"scope"`
	IssuedAt  int64       `json:"issuedAt"`
	ExpiresAt int64       `json:"expiresAt"`
	Signature string      `json:"signature"`
}

// NewIssuerDelegation creates an unsigned issuer delegation valid for ttl
// protocol milliseconds.
func NewIssuerDelegation(delegator, issuer string, scope IssuerScope, issuedAt, ttl int64) *IssuerDelegation {
	return &IssuerDelegation{
		ID:        uuid.New().String(),
		Delegator: delegator,
		Issuer:    issuer,
		Scope:     scope,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt + ttl,
	}
}

// Message returns the canonical bytes the delegator wallet signs.
func (d *IssuerDelegation) Message() ([]byte, error) {
	if d.ID == "" || d.Delegator == "" || d.Issuer == "" {
		return nil, ErrMessageMismatch
	}
	unsigned := *d
	unsigned.Signature = ""
	msg, err := json.Marshal(unsigned)
	if err != nil {
		return nil, ErrMessageMismatch
	}
	return msg, nil
}

// Expired reports whether the delegation's validity window has passed.
func (d *IssuerDelegation) Expired(now int64) bool {
	return now > d.ExpiresAt
}

// Validate checks the structural invariants of an issuer delegation.
func (d *IssuerDelegation) Validate() error {
	if d.ID == "" || d.Delegator == "" || d.Issuer == "" || d.Signature == "" {
		return fmt.Errorf("%w: missing fields", ErrCertificateInvalid)
	}
	if d.ExpiresAt <= d.IssuedAt {
		return fmt.Errorf("%w: empty validity window", ErrCertificateInvalid)
	}
	return nil
}
