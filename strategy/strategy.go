// Package strategy implements the authentication trust models an action code
// can be verified under. Each strategy reconstructs the canonical message for
// the code, checks whatever proof chain its mode requires, and hands the
// cryptographic work to the injected signature verifier.
package strategy

import (
	"context"

	"github.com/actioncodesorg/actioncodes/core"
)

// Strategy authenticates an action code under one trust model.
type Strategy interface {
	// Mode returns the stable mode identifier.
	Mode() string

	// Capabilities returns the proofs this strategy requires and the
	// features it supports.
	Capabilities() core.StrategyCapabilities

	// Validate authenticates the code in the context, returning the
	// effective signer on success.
	Validate(ctx context.Context, vc *core.ValidationContext) (*core.ValidatedProof, error)
}
