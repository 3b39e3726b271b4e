// Package actioncodes resolves short-lived, human-presentable action codes
// into verified, chain-agnostic intents. The Protocol facade bundles the
// default trust modes (wallet, delegated, issuer) over host-supplied
// signature verification, revocation checking and clock capabilities.
package actioncodes

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/actioncodesorg/actioncodes/adapters/revocation"
	"github.com/actioncodesorg/actioncodes/codegen"
	"github.com/actioncodesorg/actioncodes/core"
	"github.com/actioncodesorg/actioncodes/ports"
	"github.com/actioncodesorg/actioncodes/service"
	"github.com/actioncodesorg/actioncodes/strategy"
)

// Options configures a Protocol. Verifier is required; everything else has a
// working default.
type Options struct {
	// Verifier checks chain signatures. Required.
	Verifier ports.SignatureVerifier

	// Revocations answers certificate revocation checks. Defaults to an
	// in-memory list.
	Revocations ports.RevocationChecker

	// Clock supplies protocol time. Defaults to the system clock.
	Clock ports.Clock

	// Events, when set, receives status-change notifications.
	Events ports.EventPublisher

	// Logger defaults to the logrus standard logger.
	Logger logrus.FieldLogger

	// CodeSecret keys deterministic code derivation.
	CodeSecret string
}

// Protocol is the public entry point of the module.
type Protocol struct {
	engine *service.ResolutionEngine
	clock  ports.Clock
	secret string
}

// New creates a Protocol with the three protocol trust modes registered.
func New(opts Options) (*Protocol, error) {
	if opts.Verifier == nil {
		return nil, errors.New("a signature verifier is required")
	}
	if opts.Revocations == nil {
		opts.Revocations = revocation.NewMemory()
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}

	registry := strategy.NewRegistry()
	strategies := []strategy.Strategy{
		strategy.NewWallet(opts.Verifier),
		strategy.NewDelegated(opts.Verifier, opts.Revocations, opts.Clock),
		strategy.NewIssuer(opts.Verifier, opts.Revocations, opts.Clock),
	}
	for _, s := range strategies {
		if err := registry.Register(s); err != nil {
			return nil, err
		}
	}

	return &Protocol{
		engine: service.NewResolutionEngine(registry, opts.Clock, opts.Events, opts.Logger),
		clock:  opts.Clock,
		secret: opts.CodeSecret,
	}, nil
}

// GenerateCode derives a pending action code for pubkey at the current time.
func (p *Protocol) GenerateCode(pubkey string, chain core.Chain) core.ActionCode {
	return codegen.New(pubkey, chain, p.secret, p.clock)
}

// VerifyCodeDerivation checks that a presented code derives from its pubkey
// and timestamp under the protocol secret.
func (p *Protocol) VerifyCodeDerivation(code *core.ActionCode) error {
	return codegen.Verify(code, p.secret)
}

// Resolve authenticates a code and applies the requested lifecycle event.
func (p *Protocol) Resolve(ctx context.Context, req service.ResolveRequest) (core.ActionCode, error) {
	return p.engine.Resolve(ctx, req)
}

// RegisterStrategy adds a custom strategy. The protocol mode set is closed
// per version; registering a new mode implies a protocol version bump.
func (p *Protocol) RegisterStrategy(s strategy.Strategy) error {
	return p.engine.RegisterStrategy(s)
}

// Status derives the trustworthy status of a code at the current time.
func (p *Protocol) Status(code *core.ActionCode) core.Status {
	return p.engine.Status(code)
}
