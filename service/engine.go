// Package service orchestrates action code resolution: strategy selection,
// proof validation and lifecycle transitions.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/actioncodesorg/actioncodes/core"
	"github.com/actioncodesorg/actioncodes/ports"
	"github.com/actioncodesorg/actioncodes/strategy"
)

// ResolveRequest is a single resolution attempt: the code under resolution,
// the trust mode to authenticate it under, the auxiliary proofs that mode
// requires, and the lifecycle event being requested.
type ResolveRequest struct {
	Code        core.ActionCode   `json:"code"`
	Mode        string            `json:"mode"`
	Proofs      core.Proofs       `json:"proofs"`
	Event       core.Event        `json:"event"`
	Transaction *core.Transaction `json:"transaction,omitempty"`
}

// ResolutionEngine is the sole entry point for resolving action codes. It is
// stateless across calls and safe for unlimited parallel invocation; the only
// shared state is the read-mostly strategy registry.
type ResolutionEngine struct {
	registry *strategy.Registry
	clock    ports.Clock
	events   ports.EventPublisher
	log      logrus.FieldLogger
}

// NewResolutionEngine creates an engine over the given registry. The event
// publisher may be nil when cross-instance notifications are not needed.
func NewResolutionEngine(registry *strategy.Registry, clock ports.Clock, events ports.EventPublisher, log logrus.FieldLogger) *ResolutionEngine {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ResolutionEngine{
		registry: registry,
		clock:    clock,
		events:   events,
		log:      log,
	}
}

// RegisterStrategy adds a strategy to the engine's registry.
func (e *ResolutionEngine) RegisterStrategy(s strategy.Strategy) error {
	return e.registry.Register(s)
}

// Status derives the trustworthy status of a code at the current time.
func (e *ResolutionEngine) Status(code *core.ActionCode) core.Status {
	return core.EffectiveStatus(code, e.clock.Now())
}

// Resolve authenticates the code under the requested mode and applies the
// requested lifecycle transition. The input code is never mutated: on both
// success and validation failure the returned code reflects the applied
// transition, so callers can diff old and new state and persist the result.
func (e *ResolutionEngine) Resolve(ctx context.Context, req ResolveRequest) (core.ActionCode, error) {
	code := req.Code
	now := e.clock.Now()
	log := e.log.WithFields(logrus.Fields{"code": code.Code, "mode": req.Mode})

	// Expiration precedes everything else. Expected and frequent, so no
	// anomaly logging.
	if core.EffectiveStatus(&code, now) == core.StatusExpired {
		log.Debug("resolution attempt on expired code")
		return code, core.ErrCodeExpired
	}

	strat, err := e.registry.Resolve(req.Mode)
	if err != nil {
		return e.fail(ctx, code, err)
	}

	if err := checkProofs(strat.Capabilities(), req.Proofs); err != nil {
		return e.fail(ctx, code, err)
	}

	if err := code.Validate(); err != nil {
		return e.fail(ctx, code, err)
	}

	vc := &core.ValidationContext{
		Code:             &code,
		Mode:             req.Mode,
		Certificate:      req.Proofs.Certificate,
		IssuerDelegation: req.Proofs.IssuerDelegation,
	}
	proof, err := strat.Validate(ctx, vc)
	if err != nil {
		if errors.Is(err, core.ErrSignatureInvalid) || errors.Is(err, core.ErrCertificateInvalid) {
			log.WithError(err).Warn("cryptographic verification failed")
		} else {
			log.WithError(err).Debug("strategy validation failed")
		}
		return e.fail(ctx, code, err)
	}

	updated, err := core.Transition(code, req.Event, req.Transaction, e.clock.Now())
	if err != nil {
		log.WithError(err).Debug("transition rejected")
		return code, err
	}

	e.publish(ctx, &updated, code.Status)
	log.WithFields(logrus.Fields{"signer": proof.Signer, "status": updated.Status}).Debug("code resolved")
	return updated, nil
}

// fail applies the validation-failure transition so the caller retains an
// auditable error record, and surfaces the underlying cause.
func (e *ResolutionEngine) fail(ctx context.Context, code core.ActionCode, cause error) (core.ActionCode, error) {
	errored, terr := core.Transition(code, core.EventValidationFailure, nil, e.clock.Now())
	if terr != nil {
		return code, cause
	}
	e.publish(ctx, &errored, code.Status)
	return errored, cause
}

func (e *ResolutionEngine) publish(ctx context.Context, code *core.ActionCode, previous core.Status) {
	if e.events == nil || code.Status == previous {
		return
	}
	if err := e.events.PublishStatusChange(ctx, code, previous); err != nil {
		// The transition already happened; notification is best effort.
		e.log.WithError(err).Warn("failed to publish status change")
	}
}

func checkProofs(caps core.StrategyCapabilities, proofs core.Proofs) error {
	if caps.RequiresCertificate && proofs.Certificate == nil {
		return fmt.Errorf("%w: %s requires a delegation certificate", core.ErrMissingProof, caps.Mode)
	}
	if caps.RequiresIssuerDelegation && proofs.IssuerDelegation == nil {
		return fmt.Errorf("%w: %s requires an issuer delegation", core.ErrMissingProof, caps.Mode)
	}
	return nil
}
