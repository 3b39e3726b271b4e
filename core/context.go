package core

// Mode identifiers. The set is protocol-defined and closed per version; new
// modes require a protocol version bump.
const (
	ModeWallet    = "wallet"
	ModeDelegated = "delegated"
	ModeIssuer    = "issuer"
)

// Proofs carries the auxiliary certificates supplied with a resolve request.
type Proofs struct {
	Certificate      *DelegationCertificate `json:"certificate,omitempty"`
	IssuerDelegation *IssuerDelegation      `json:"issuerDelegation,omitempty"`
}

// ValidationContext is the short-lived, per-call value handed to a strategy.
// It is constructed by the resolution engine and discarded after validation.
type ValidationContext struct {
	Code             *ActionCode
	Mode             string
	Certificate      *DelegationCertificate
	IssuerDelegation *IssuerDelegation
}

// ValidatedProof is the outcome of a successful strategy validation: the
// effective signer identity and the mode that authenticated it.
type ValidatedProof struct {
	Signer string
	Mode   string
}

// StrategyCapabilities describes what a strategy requires and supports. The
// engine checks supplied proofs against it before invoking the strategy.
type StrategyCapabilities struct {
	Mode                     string
	RequiresCertificate      bool
	RequiresIssuerDelegation bool
	MultiUse                 bool
}
