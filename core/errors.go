package core

import "errors"

var (
	ErrUnknownMode        = errors.New("unknown authentication mode")
	ErrDuplicateMode      = errors.New("authentication mode already registered")
	ErrMissingProof       = errors.New("required proof not supplied")
	ErrCertificateExpired = errors.New("delegation certificate has expired")
	ErrCertificateInvalid = errors.New("delegation certificate is invalid")
	ErrSignatureInvalid   = errors.New("invalid signature")
	ErrMessageMismatch    = errors.New("canonical message cannot be reconstructed")
	ErrCodeExpired        = errors.New("action code has expired")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrScopeViolation     = errors.New("code violates issuer scope")
	ErrInvalidCode        = errors.New("invalid action code")
	ErrUnsupportedChain   = errors.New("unsupported chain")
)
