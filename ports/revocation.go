package ports

import "context"

// RevocationChecker reports whether a delegation or issuer certificate has
// been revoked, keyed by its certificate ID.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, certificateID string) (bool, error)
}
