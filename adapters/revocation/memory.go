// Package revocation provides reference implementations of the certificate
// revocation checker port.
package revocation

import (
	"context"
	"sync"
)

// Memory is an in-memory revocation list, primarily for tests and
// single-instance deployments.
type Memory struct {
	mu      sync.RWMutex
	revoked map[string]struct{}
}

// NewMemory creates an empty in-memory revocation list.
func NewMemory() *Memory {
	return &Memory{revoked: make(map[string]struct{})}
}

// Revoke marks a certificate ID as revoked.
func (m *Memory) Revoke(_ context.Context, certificateID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.revoked[certificateID] = struct{}{}
	return nil
}

// IsRevoked reports whether a certificate ID has been revoked.
func (m *Memory) IsRevoked(_ context.Context, certificateID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.revoked[certificateID]
	return ok, nil
}
