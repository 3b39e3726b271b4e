package strategy

import (
	"fmt"
	"sync"

	"github.com/actioncodesorg/actioncodes/core"
)

// Registry maps mode identifiers to strategies. It is read-mostly: lookups
// take a read lock so dynamic registration never exposes a partially updated
// table to in-flight resolutions.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// Register adds a strategy under its mode identifier.
func (r *Registry) Register(s Strategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	mode := s.Mode()
	if _, exists := r.strategies[mode]; exists {
		return fmt.Errorf("%w: %s", core.ErrDuplicateMode, mode)
	}
	r.strategies[mode] = s
	return nil
}

// Resolve returns the strategy for a mode identifier.
func (r *Registry) Resolve(mode string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.strategies[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownMode, mode)
	}
	return s, nil
}

// Modes returns the registered mode identifiers.
func (r *Registry) Modes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	modes := make([]string, 0, len(r.strategies))
	for mode := range r.strategies {
		modes = append(modes, mode)
	}
	return modes
}
