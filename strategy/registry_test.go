package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actioncodesorg/actioncodes/core"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	wallet := NewWallet(&fakeVerifier{})

	require.NoError(t, registry.Register(wallet))

	resolved, err := registry.Resolve(core.ModeWallet)
	require.NoError(t, err)
	assert.Same(t, wallet, resolved)

	assert.ElementsMatch(t, []string{core.ModeWallet}, registry.Modes())
}

func TestRegistryDuplicateMode(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewWallet(&fakeVerifier{})))

	err := registry.Register(NewWallet(&fakeVerifier{}))
	assert.ErrorIs(t, err, core.ErrDuplicateMode)
}

func TestRegistryUnknownMode(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewWallet(&fakeVerifier{})))

	_, err := registry.Resolve("oauth")
	assert.ErrorIs(t, err, core.ErrUnknownMode)
}
