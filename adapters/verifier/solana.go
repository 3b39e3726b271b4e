// Package verifier provides chain-specific implementations of the signature
// verifier port.
package verifier

import (
	"context"
	"crypto/ed25519"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
)

// Solana verifies ed25519 signatures over base58-encoded keys and signatures.
type Solana struct{}

// NewSolana creates a Solana signature verifier.
func NewSolana() *Solana {
	return &Solana{}
}

// Verify checks an ed25519 signature. Pubkey must be a base58-encoded 32-byte
// key, signature a base58-encoded 64-byte signature.
func (*Solana) Verify(_ context.Context, pubkey string, message []byte, signature string) (bool, error) {
	key := base58.Decode(pubkey)
	if len(key) != ed25519.PublicKeySize {
		return false, fmt.Errorf("invalid base58 public key: must decode to %d bytes", ed25519.PublicKeySize)
	}
	sig := base58.Decode(signature)
	if len(sig) != ed25519.SignatureSize {
		return false, fmt.Errorf("invalid base58 signature: must decode to %d bytes", ed25519.SignatureSize)
	}
	return ed25519.Verify(ed25519.PublicKey(key), message, sig), nil
}
