package ports

import "context"

// SignatureVerifier checks a signature over a message for a public key. The
// encoding of keys and signatures is chain-specific and belongs to the
// implementation; the protocol core only consumes the boolean outcome.
type SignatureVerifier interface {
	Verify(ctx context.Context, pubkey string, message []byte, signature string) (bool, error)
}

// VerifierFunc adapts a function to the SignatureVerifier interface.
type VerifierFunc func(ctx context.Context, pubkey string, message []byte, signature string) (bool, error)

func (f VerifierFunc) Verify(ctx context.Context, pubkey string, message []byte, signature string) (bool, error) {
	return f(ctx, pubkey, message, signature)
}
