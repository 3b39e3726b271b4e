package verifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// EVM verifies personal_sign-style secp256k1 signatures. The pubkey is a
// 0x-prefixed address; the signer is recovered from the signature and
// compared against it.
type EVM struct{}

// NewEVM creates an EVM signature verifier.
func NewEVM() *EVM {
	return &EVM{}
}

// Verify recovers the signer of a personal_sign signature over message and
// compares it to the expected address.
func (*EVM) Verify(_ context.Context, pubkey string, message []byte, signature string) (bool, error) {
	if !common.IsHexAddress(pubkey) {
		return false, fmt.Errorf("invalid address %q", pubkey)
	}

	sig, err := hexutil.Decode(signature)
	if err != nil {
		return false, fmt.Errorf("invalid hex signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return false, fmt.Errorf("invalid signature length %d", len(sig))
	}

	// personal_sign produces V as 27/28; go-ethereum expects 0/1.
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig = append([]byte(nil), sig...)
		sig[crypto.RecoveryIDOffset] -= 27
	}

	recovered, err := crypto.SigToPub(accounts.TextHash(message), sig)
	if err != nil {
		return false, nil
	}

	address := crypto.PubkeyToAddress(*recovered)
	return strings.EqualFold(address.Hex(), common.HexToAddress(pubkey).Hex()), nil
}
