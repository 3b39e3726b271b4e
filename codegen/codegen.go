// Package codegen derives action code tokens. Codes are deterministic over
// the user's pubkey and the active time window, so independent parties
// holding the shared secret derive the same token without coordination.
package codegen

import (
	"crypto/sha256"
	"fmt"
	"regexp"

	"github.com/actioncodesorg/actioncodes/core"
	"github.com/actioncodesorg/actioncodes/ports"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var codePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// WindowStart truncates a timestamp to the start of its code window.
func WindowStart(timestamp int64) int64 {
	return timestamp - timestamp%core.CodeTTL
}

// DeriveCode computes the 8-character token for a pubkey within the window
// containing timestamp. The same inputs always produce the same token.
func DeriveCode(pubkey string, timestamp int64, secret string) string {
	seed := fmt.Sprintf("%s:%d:%s", pubkey, WindowStart(timestamp), secret)
	digest := sha256.Sum256([]byte(seed))

	code := make([]byte, core.CodeLength)
	for i := range code {
		code[i] = charset[int(digest[i])%len(charset)]
	}
	return string(code)
}

// ValidFormat reports whether a token has the expected shape.
func ValidFormat(code string) bool {
	return codePattern.MatchString(code)
}

// New generates a pending action code for pubkey at the current time.
func New(pubkey string, chain core.Chain, secret string, clock ports.Clock) core.ActionCode {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	now := clock.Now()
	return core.NewActionCode(DeriveCode(pubkey, now, secret), pubkey, chain, now)
}

// Verify re-derives the token for a code's pubkey and timestamp and checks it
// matches the one presented.
func Verify(c *core.ActionCode, secret string) error {
	if !ValidFormat(c.Code) {
		return core.ErrInvalidCode
	}
	if DeriveCode(c.Pubkey, c.Timestamp, secret) != c.Code {
		return fmt.Errorf("%w: code does not derive from pubkey and timestamp", core.ErrInvalidCode)
	}
	return nil
}
