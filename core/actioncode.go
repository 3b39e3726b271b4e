package core

// Chain identifies a supported network.
type Chain string

const (
	ChainSolana Chain = "solana"
	ChainEVM    Chain = "evm"
)

// Supported reports whether the chain is part of the protocol's network set.
func (c Chain) Supported() bool {
	switch c {
	case ChainSolana, ChainEVM:
		return true
	}
	return false
}

// Status is the lifecycle state of an action code.
type Status string

const (
	StatusPending   Status = "pending"
	StatusResolved  Status = "resolved"
	StatusFinalized Status = "finalized"
	StatusExpired   Status = "expired"
	StatusError     Status = "error"
)

const (
	// CodeLength is the fixed length of an action code token.
	CodeLength = 8

	// CodeTTL is the validity window of a code in protocol milliseconds.
	CodeTTL int64 = 120_000
)

// Transaction is the optional payload attached to a code once resolved.
type Transaction struct {
	Transaction string `json:"transaction,omitempty"`
	TxSignature string `json:"txSignature,omitempty"`
	TxType      string `json:"txType,omitempty"`
}

// Equal reports whether two payloads carry the same content.
func (t *Transaction) Equal(o *Transaction) bool {
	if t == nil || o == nil {
		return t == o
	}
	return *t == *o
}

func (t *Transaction) clone() *Transaction {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Metadata is carried with a code but never inspected by the protocol core.
type Metadata struct {
	Description string            `json:"description,omitempty"`
	Params      map[string]string `json:"params,omitempty"`
}

// ActionCode is the unit of work being resolved. The JSON field names and
// their optionality are the wire contract for any persistence or transport
// layer built on top of this module.
type ActionCode struct {
	Code        string       `json:"code"`
	Pubkey      string       `json:"pubkey"`
	Timestamp   int64        `json:"timestamp"`
	Signature   string       `json:"signature"`
	Chain       Chain        `json:"chain"`
	Transaction *Transaction `json:"transaction,omitempty"`
	Metadata    *Metadata    `json:"metadata,omitempty"`
	ExpiresAt   int64        `json:"expiresAt"`
	Status      Status       `json:"status"`
}

// NewActionCode creates a pending code with the enforced two-minute window.
// ExpiresAt is derived from the timestamp and is never settable directly.
func NewActionCode(code, pubkey string, chain Chain, timestamp int64) ActionCode {
	return ActionCode{
		Code:      code,
		Pubkey:    pubkey,
		Chain:     chain,
		Timestamp: timestamp,
		ExpiresAt: timestamp + CodeTTL,
		Status:    StatusPending,
	}
}

// Expired reports whether the code's window has passed at now.
func (c *ActionCode) Expired(now int64) bool {
	return now > c.ExpiresAt
}

// Remaining returns how many protocol milliseconds of validity are left.
func (c *ActionCode) Remaining(now int64) int64 {
	if c.Expired(now) {
		return 0
	}
	return c.ExpiresAt - now
}

// EffectiveStatus derives the trustworthy status of a code at now. Expiration
// is a function of the clock, not a stored flag: any stored status other than
// finalized yields expired once the window has passed. Finalized codes stay
// finalized for read purposes.
func EffectiveStatus(c *ActionCode, now int64) Status {
	if c.Status == StatusFinalized {
		return StatusFinalized
	}
	if c.Expired(now) {
		return StatusExpired
	}
	return c.Status
}

// Validate checks the structural invariants of a code. It does not consult
// the clock and does not verify the signature.
func (c *ActionCode) Validate() error {
	if len(c.Code) != CodeLength {
		return ErrInvalidCode
	}
	if c.Pubkey == "" {
		return ErrInvalidCode
	}
	if !c.Chain.Supported() {
		return ErrUnsupportedChain
	}
	if c.ExpiresAt != c.Timestamp+CodeTTL {
		return ErrInvalidCode
	}
	if c.Transaction != nil {
		switch c.Status {
		case StatusResolved, StatusFinalized, StatusError:
		default:
			return ErrInvalidCode
		}
	}
	return nil
}
