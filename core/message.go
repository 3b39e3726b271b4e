package core

import "encoding/json"

// codeMessage is the canonical form a signer commits to. Field order is fixed
// by the struct, so serialization is deterministic across processes.
type codeMessage struct {
	Code      string    `json:"code"`
	Pubkey    string    `json:"pubkey"`
	Timestamp int64     `json:"timestamp"`
	Chain     Chain     `json:"chain"`
	Metadata  *Metadata `json:"metadata,omitempty"`
}

// CodeMessage builds the canonical message for a code. All authentication
// modes verify their signatures over these bytes. Returns ErrMessageMismatch
// when the message cannot be reconstructed from the supplied fields.
func CodeMessage(c *ActionCode) ([]byte, error) {
	if c == nil || c.Code == "" || c.Pubkey == "" || c.Timestamp == 0 || c.Chain == "" {
		return nil, ErrMessageMismatch
	}
	msg, err := json.Marshal(codeMessage{
		Code:      c.Code,
		Pubkey:    c.Pubkey,
		Timestamp: c.Timestamp,
		Chain:     c.Chain,
		Metadata:  c.Metadata,
	})
	if err != nil {
		return nil, ErrMessageMismatch
	}
	return msg, nil
}
