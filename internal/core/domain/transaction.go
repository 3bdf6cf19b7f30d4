package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// TransactionRecord is a value-object transfer request. It is unsigned at
// construction; Signature is populated only by the signing step, which
// returns a copy rather than mutating the original.
type TransactionRecord struct {
	Nonce     uuid.UUID `json:"nonce"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Amount    float64   `json:"amount"`
	Fee       float64   `json:"fee"`
	Timestamp int64     `json:"timestamp"` // Unix seconds
	Signature []byte    `json:"signature,omitempty"`
}

// Signed returns true once a signature has been attached.
func (t *TransactionRecord) Signed() bool {
	return len(t.Signature) > 0
}

// WithSignature returns a copy of the record with the signature attached.
// The receiver is left untouched so the unsigned record stays usable for
// retries and audit.
func (t TransactionRecord) WithSignature(sig []byte) TransactionRecord {
	signed := t
	signed.Signature = make([]byte, len(sig))
	copy(signed.Signature, sig)
	return signed
}

// RemoteResult is the parsed acknowledgment returned by the broadcast
// endpoint on a successful submission.
type RemoteResult struct {
	TxID   string          `json:"txid"`
	Status string          `json:"status"`
	Raw    json.RawMessage `json:"-"` // Full response body as received
}
