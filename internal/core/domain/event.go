package domain

import "encoding/json"

// BlockchainEvent is an on-chain event as returned by the remote event
// source. The payload is opaque to the SDK; handlers decode Data themselves.
type BlockchainEvent struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}
