package ports

import (
	"context"

	"digiplay-sdk/internal/core/domain"
)

// KeyProvider is the external cryptographic capability. Real implementations
// must match the target chain's key format and signature scheme; the SDK
// treats handles and signatures as opaque bytes.
type KeyProvider interface {
	// Generate creates fresh key material and returns its handle and address.
	Generate(ctx context.Context) (domain.KeyHandle, string, error)
	// DeriveAddress computes the address for previously created key material.
	DeriveAddress(ctx context.Context, handle domain.KeyHandle) (string, error)
	// Sign produces a signature over payload using the key behind handle.
	Sign(ctx context.Context, payload []byte, handle domain.KeyHandle) ([]byte, error)
}

// BroadcastTransport performs a single submission attempt of a signed record.
// Each call is an independent attempt: network errors, non-2xx responses and
// malformed bodies are all returned as errors.
type BroadcastTransport interface {
	Submit(ctx context.Context, record domain.TransactionRecord) (*domain.RemoteResult, error)
}

// EventSource fetches the next ordered batch of chain events after cursor.
// An empty cursor means "from the beginning". The returned cursor resumes
// the stream on the next call; it equals the input cursor when no events
// were produced.
type EventSource interface {
	FetchEvents(ctx context.Context, cursor string) ([]domain.BlockchainEvent, string, error)
}

// CursorStore persists the event-poll cursor per stream so a restarted
// poller does not reprocess already-dispatched events.
type CursorStore interface {
	Get(ctx context.Context, stream string) (string, error) // "" if none saved
	Set(ctx context.Context, stream string, cursor string) error
}
