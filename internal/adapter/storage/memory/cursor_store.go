package memory

import (
	"context"
	"sync"
)

// CursorStore is an in-process ports.CursorStore for embedding the SDK
// without Redis. Cursors do not survive a restart.
type CursorStore struct {
	mu      sync.RWMutex
	cursors map[string]string
}

// NewCursorStore creates an empty in-memory cursor store.
func NewCursorStore() *CursorStore {
	return &CursorStore{cursors: make(map[string]string)}
}

// Get returns the saved cursor for stream, or "" when none has been saved.
func (s *CursorStore) Get(_ context.Context, stream string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursors[stream], nil
}

// Set saves the cursor for stream, overwriting any previous value.
func (s *CursorStore) Set(_ context.Context, stream string, cursor string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursors[stream] = cursor
	return nil
}
