package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// CursorStore implements ports.CursorStore on Redis. Cursors are tiny and
// long-lived, so they are stored without a TTL.
type CursorStore struct {
	client *goredis.Client
	prefix string
}

// NewCursorStore creates a new Redis-backed cursor store.
func NewCursorStore(client *goredis.Client) *CursorStore {
	return &CursorStore{
		client: client,
		prefix: "event_cursor:",
	}
}

// Get returns the saved cursor for stream, or "" when none has been saved.
func (s *CursorStore) Get(ctx context.Context, stream string) (string, error) {
	val, err := s.client.Get(ctx, s.prefix+stream).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("redis cursor get: %w", err)
	}
	return val, nil
}

// Set saves the cursor for stream, overwriting any previous value.
func (s *CursorStore) Set(ctx context.Context, stream string, cursor string) error {
	if err := s.client.Set(ctx, s.prefix+stream, cursor, 0).Err(); err != nil {
		return fmt.Errorf("redis cursor set: %w", err)
	}
	return nil
}
