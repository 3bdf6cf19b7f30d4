package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorStore_GetUnset(t *testing.T) {
	store := NewCursorStore()

	cursor, err := store.Get(context.Background(), "game-events")
	require.NoError(t, err)
	assert.Equal(t, "", cursor)
}

func TestCursorStore_SetAndGet(t *testing.T) {
	store := NewCursorStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "game-events", "cursor-1"))
	require.NoError(t, store.Set(ctx, "game-events", "cursor-2"))

	cursor, err := store.Get(ctx, "game-events")
	require.NoError(t, err)
	assert.Equal(t, "cursor-2", cursor)
}

func TestCursorStore_ConcurrentAccess(t *testing.T) {
	store := NewCursorStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set(ctx, "stream", fmt.Sprintf("cursor-%d", n))
			_, _ = store.Get(ctx, "stream")
		}(i)
	}
	wg.Wait()

	cursor, err := store.Get(ctx, "stream")
	require.NoError(t, err)
	assert.NotEmpty(t, cursor)
}
