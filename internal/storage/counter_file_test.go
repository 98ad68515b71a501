package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCounterStore_SequentialNumbering(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "last_id.txt")

	store, err := NewFileCounterStore(path)
	require.NoError(t, err)

	for want := 1; want <= 5; want++ {
		got, err := store.NextOrderID(ctx)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5", string(data))
}

func TestFileCounterStore_ResumesFromPersistedValue(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "last_id.txt")
	require.NoError(t, os.WriteFile(path, []byte(" 41\n"), 0o644))

	store, err := NewFileCounterStore(path)
	require.NoError(t, err)

	got, err := store.NextOrderID(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestFileCounterStore_GarbageContentCountsAsZero(t *testing.T) {
	ctx := context.Background()

	for _, content := range []string{"not-a-number", "-3", "12.5", ""} {
		path := filepath.Join(t.TempDir(), "last_id.txt")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		store, err := NewFileCounterStore(path)
		require.NoError(t, err)

		got, err := store.NextOrderID(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, got, "content %q", content)
	}
}

func TestFileCounterStore_ConcurrentCallersGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "last_id.txt")

	store, err := NewFileCounterStore(path)
	require.NoError(t, err)

	const callers = 50
	ids := make(chan int, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := store.NextOrderID(ctx)
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, callers)
	for id := range ids {
		assert.False(t, seen[id], "duplicate order id %d", id)
		assert.GreaterOrEqual(t, id, 1)
		assert.LessOrEqual(t, id, callers)
		seen[id] = true
	}
	assert.Len(t, seen, callers)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "50", string(data))
}
