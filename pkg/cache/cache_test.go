package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, ok := store.Get(ctx, "missing")
	assert.False(t, ok)

	store.Set(ctx, "key", []byte("value"), time.Hour)
	value, ok := store.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), value)
}

func TestMemoryExpiry(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	store.Set(ctx, "key", []byte("value"), time.Hour)

	current = current.Add(30 * time.Minute)
	_, ok := store.Get(ctx, "key")
	assert.True(t, ok, "entry still fresh")

	current = current.Add(31 * time.Minute)
	_, ok = store.Get(ctx, "key")
	assert.False(t, ok, "entry past its TTL")
}

func TestMemoryRejectsNonPositiveTTL(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	store.Set(ctx, "key", []byte("value"), 0)
	_, ok := store.Get(ctx, "key")
	assert.False(t, ok)
}

func TestMemoryOverwrite(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	store.Set(ctx, "key", []byte("old"), time.Hour)
	store.Set(ctx, "key", []byte("new"), time.Hour)

	value, ok := store.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), value)
}
