package registry

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharogames/itemforge/internal/item"
)

func TestRegisterAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	def := item.NewDefinition("lobby.compass", "COMPASS")
	require.NoError(t, store.Register(ctx, def))

	got, ok := store.Get("lobby.compass")
	assert.True(t, ok)
	assert.Equal(t, "COMPASS", got.BaseKind)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestRegisterInvalidDefinition(t *testing.T) {
	store := NewStore()

	err := store.Register(context.Background(), item.Definition{Identity: "x"})
	assert.ErrorIs(t, err, item.ErrInvalidDefinition)
	assert.Equal(t, 0, store.Len())
}

func TestRegisterOverwriteLastWriterWins(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	first := item.NewDefinition("lobby.compass", "COMPASS")
	second := item.NewDefinition("lobby.compass", "CLOCK")

	require.NoError(t, store.Register(ctx, first))
	require.NoError(t, store.Register(ctx, second))

	got, ok := store.Get("lobby.compass")
	require.True(t, ok)
	assert.Equal(t, "CLOCK", got.BaseKind)
	assert.Equal(t, 1, store.Len())
}

func TestUnregisterUnknownIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	store.Unregister(ctx, "never.registered")
	assert.Equal(t, 0, store.Len())
}

func TestSnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.Register(ctx, item.NewDefinition("a", "PAPER")))

	ids := store.IDs()
	defs := store.All()
	require.Len(t, ids, 1)
	require.Len(t, defs, 1)

	// Mutating the snapshots must not affect the store.
	ids[0] = "mutated"
	defs[0].Identity = "mutated"

	_, ok := store.Get("a")
	assert.True(t, ok)
	_, ok = store.Get("mutated")
	assert.False(t, ok)
}

func TestConcurrentRegisterAndRead(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			def := item.NewDefinition(fmt.Sprintf("item.%d", n), "PAPER")
			_ = store.Register(ctx, def)
		}(i)
		go func(n int) {
			defer wg.Done()
			store.Get(fmt.Sprintf("item.%d", n))
			store.IDs()
			store.All()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 16, store.Len())
}
