package kvstore

import (
	"context"
	"testing"

	"gospel-keys/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore(logger.New())
	ctx := context.Background()

	ok := store.Set(ctx, "doc", testDoc{Name: "piano", Count: 3})
	assert.True(t, ok)

	var got testDoc
	assert.True(t, store.Get(ctx, "doc", &got))
	assert.Equal(t, "piano", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	store := NewMemoryStore(logger.New())

	var got testDoc
	ok := store.Get(context.Background(), "nope", &got)

	assert.False(t, ok)
	assert.Equal(t, testDoc{}, got)
}

func TestMemoryStore_GetDecodeFailure(t *testing.T) {
	store := NewMemoryStore(logger.New())
	ctx := context.Background()

	// Stored shape doesn't match the destination type
	store.Set(ctx, "doc", "just a string")

	var got testDoc
	ok := store.Get(ctx, "doc", &got)

	// Decode failure is contained: caller just sees "no value"
	assert.False(t, ok)
}

func TestMemoryStore_Remove(t *testing.T) {
	store := NewMemoryStore(logger.New())
	ctx := context.Background()

	store.Set(ctx, "doc", testDoc{Name: "piano"})
	assert.True(t, store.Has(ctx, "doc"))

	assert.True(t, store.Remove(ctx, "doc"))
	assert.False(t, store.Has(ctx, "doc"))

	// Removing an absent key still succeeds
	assert.True(t, store.Remove(ctx, "doc"))
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore(logger.New())
	ctx := context.Background()

	store.Set(ctx, "a", 1)
	store.Set(ctx, "b", 2)

	assert.True(t, store.Clear(ctx))
	assert.False(t, store.Has(ctx, "a"))
	assert.False(t, store.Has(ctx, "b"))
}

func TestMemoryStore_OverwriteReplacesValue(t *testing.T) {
	store := NewMemoryStore(logger.New())
	ctx := context.Background()

	store.Set(ctx, "list", []string{"a"})
	store.Set(ctx, "list", []string{"b", "c"})

	var got []string
	assert.True(t, store.Get(ctx, "list", &got))
	assert.Equal(t, []string{"b", "c"}, got)
}
