package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	var missing record
	ok, err := store.Get("nope", &missing)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("r", record{Name: "streak", Count: 4}))

	var got record
	ok, err = store.Get("r", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, record{Name: "streak", Count: 4}, got)

	// Last writer wins
	require.NoError(t, store.Set("r", record{Name: "streak", Count: 5}))
	ok, err = store.Get("r", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, got.Count)
}

func TestMemoryStoreDoesNotAliasStoredValues(t *testing.T) {
	store := NewMemoryStore()

	list := []string{"a", "b"}
	require.NoError(t, store.Set("list", list))

	// Mutating the caller's slice must not change what was stored
	list[0] = "z"

	var got []string
	ok, err := store.Get("list", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
}
