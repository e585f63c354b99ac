// internal/infrastructure/storage/memory_test.go
package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, found, err := store.Load("user")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save("user", `{"id":"user-1"}`))

	value, found, err := store.Load("user")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"id":"user-1"}`, value)

	// Save overwrites
	require.NoError(t, store.Save("user", `{"id":"user-2"}`))
	value, _, _ = store.Load("user")
	assert.Equal(t, `{"id":"user-2"}`, value)

	require.NoError(t, store.Delete("user"))
	_, found, err = store.Load("user")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is not an error
	require.NoError(t, store.Delete("user"))
}
