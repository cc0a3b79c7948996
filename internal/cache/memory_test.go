package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory(16, time.Minute)
	defer m.Close()
	ctx := context.Background()

	_, found, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))
	value, found, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), value)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory(16, time.Minute)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, found, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory(16, time.Minute)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, m.Delete(ctx, "k"))

	_, found, _ := m.Get(ctx, "k")
	assert.False(t, found)
}

func TestMemoryCleanupEnforcesMaxSize(t *testing.T) {
	m := NewMemory(2, time.Minute)
	defer m.Close()
	ctx := context.Background()

	// Entries closest to expiry get evicted first.
	for i := 0; i < 4; i++ {
		ttl := time.Duration(i+1) * time.Hour
		require.NoError(t, m.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), ttl))
	}
	m.cleanup()

	_, found, _ := m.Get(ctx, "k0")
	assert.False(t, found)
	_, found, _ = m.Get(ctx, "k1")
	assert.False(t, found)
	_, found, _ = m.Get(ctx, "k3")
	assert.True(t, found)
}

func TestMemoryCloseIdempotent(t *testing.T) {
	m := NewMemory(16, time.Minute)
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
}
