package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ms := NewMemoryStore(time.Minute)
	defer ms.Close()
	ctx := context.Background()

	require.NoError(t, ms.Set(ctx, "k", "v", time.Minute))

	v, ok, err := ms.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok, err = ms.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ms := NewMemoryStore(time.Hour)
	defer ms.Close()
	ctx := context.Background()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ms.now = func() time.Time { return now }

	require.NoError(t, ms.Set(ctx, "k", "v", time.Minute))
	now = now.Add(2 * time.Minute)

	_, ok, err := ms.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 1, ms.Len())
	ms.sweep()
	assert.Equal(t, 0, ms.Len())
}
