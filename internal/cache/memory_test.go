package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache()
	t.Cleanup(func() { c.Close() })
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	t.Cleanup(func() { c.Close() })
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), -time.Second))

	_, err := c.Get(ctx, "k")
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheClear(t *testing.T) {
	c := NewMemoryCache()
	t.Cleanup(func() { c.Close() })
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, c.Clear(ctx))

	_, err := c.Get(ctx, "a")
	require.ErrorIs(t, err, ErrCacheMiss)
	_, err = c.Get(ctx, "b")
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheValueIsolation(t *testing.T) {
	c := NewMemoryCache()
	t.Cleanup(func() { c.Close() })
	ctx := context.Background()

	original := []byte("value")
	require.NoError(t, c.Set(ctx, "k", original, time.Minute))
	original[0] = 'X'

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("value"), got, "stored value is copied on Set")

	got[0] = 'Y'
	again, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("value"), again, "returned value is copied on Get")
}
