package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type key string

func TestInMemory_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[key, int]("test", DefaultExpiration, DefaultCleanupInterval)

	_, ok := c.Get(ctx, "a")
	require.False(t, ok)

	c.Set(ctx, "a", 1, 0)
	c.Set(ctx, "b", 2, NoExpiration)
	v, ok := c.Get(ctx, "a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 2, c.Len())

	c.Delete(ctx, "a")
	_, ok = c.Get(ctx, "a")
	require.False(t, ok)

	c.Flush(ctx)
	require.Equal(t, 0, c.Len())
}

func TestInMemory_Expires(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[key, string]("test", DefaultExpiration, DefaultCleanupInterval)
	c.Set(ctx, "a", "x", time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	_, ok := c.Get(ctx, "a")
	require.False(t, ok)
}

func TestReadThrough_CachesSuccesses(t *testing.T) {
	ctx := context.Background()
	calls := 0
	fn := func(_ context.Context, in int) (int, error) {
		calls++
		if in < 0 {
			return 0, errors.New("negative")
		}
		return in * 2, nil
	}
	rt := NewReadThroughCache[key, int, int](
		NewInMemoryCacheManager[key, int]("test", DefaultExpiration, DefaultCleanupInterval), fn, false)

	v, err := rt.Get(ctx, "two", 2, 0)
	require.NoError(t, err)
	require.Equal(t, 4, v)
	v, err = rt.Get(ctx, "two", 2, 0)
	require.NoError(t, err)
	require.Equal(t, 4, v)
	require.Equal(t, 1, calls)

	_, err = rt.Get(ctx, "neg", -1, 0)
	require.Error(t, err)
	_, err = rt.Get(ctx, "neg", -1, 0)
	require.Error(t, err)
	require.Equal(t, 3, calls, "errors are not cached")
}

func TestReadThrough_Skip(t *testing.T) {
	ctx := context.Background()
	calls := 0
	rt := NewReadThroughCache[key, int, int](
		NewInMemoryCacheManager[key, int]("test", DefaultExpiration, DefaultCleanupInterval),
		func(context.Context, int) (int, error) { calls++; return 1, nil }, true)

	_, _ = rt.Get(ctx, "k", 0, 0)
	_, _ = rt.Get(ctx, "k", 0, 0)
	require.Equal(t, 2, calls)
}
