package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestService(t *testing.T) (Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(client), mr
}

func TestService_SetGetDelete(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "holidaze:test", item{Name: "cabin", Count: 2}, time.Minute))
	assert.True(t, svc.Exists(ctx, "holidaze:test"))

	var got item
	require.NoError(t, svc.Get(ctx, "holidaze:test", &got))
	assert.Equal(t, item{Name: "cabin", Count: 2}, got)

	mr.FastForward(2 * time.Minute)
	assert.ErrorIs(t, svc.Get(ctx, "holidaze:test", &got), ErrCacheMiss)

	require.NoError(t, svc.Set(ctx, "holidaze:other", item{}, time.Minute))
	require.NoError(t, svc.Delete(ctx, "holidaze:other"))
	assert.False(t, svc.Exists(ctx, "holidaze:other"))
}

func TestService_DeletePattern(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, key := range []string{"holidaze:venues:list:page:1", "holidaze:venues:list:page:2", "holidaze:venues:detail:id:1"} {
		require.NoError(t, svc.Set(ctx, key, item{}, time.Minute))
	}

	require.NoError(t, svc.DeletePattern(ctx, "holidaze:venues:list*"))

	assert.False(t, svc.Exists(ctx, "holidaze:venues:list:page:1"))
	assert.False(t, svc.Exists(ctx, "holidaze:venues:list:page:2"))
	assert.True(t, svc.Exists(ctx, "holidaze:venues:detail:id:1"))
}

func TestService_GetOrSet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return item{Name: "fetched", Count: calls}, nil
	}

	var first, second item
	require.NoError(t, svc.GetOrSet(ctx, "k", time.Minute, fetch, &first))
	require.NoError(t, svc.GetOrSet(ctx, "k", time.Minute, fetch, &second))

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestService_GetOrSet_FetcherError(t *testing.T) {
	svc, _ := newTestService(t)
	boom := errors.New("upstream down")

	var got item
	err := svc.GetOrSet(context.Background(), "k", time.Minute, func() (interface{}, error) {
		return nil, boom
	}, &got)

	assert.ErrorIs(t, err, boom)
}

func TestService_NilClientAlwaysMisses(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "k", item{Name: "x"}, time.Minute))
	var got item
	assert.ErrorIs(t, svc.Get(ctx, "k", &got), ErrCacheMiss)
	assert.False(t, svc.Exists(ctx, "k"))
	assert.NoError(t, svc.DeletePattern(ctx, "*"))
	assert.NoError(t, svc.Ping(ctx))

	calls := 0
	for i := 0; i < 2; i++ {
		require.NoError(t, svc.GetOrSet(ctx, "k", time.Minute, func() (interface{}, error) {
			calls++
			return item{Name: "x"}, nil
		}, &got))
	}
	assert.Equal(t, 2, calls)
}
