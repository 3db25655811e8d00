package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/redis"
)

func newStore(t *testing.T) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redis.NewStore(client, zap.NewNop()), mr
}

func TestStore_GetSet(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, myErrors.ErrCacheMiss)

	require.NoError(t, store.Set(ctx, "k", []byte(`{"a":1}`), time.Minute))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))
	assert.Equal(t, time.Minute, mr.TTL("k"))

	mr.FastForward(2 * time.Minute)
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, myErrors.ErrCacheMiss)
}

func TestStore_IncrTreatsMissingAsOne(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	v, err := store.Incr(ctx, "repo:post:version")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	v, err = store.Incr(ctx, "repo:post:version")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	raw, err := store.Get(ctx, "repo:post:version")
	require.NoError(t, err)
	assert.Equal(t, "3", string(raw))
}

func TestStore_Tags(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)
	assert.True(t, store.SupportsTags())

	require.NoError(t, store.Set(ctx, "repo:post:a", []byte("1"), time.Minute))
	require.NoError(t, store.Set(ctx, "repo:post:b", []byte("2"), time.Minute))
	require.NoError(t, store.Set(ctx, "repo:tag:c", []byte("3"), time.Minute))
	require.NoError(t, store.Tag(ctx, "repo:post", "repo:post:a"))
	require.NoError(t, store.Tag(ctx, "repo:post", "repo:post:b"))
	require.NoError(t, store.Tag(ctx, "repo:tag", "repo:tag:c"))

	require.NoError(t, store.FlushTag(ctx, "repo:post"))
	assert.False(t, mr.Exists("repo:post:a"))
	assert.False(t, mr.Exists("repo:post:b"))
	assert.True(t, mr.Exists("repo:tag:c"))

	require.NoError(t, store.FlushTag(ctx, "repo:empty"))
}

func TestStore_BackendDown(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	store := redis.NewStore(client, zap.NewNop())
	mr.Close()

	_, err = store.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, myErrors.ErrCacheMiss)
	assert.Error(t, store.Set(ctx, "k", []byte("v"), time.Minute))
}
