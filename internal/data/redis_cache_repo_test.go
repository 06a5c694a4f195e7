package data

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *RedisCacheRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisCacheRepo(client)
}

func TestRedisCacheRepo_SetGetDelete(t *testing.T) {
	mr, repo := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "analytics:0:20", []byte("payload"), 5*time.Minute))
	assert.True(t, mr.Exists(DefaultCachePrefix+"analytics:0:20"))
	assert.Equal(t, 5*time.Minute, mr.TTL(DefaultCachePrefix+"analytics:0:20"))

	got, err := repo.Get(ctx, "analytics:0:20")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	existed, err := repo.Delete(ctx, "analytics:0:20")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.Delete(ctx, "analytics:0:20")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestRedisCacheRepo_GetMissingAndExpired(t *testing.T) {
	mr, repo := newTestCache(t)
	ctx := context.Background()

	got, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Set(ctx, "short", []byte("x"), time.Second))
	mr.FastForward(2 * time.Second)
	got, err = repo.Get(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCacheRepo_SetIfNotExists(t *testing.T) {
	mr, repo := newTestCache(t)
	ctx := context.Background()

	set, err := repo.SetIfNotExists(ctx, "click:abc", []byte("1"), 30*time.Minute)
	require.NoError(t, err)
	assert.True(t, set)

	set, err = repo.SetIfNotExists(ctx, "click:abc", []byte("1"), 30*time.Minute)
	require.NoError(t, err)
	assert.False(t, set)

	mr.FastForward(31 * time.Minute)
	set, err = repo.SetIfNotExists(ctx, "click:abc", []byte("1"), 30*time.Minute)
	require.NoError(t, err)
	assert.True(t, set)

	set, err = repo.SetIfNotExists(ctx, "zero-ttl", []byte("1"), 0)
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, time.Second, mr.TTL(DefaultCachePrefix+"zero-ttl"))
}

func TestRedisCacheRepo_EmptyKey(t *testing.T) {
	_, repo := newTestCache(t)
	ctx := context.Background()

	require.Error(t, repo.Set(ctx, "", nil, 0))
	_, err := repo.Get(ctx, "")
	require.Error(t, err)
	_, err = repo.Delete(ctx, "")
	require.Error(t, err)
	_, err = repo.SetIfNotExists(ctx, "", nil, time.Second)
	require.Error(t, err)
}

func TestRedisCacheRepo_HealthAndOutage(t *testing.T) {
	mr, repo := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, repo.Health(ctx))
	mr.Close()
	require.Error(t, repo.Health(ctx))
	_, err := repo.Get(ctx, "any")
	require.Error(t, err)
}

func TestRedisCacheRepo_CustomPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	repo := NewRedisCacheRepoWithPrefix(client, "test:")

	require.NoError(t, repo.Set(context.Background(), "k", []byte("v"), 0))
	assert.True(t, mr.Exists("test:k"))
}
