package httpx

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	rl := NewRedisRateLimiter(rdb, 2, time.Minute, "clinicbook:rl")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := rl.Allow(ctx, "198.51.100.7")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := rl.Allow(ctx, "198.51.100.7")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, mr.Exists("clinicbook:rl:198.51.100.7"))
	assert.Greater(t, mr.TTL("clinicbook:rl:198.51.100.7"), time.Duration(0))

	mr.FastForward(2 * time.Minute)
	ok, err = rl.Allow(ctx, "198.51.100.7")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, RedisReadyCheck(rdb)(ctx))
}

func TestRedisRateLimiterUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	_, err := NewRedisRateLimiter(rdb, 1, time.Minute, "").Allow(context.Background(), "k")
	assert.Error(t, err)
}
