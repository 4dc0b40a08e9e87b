package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	t.Run("allows requests under the limit", func(t *testing.T) {
		config := RateLimitConfig{RequestsPerMinute: 5}
		key := GateKey("10.0.0.1")

		for i := 0; i < 5; i++ {
			allowed, err := limiter.Allow(key, config)
			require.NoError(t, err)
			assert.True(t, allowed, "request %d should be allowed", i+1)
		}
	})

	t.Run("blocks requests over the limit", func(t *testing.T) {
		config := RateLimitConfig{RequestsPerMinute: 3}
		key := "gate:10.0.0.2"

		for i := 0; i < 3; i++ {
			allowed, err := limiter.Allow(key, config)
			require.NoError(t, err)
			assert.True(t, allowed)
		}

		allowed, err := limiter.Allow(key, config)
		require.NoError(t, err)
		assert.False(t, allowed, "request over the limit should be blocked")
	})

	t.Run("zero limits allow everything", func(t *testing.T) {
		config := RateLimitConfig{}
		key := "gate:10.0.0.3"

		allowed, err := limiter.Allow(key, config)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("keys are independent", func(t *testing.T) {
		config := RateLimitConfig{RequestsPerMinute: 1}

		allowed, err := limiter.Allow(GateKey("10.0.0.4"), config)
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(GateKey("10.0.0.5"), config)
		require.NoError(t, err)
		assert.True(t, allowed, "a different terminal must not share the counter")
	})
}

func TestGateKey(t *testing.T) {
	assert.Equal(t, "gate:10.0.0.1", GateKey("10.0.0.1"))
	assert.NotEqual(t, GateKey("10.0.0.1"), GateKey("10.0.0.2"))
}

func TestRedisRateLimiter_GetRemaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{RequestsPerMinute: 10}
	key := "gate:remaining"

	for i := 0; i < 4; i++ {
		_, err := limiter.Allow(key, config)
		require.NoError(t, err)
	}

	count, err := limiter.GetRemaining(key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{RequestsPerMinute: 2}
	key := "gate:reset"

	for i := 0; i < 2; i++ {
		_, err := limiter.Allow(key, config)
		require.NoError(t, err)
	}

	allowed, err := limiter.Allow(key, config)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(key))

	allowed, err = limiter.Allow(key, config)
	require.NoError(t, err)
	assert.True(t, allowed, "reset must clear the window")
}

func BenchmarkRedisRateLimiter_Allow(b *testing.B) {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		b.Skipf("Redis not available: %v", err)
	}
	defer client.Close()
	defer client.FlushDB(ctx)

	limiter := NewRedisRateLimiter(client)
	config := RateLimitConfig{RequestsPerMinute: 1000000}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = limiter.Allow(fmt.Sprintf("bench:%d", i%10), config)
	}
}
