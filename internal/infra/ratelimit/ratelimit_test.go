//go:build unit

package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"hydro-command/internal/infra/ratelimit"
	"hydro-command/internal/pkg/clock"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Allow(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)
	limiter := ratelimit.NewMemory(clk, 2, time.Minute)

	r, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, r.Allowed)
	assert.Equal(t, 1, r.Remaining)
	assert.Equal(t, start.Add(time.Minute), r.ResetAt)

	r, _ = limiter.Allow(ctx, "10.0.0.1")
	assert.True(t, r.Allowed)
	assert.Equal(t, 0, r.Remaining)

	r, _ = limiter.Allow(ctx, "10.0.0.1")
	assert.False(t, r.Allowed)

	r, _ = limiter.Allow(ctx, "10.0.0.2")
	assert.True(t, r.Allowed, "identifiers are counted separately")

	clk.Add(time.Minute)
	r, _ = limiter.Allow(ctx, "10.0.0.1")
	assert.True(t, r.Allowed, "a new window starts once the old one resets")
}

func TestRedis_Allow(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	limiter := ratelimit.NewRedis(client, "hydro:", 2, time.Minute)

	for i := 0; i < 2; i++ {
		r, err := limiter.Allow(ctx, "export:10.0.0.1")
		require.NoError(t, err)
		assert.True(t, r.Allowed)
	}
	r, err := limiter.Allow(ctx, "export:10.0.0.1")
	require.NoError(t, err)
	assert.False(t, r.Allowed)
	assert.Equal(t, 0, r.Remaining)

	ttl := mr.TTL("hydro:ratelimit:export:10.0.0.1")
	assert.True(t, ttl > 0 && ttl <= time.Minute, "window must not be extended by later hits")

	mr.FastForward(time.Minute)
	r, err = limiter.Allow(ctx, "export:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, r.Allowed)
}
