package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hydro-command/internal/pkg/clock"

	"github.com/go-redis/redis/v8"
)

// Result of a single rate-limit check.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Limiter is a fixed-window counter per identifier.
type Limiter interface {
	Allow(ctx context.Context, id string) (Result, error)
}

type window struct {
	count   int
	resetAt time.Time
}

type Memory struct {
	clock  clock.Clock
	limit  int
	window time.Duration

	mu      sync.Mutex
	windows map[string]*window
}

func NewMemory(clk clock.Clock, limit int, per time.Duration) *Memory {
	return &Memory{
		clock:   clk,
		limit:   limit,
		window:  per,
		windows: make(map[string]*window),
	}
}

func (m *Memory) Allow(_ context.Context, id string) (Result, error) {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[id]
	if !ok || !now.Before(w.resetAt) {
		m.pruneLocked(now)
		w = &window{resetAt: now.Add(m.window)}
		m.windows[id] = w
	}
	w.count++
	if w.count > m.limit {
		return Result{Allowed: false, Remaining: 0, ResetAt: w.resetAt}, nil
	}
	return Result{Allowed: true, Remaining: m.limit - w.count, ResetAt: w.resetAt}, nil
}

func (m *Memory) pruneLocked(now time.Time) {
	for id, w := range m.windows {
		if !now.Before(w.resetAt) {
			delete(m.windows, id)
		}
	}
}

// Redis counts with INCR and starts the window with PEXPIRE on the first hit.
type Redis struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRedis(client *redis.Client, prefix string, limit int, per time.Duration) *Redis {
	return &Redis{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: per,
	}
}

func (r *Redis) Allow(ctx context.Context, id string) (Result, error) {
	key := fmt.Sprintf("%sratelimit:%s", r.prefix, id)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to check rate limit: %w", err)
	}
	ttl, err := r.client.PTTL(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read rate limit window: %w", err)
	}
	// a negative ttl means the key has no expiry yet (first hit, or a
	// previous PEXPIRE was lost)
	if count == 1 || ttl < 0 {
		if err := r.client.PExpire(ctx, key, r.window).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to start rate limit window: %w", err)
		}
		ttl = r.window
	}

	resetAt := time.Now().Add(ttl)
	if int(count) > r.limit {
		return Result{Allowed: false, Remaining: 0, ResetAt: resetAt}, nil
	}
	return Result{Allowed: true, Remaining: r.limit - int(count), ResetAt: resetAt}, nil
}
