package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis shares the cooldown table between replicas with SET NX PX, so the
// window expires on the redis side.
type Redis struct {
	client *redis.Client
	prefix string
}

func NewRedis(client *redis.Client, keyPrefix string) *Redis {
	return &Redis{
		client: client,
		prefix: keyPrefix,
	}
}

func (r *Redis) Acquire(ctx context.Context, key string, window time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.key(key), 1, window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire cooldown %s: %w", key, err)
	}
	return ok, nil
}

func (r *Redis) Release(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to release cooldown %s: %w", key, err)
	}
	return nil
}

func (r *Redis) key(k string) string {
	return fmt.Sprintf("%scooldown:%s", r.prefix, k)
}
