package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session slots in redis, for deployments where the
// frontend runs more than one replica. Slots expire after the TTL so
// abandoned sessions clean themselves up.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: 30 * 24 * time.Hour}
}

func (r *RedisStore) Get(ctx context.Context, sid, slot string) (string, bool, error) {
	v, err := r.client.Get(ctx, slotKey(sid, slot)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get failed: %w", err)
	}
	return v, true, nil
}

func (r *RedisStore) Set(ctx context.Context, sid, slot, value string) error {
	if err := r.client.Set(ctx, slotKey(sid, slot), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sid, slot string) error {
	if err := r.client.Del(ctx, slotKey(sid, slot)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func slotKey(sid, slot string) string {
	return fmt.Sprintf("slot:%s:%s", sid, slot)
}
