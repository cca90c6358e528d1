package store

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisBackend keeps slots as plain redis strings. The engine is
// single-writer, so no expiry and no locking.
type RedisBackend struct {
	Client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{Client: client}
}

func (r *RedisBackend) Get(key string) ([]byte, bool, error) {
	raw, err := r.Client.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (r *RedisBackend) Put(key string, value []byte) error {
	return r.Client.Set(context.Background(), key, value, 0).Err()
}
