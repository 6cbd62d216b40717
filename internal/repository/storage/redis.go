package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisStorage struct {
	Connection *redis.Client
}

// NewRedisStorage - connects the Redis score store and checks it answers; the client is closed again when it does not.
func NewRedisStorage(ctx context.Context, addr string) (*RedisStorage, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to connect to Redis at %s: %w", addr, err), conn.Close())
	}

	return &RedisStorage{Connection: conn}, nil
}

// Close - releases the connection pool once the session is over.
func (that *RedisStorage) Close() error {
	return that.Connection.Close()
}
