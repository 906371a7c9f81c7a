package snapshot

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	prefix string
}

func newRedisStore(ctx context.Context, url, prefix string) (*redisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = "thrivecms:"
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &redisStore{client: client, prefix: prefix}, nil
}

func (s *redisStore) Save(ctx context.Context, key string, data []byte) error {
	// Без TTL: снимок живёт до следующей перезаписи.
	return s.client.Set(ctx, s.prefix+key, data, 0).Err()
}

func (s *redisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
