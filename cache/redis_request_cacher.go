package cache

import (
	"fmt"

	"gopkg.in/redis.v5"
)

// RedisRequestCacher keeps a capped list per key, newest first.
type RedisRequestCacher struct {
	client    *redis.Client
	MaxNumber int
}

func CreateRedisCache(client *redis.Client, maxNumber int) *RedisRequestCacher {
	return &RedisRequestCacher{client: client, MaxNumber: capacity(maxNumber)}
}

// Write pushes the value and trims the list to MaxNumber in one pipeline.
func (cacher *RedisRequestCacher) Write(key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	_, err := cacher.client.Pipelined(func(pipe *redis.Pipeline) error {
		pipe.LPush(key, value)
		pipe.LTrim(key, 0, cacher.lastIndex())
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache: record request for %s: %w", key, err)
	}
	return nil
}

func (cacher *RedisRequestCacher) Read(key string) ([]string, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	entries, err := cacher.client.LRange(key, 0, cacher.lastIndex()).Result()
	if err != nil {
		return nil, fmt.Errorf("cache: read requests for %s: %w", key, err)
	}
	return entries, nil
}

func (cacher *RedisRequestCacher) lastIndex() int64 {
	return int64(capacity(cacher.MaxNumber) - 1)
}
