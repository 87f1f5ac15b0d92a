package config

import (
	"fmt"

	"gopkg.in/redis.v5"
)

// SetupRedis connects to Redis and verifies the connection.
func SetupRedis(redisUrl string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: redisUrl,
	})

	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("config: redis %s: %w", redisUrl, err)
	}

	return client, nil
}
