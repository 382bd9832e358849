/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/edusync-dev/edusync/pkg/cache"
)

// Config holds all required info for initializing the redis driver
type Config struct {
	Host     string
	Port     string
	Database int32
	Username string
	Password string
}

// RedisCache persists the auth slice in redis so a reload of the dashboard
// process can rehydrate it
type RedisCache struct {
	client redis.UniversalClient
}

// NewCache inits a RedisCache instance
func NewCache(config *Config) (*RedisCache, error) {
	if config == nil {
		config = getDefaultConfig()
	}

	addr := fmt.Sprintf("%s:%s", config.Host, config.Port)
	options := &redis.UniversalOptions{
		Addrs:    []string{addr},
		Username: config.Username,
		Password: config.Password,
		DB:       int(config.Database),
	}

	redisClient := redis.NewUniversalClient(options)

	// Enable OpenTelemetry instrumentation
	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		return nil, fmt.Errorf("failed to instrument redis: %w", err)
	}
	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		return nil, fmt.Errorf("failed to instrument redis metrics: %w", err)
	}

	rc := RedisCache{
		client: redisClient,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rc.client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("ping failed: %w", err)
	}

	return &rc, nil
}

// NewCacheWithClient wraps an existing client; used by tests that point the
// driver at miniredis.
func NewCacheWithClient(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

func getDefaultConfig() *Config {
	return &Config{
		Username: "",
		Host:     "localhost",
		Port:     "6379",
		Database: 0,
		Password: "",
	}
}

// Set - sets a key value pair in redis
func (rc *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return rc.client.Set(ctx, key, value, ttl).Err()
}

// Get - gets a value from redis, cache.ErrNotFound on a missing key
func (rc *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := rc.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", cache.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Delete - deletes a key from redis
func (rc *RedisCache) Delete(ctx context.Context, key string) error {
	return rc.client.Del(ctx, key).Err()
}

// Disconnect ... disconnects from the redis server
func (rc *RedisCache) Disconnect() error {
	return rc.client.Close()
}

var _ cache.Cache = (*RedisCache)(nil)
