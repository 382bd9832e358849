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

package inmemory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/edusync-dev/edusync/pkg/cache"
)

// Config holds expiration settings in seconds.
type Config struct {
	DefaultExpiration int
	CleanupInterval   int
}

// InMemoryCache is a process-local cache driver. It backs session
// persistence in tests and in dev setups without redis.
type InMemoryCache struct {
	c *gocache.Cache
}

// NewCache inits an InMemoryCache instance.
func NewCache(config *Config) (*InMemoryCache, error) {
	if config == nil {
		config = &Config{DefaultExpiration: 300, CleanupInterval: 600}
	}
	return &InMemoryCache{
		c: gocache.New(
			time.Duration(config.DefaultExpiration)*time.Second,
			time.Duration(config.CleanupInterval)*time.Second,
		),
	}, nil
}

func (ic *InMemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	ic.c.Set(key, value, ttl)
	return nil
}

func (ic *InMemoryCache) Get(_ context.Context, key string) (string, error) {
	v, ok := ic.c.Get(key)
	if !ok {
		return "", cache.ErrNotFound
	}
	return v.(string), nil
}

func (ic *InMemoryCache) Delete(_ context.Context, key string) error {
	ic.c.Delete(key)
	return nil
}

var _ cache.Cache = (*InMemoryCache)(nil)
