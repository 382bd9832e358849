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
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusync-dev/edusync/pkg/cache"
)

func newMiniredisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheWithClient(client), mr
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	rc, _ := newMiniredisCache(t)

	require.NoError(t, rc.Set(ctx, "session:auth", `{"token":"tok"}`, 0))

	val, err := rc.Get(ctx, "session:auth")
	require.NoError(t, err)
	assert.Equal(t, `{"token":"tok"}`, val)

	require.NoError(t, rc.Delete(ctx, "session:auth"))

	_, err = rc.Get(ctx, "session:auth")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestRedisCache_MissingKey(t *testing.T) {
	rc, _ := newMiniredisCache(t)

	_, err := rc.Get(context.Background(), "never-set")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestRedisCache_TTLExpires(t *testing.T) {
	ctx := context.Background()
	rc, mr := newMiniredisCache(t)

	require.NoError(t, rc.Set(ctx, "k", "v", time.Second))
	mr.FastForward(2 * time.Second)

	_, err := rc.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}
