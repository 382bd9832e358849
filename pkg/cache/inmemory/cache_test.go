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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusync-dev/edusync/pkg/cache"
)

func TestInMemoryCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c, err := NewCache(nil)
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "session:auth", `{"token":"tok"}`, 0))

	val, err := c.Get(ctx, "session:auth")
	require.NoError(t, err)
	assert.Equal(t, `{"token":"tok"}`, val)

	require.NoError(t, c.Delete(ctx, "session:auth"))

	_, err = c.Get(ctx, "session:auth")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestInMemoryCache_MissingKey(t *testing.T) {
	c, err := NewCache(&Config{DefaultExpiration: 300, CleanupInterval: 600})
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "never-set")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestInMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	c, err := NewCache(&Config{DefaultExpiration: 1, CleanupInterval: 1})
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "k", "v", 0))

	val, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestInMemoryCache_TTLExpires(t *testing.T) {
	ctx := context.Background()
	c, err := NewCache(nil)
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "k", "v", 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}
