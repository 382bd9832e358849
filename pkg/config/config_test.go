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

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "edusync", cfg.AppName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:4000/api", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 2, cfg.Backend.RetryCount)
	assert.Equal(t, 500*time.Millisecond, cfg.Backend.RetryInterval)
	assert.Equal(t, "memory", cfg.Session.Driver)
	assert.Equal(t, "localhost", cfg.Session.Redis.Host)
	assert.Equal(t, "6379", cfg.Session.Redis.Port)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("EDUSYNC_BACKEND_BASEURL", "https://api.institute.test/api")
	t.Setenv("EDUSYNC_SESSION_DRIVER", "redis")
	t.Setenv("EDUSYNC_SESSION_REDIS_HOST", "redis.institute.test")
	t.Setenv("EDUSYNC_LOGLEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.institute.test/api", cfg.Backend.BaseURL)
	assert.Equal(t, "redis", cfg.Session.Driver)
	assert.Equal(t, "redis.institute.test", cfg.Session.Redis.Host)
	assert.Equal(t, "debug", cfg.LogLevel)
}
