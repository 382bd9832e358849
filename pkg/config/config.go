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
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backend holds connection settings for the institute REST API.
type Backend struct {
	BaseURL       string        `mapstructure:"baseurl"`
	Timeout       time.Duration `mapstructure:"timeout"`
	RetryCount    int           `mapstructure:"retrycount"`
	RetryInterval time.Duration `mapstructure:"retryinterval"`
}

// Redis holds coordinates for the redis session persistence driver.
type Redis struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Database int32  `mapstructure:"database"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Session selects where the auth slice is persisted across reloads.
// Driver is "memory" or "redis".
type Session struct {
	Driver string `mapstructure:"driver"`
	Redis  Redis  `mapstructure:"redis"`
}

type Config struct {
	AppName  string  `mapstructure:"appname"`
	LogLevel string  `mapstructure:"loglevel"`
	Backend  Backend `mapstructure:"backend"`
	Session  Session `mapstructure:"session"`
}

// Load builds the configuration from defaults, an optional .env file and
// EDUSYNC_* environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("appname", "edusync")
	v.SetDefault("loglevel", "info")
	v.SetDefault("backend.baseurl", "http://localhost:4000/api")
	v.SetDefault("backend.timeout", 15*time.Second)
	v.SetDefault("backend.retrycount", 2)
	v.SetDefault("backend.retryinterval", 500*time.Millisecond)
	v.SetDefault("session.driver", "memory")
	v.SetDefault("session.redis.host", "localhost")
	v.SetDefault("session.redis.port", "6379")
	v.SetDefault("session.redis.database", 0)
	v.SetDefault("session.redis.username", "")
	v.SetDefault("session.redis.password", "")

	// load .env if it exists (ignore if it does not)
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("config: loading .env: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: stat .env: %w", err)
	}

	v.SetEnvPrefix("EDUSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}
