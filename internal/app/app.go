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

// Package app assembles the synchronization layer: configuration, the
// persistence cache, the session store, the backend client and the entity
// stores, wired in dependency order.
package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/edusync-dev/edusync/pkg/apiclient"
	"github.com/edusync-dev/edusync/pkg/cache"
	"github.com/edusync-dev/edusync/pkg/cache/inmemory"
	"github.com/edusync-dev/edusync/pkg/cache/redis"
	"github.com/edusync-dev/edusync/pkg/clients/institute"
	"github.com/edusync-dev/edusync/pkg/config"
	"github.com/edusync-dev/edusync/pkg/logger"
	"github.com/edusync-dev/edusync/pkg/session"
	"github.com/edusync-dev/edusync/pkg/store"
)

// App is the composed dashboard runtime.
type App struct {
	Config   *config.Config
	Cache    cache.Cache
	Sessions *session.Store
	API      *institute.Client
	Stores   *store.Store
}

// New wires the application from configuration. The session store is
// rehydrated from the cache before anything renders, so a valid persisted
// token is already attached to the first backend request.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger.SetLevel(cfg.LogLevel)
	log := logger.Logger(ctx).WithField("app", cfg.AppName)

	c, err := newSessionCache(cfg)
	if err != nil {
		return nil, err
	}

	sessions := session.NewStore(c)
	if err := sessions.Rehydrate(ctx); err != nil {
		return nil, fmt.Errorf("rehydrating session: %w", err)
	}

	api := apiclient.New(apiclient.Config{
		BaseURL:       cfg.Backend.BaseURL,
		Timeout:       cfg.Backend.Timeout,
		RetryCount:    cfg.Backend.RetryCount,
		RetryInterval: cfg.Backend.RetryInterval,
	}, sessions)

	client := institute.NewClient(api)

	log.WithField("driver", cfg.Session.Driver).Info("application wired")
	return &App{
		Config:   cfg,
		Cache:    c,
		Sessions: sessions,
		API:      client,
		Stores:   store.New(client),
	}, nil
}

func newSessionCache(cfg *config.Config) (cache.Cache, error) {
	switch cfg.Session.Driver {
	case "", "memory":
		return inmemory.NewCache(nil)
	case "redis":
		r := cfg.Session.Redis
		return redis.NewCache(&redis.Config{
			Host:     r.Host,
			Port:     r.Port,
			Database: r.Database,
			Username: r.Username,
			Password: r.Password,
		})
	default:
		return nil, fmt.Errorf("unknown session driver %q", cfg.Session.Driver)
	}
}

// Login authenticates against the backend and, on success, persists the
// principal so a reload stays signed in.
func (a *App) Login(ctx context.Context, email, password string) error {
	result, err := a.API.Login(ctx, institute.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}
	return a.Sessions.LoginSuccess(ctx, result.User, result.Token, result.Role)
}

// Logout clears the in-memory principal and its persisted copy.
func (a *App) Logout(ctx context.Context) error {
	return a.Sessions.Logout(ctx)
}

// Gate reports the navigation decision for a view restricted to the given
// roles.
func (a *App) Gate(permitted ...string) session.Decision {
	return a.Sessions.Gate(permitted...)
}

// Preload warms the collections most views depend on. Fetches run
// concurrently; the first failure wins and the rest are canceled.
func (a *App) Preload(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Stores.Subjects.Fetch(ctx) })
	g.Go(func() error { return a.Stores.Teachers.Fetch(ctx) })
	g.Go(func() error { return a.Stores.SessionYears.Fetch(ctx) })
	g.Go(func() error { return a.Stores.BatchClasses.Fetch(ctx, institute.ListQuery{}) })
	return g.Wait()
}
