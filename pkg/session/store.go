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

// Package session tracks the authenticated principal. It is the only
// slice persisted beyond the process: every change writes through to the
// cache, and Rehydrate restores it before the first page renders so a
// reload does not force re-authentication. Entity collections are never
// persisted.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/edusync-dev/edusync/pkg/cache"
	"github.com/edusync-dev/edusync/pkg/common/structs"
	"github.com/edusync-dev/edusync/pkg/logger"
)

// authKey is the single cache key holding the serialized auth slice.
const authKey = "session:auth"

// Snapshot is the persisted auth slice.
type Snapshot struct {
	User            *structs.User `json:"user"`
	Token           string        `json:"token"`
	Role            string        `json:"role"`
	IsAuthenticated bool          `json:"isAuthenticated"`
}

// Store is the singleton auth/session store. It is read by the HTTP
// adapter (Token) and written by login/logout.
type Store struct {
	mu    sync.Mutex
	snap  Snapshot
	cache cache.Cache
}

// NewStore builds an empty store persisting through c.
func NewStore(c cache.Cache) *Store {
	return &Store{cache: c}
}

// LoginSuccess records the principal and persists the slice. Calling it
// again overwrites the previous principal.
func (s *Store) LoginSuccess(ctx context.Context, user structs.User, token, role string) error {
	s.mu.Lock()
	s.snap = Snapshot{
		User:            &user,
		Token:           token,
		Role:            role,
		IsAuthenticated: true,
	}
	s.mu.Unlock()
	return s.persist(ctx)
}

// Logout clears every field back to its empty default and persists the
// cleared slice.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.snap = Snapshot{}
	s.mu.Unlock()
	return s.persist(ctx)
}

// Rehydrate restores the last persisted slice. A missing or unparsable
// payload leaves the defaults in place without error; a token that is a
// JWT past its expiry is discarded rather than restored.
func (s *Store) Rehydrate(ctx context.Context) error {
	log := logger.Logger(ctx).WithField("component", "session")

	raw, err := s.cache.Get(ctx, authKey)
	if errors.Is(err, cache.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		log.WithError(err).Warn("discarding unparsable session payload")
		return nil
	}
	if snap.Token != "" && tokenExpired(snap.Token) {
		log.Info("discarding expired session token")
		return nil
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return nil
}

func (s *Store) persist(ctx context.Context) error {
	s.mu.Lock()
	data, err := json.Marshal(s.snap)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, authKey, string(data), 0)
}

// tokenExpired checks the exp claim without verifying the signature;
// verification is the backend's job. Opaque non-JWT tokens never expire
// client-side.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// Token implements apiclient.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Token
}

func (s *Store) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Role
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.IsAuthenticated
}

func (s *Store) User() *structs.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.User == nil {
		return nil
	}
	u := *s.snap.User
	return &u
}

// Snapshot returns a copy of the whole auth slice.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snap
	if snap.User != nil {
		u := *snap.User
		snap.User = &u
	}
	return snap
}
