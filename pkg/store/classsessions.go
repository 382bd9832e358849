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

package store

import (
	"context"

	"github.com/edusync-dev/edusync/pkg/clients/institute"
	"github.com/edusync-dev/edusync/pkg/common/structs"
)

// ClassSessionAPI is the slice of the backend client the class-session
// store needs.
type ClassSessionAPI interface {
	ListSessions(ctx context.Context) ([]structs.ClassSession, error)
	GetSession(ctx context.Context, id string) (*structs.ClassSession, error)
	CreateSession(ctx context.Context, payload institute.SessionPayload) (*structs.ClassSession, error)
	UpdateSession(ctx context.Context, id string, payload institute.SessionPayload) (*structs.ClassSession, error)
	DeleteSession(ctx context.Context, id string) error
	ListEligibleStudents(ctx context.Context, sessionID string) ([]structs.Student, error)
}

// ClassSessionStore caches the session collection with
// invalidate-on-mutation semantics: every mutation patches the cache for
// immediate rendering and marks it stale, and Ensure refetches a stale or
// never-fetched collection before the calendar reads it.
type ClassSessionStore struct {
	api ClassSessionAPI
	col *collection[structs.ClassSession]
}

func newClassSessionStore(api ClassSessionAPI) *ClassSessionStore {
	return &ClassSessionStore{api: api, col: newCollection[structs.ClassSession](false)}
}

// Fetch unconditionally reloads the session collection.
func (s *ClassSessionStore) Fetch(ctx context.Context) error {
	seq := s.col.beginFetch()
	sessions, err := s.api.ListSessions(ctx)
	if err != nil {
		s.col.failFetch(seq, err)
		return err
	}
	s.col.reconcileFetch(seq, sessions, nil)
	return nil
}

// Ensure refetches only when the cache is stale or has never been loaded.
func (s *ClassSessionStore) Ensure(ctx context.Context) error {
	if !s.col.needsFetch() {
		return nil
	}
	return s.Fetch(ctx)
}

// Get resolves a single session, bypassing the cache.
func (s *ClassSessionStore) Get(ctx context.Context, id string) (*structs.ClassSession, error) {
	return s.api.GetSession(ctx, id)
}

func (s *ClassSessionStore) Create(ctx context.Context, payload institute.SessionPayload) (*structs.ClassSession, error) {
	rec, err := s.api.CreateSession(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.col.applyCreate(*rec)
	s.col.invalidate()
	return rec, nil
}

func (s *ClassSessionStore) Update(ctx context.Context, id string, payload institute.SessionPayload) (*structs.ClassSession, error) {
	rec, err := s.api.UpdateSession(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.col.applyUpdate(*rec)
	s.col.invalidate()
	return rec, nil
}

func (s *ClassSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteSession(ctx, id); err != nil {
		return err
	}
	s.col.applyDelete(id)
	s.col.invalidate()
	return nil
}

// EligibleStudents resolves the students who can be marked for a session.
// The result is page-local and is not cached.
func (s *ClassSessionStore) EligibleStudents(ctx context.Context, sessionID string) ([]structs.Student, error) {
	return s.api.ListEligibleStudents(ctx, sessionID)
}

func (s *ClassSessionStore) Items() []structs.ClassSession { return s.col.items() }
func (s *ClassSessionStore) Status() Status                { return s.col.currentStatus() }
func (s *ClassSessionStore) Err() error                    { return s.col.lastError() }
