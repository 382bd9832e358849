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

// SessionYearAPI is the slice of the backend client the session-year
// store needs.
type SessionYearAPI interface {
	ListSessionYears(ctx context.Context) ([]structs.SessionYear, error)
	CreateSessionYear(ctx context.Context, form institute.SessionYearForm) (*structs.SessionYear, error)
	UpdateSessionYear(ctx context.Context, id string, form institute.SessionYearForm) (*structs.SessionYear, error)
	DeleteSessionYear(ctx context.Context, id string) error
}

// SessionYearStore caches the academic-year collection.
type SessionYearStore struct {
	api SessionYearAPI
	col *collection[structs.SessionYear]
}

func newSessionYearStore(api SessionYearAPI) *SessionYearStore {
	return &SessionYearStore{api: api, col: newCollection[structs.SessionYear](false)}
}

func (s *SessionYearStore) Fetch(ctx context.Context) error {
	seq := s.col.beginFetch()
	years, err := s.api.ListSessionYears(ctx)
	if err != nil {
		s.col.failFetch(seq, err)
		return err
	}
	s.col.reconcileFetch(seq, years, nil)
	return nil
}

func (s *SessionYearStore) Create(ctx context.Context, form institute.SessionYearForm) (*structs.SessionYear, error) {
	rec, err := s.api.CreateSessionYear(ctx, form)
	if err != nil {
		return nil, err
	}
	s.col.applyCreate(*rec)
	return rec, nil
}

func (s *SessionYearStore) Update(ctx context.Context, id string, form institute.SessionYearForm) (*structs.SessionYear, error) {
	rec, err := s.api.UpdateSessionYear(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.col.applyUpdate(*rec)
	return rec, nil
}

func (s *SessionYearStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteSessionYear(ctx, id); err != nil {
		return err
	}
	s.col.applyDelete(id)
	return nil
}

func (s *SessionYearStore) Items() []structs.SessionYear { return s.col.items() }
func (s *SessionYearStore) Status() Status               { return s.col.currentStatus() }
func (s *SessionYearStore) Err() error                   { return s.col.lastError() }
