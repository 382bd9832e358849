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

// SubjectAPI is the slice of the backend client the subject store needs.
type SubjectAPI interface {
	ListSubjects(ctx context.Context) ([]structs.Subject, error)
	CreateSubject(ctx context.Context, form institute.SubjectForm) (*structs.Subject, error)
	UpdateSubject(ctx context.Context, id string, form institute.SubjectForm) (*structs.Subject, error)
	DeleteSubject(ctx context.Context, id string) error
}

// SubjectStore caches the subject collection the course builder sums
// fees from.
type SubjectStore struct {
	api SubjectAPI
	col *collection[structs.Subject]
}

func newSubjectStore(api SubjectAPI) *SubjectStore {
	return &SubjectStore{api: api, col: newCollection[structs.Subject](false)}
}

func (s *SubjectStore) Fetch(ctx context.Context) error {
	seq := s.col.beginFetch()
	subjects, err := s.api.ListSubjects(ctx)
	if err != nil {
		s.col.failFetch(seq, err)
		return err
	}
	s.col.reconcileFetch(seq, subjects, nil)
	return nil
}

func (s *SubjectStore) Create(ctx context.Context, form institute.SubjectForm) (*structs.Subject, error) {
	rec, err := s.api.CreateSubject(ctx, form)
	if err != nil {
		return nil, err
	}
	s.col.applyCreate(*rec)
	return rec, nil
}

func (s *SubjectStore) Update(ctx context.Context, id string, form institute.SubjectForm) (*structs.Subject, error) {
	rec, err := s.api.UpdateSubject(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.col.applyUpdate(*rec)
	return rec, nil
}

func (s *SubjectStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteSubject(ctx, id); err != nil {
		return err
	}
	s.col.applyDelete(id)
	return nil
}

func (s *SubjectStore) Items() []structs.Subject { return s.col.items() }
func (s *SubjectStore) Status() Status           { return s.col.currentStatus() }
func (s *SubjectStore) Err() error               { return s.col.lastError() }
