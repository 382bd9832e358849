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

// StudentAPI is the slice of the backend client the student store needs.
type StudentAPI interface {
	ListStudents(ctx context.Context, q institute.ListQuery) (*institute.StudentPage, error)
	CreateStudent(ctx context.Context, form institute.StudentForm) (*structs.Student, error)
	UpdateStudent(ctx context.Context, id string, form institute.StudentForm) (*structs.Student, error)
	DeleteStudent(ctx context.Context, id string) error
}

// StudentStore caches the student collection.
type StudentStore struct {
	api StudentAPI
	col *collection[structs.Student]
}

func newStudentStore(api StudentAPI) *StudentStore {
	return &StudentStore{api: api, col: newCollection[structs.Student](false)}
}

// Fetch loads one page of students into the cache.
func (s *StudentStore) Fetch(ctx context.Context, q institute.ListQuery) error {
	seq := s.col.beginFetch()
	page, err := s.api.ListStudents(ctx, q)
	if err != nil {
		s.col.failFetch(seq, err)
		return err
	}
	s.col.reconcileFetch(seq, page.Students, &Pagination{
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	})
	return nil
}

// Create admits a student and appends the returned record to the cache.
func (s *StudentStore) Create(ctx context.Context, form institute.StudentForm) (*structs.Student, error) {
	rec, err := s.api.CreateStudent(ctx, form)
	if err != nil {
		return nil, err
	}
	s.col.applyCreate(*rec)
	return rec, nil
}

// Update replaces the cached record matching the response identifier.
func (s *StudentStore) Update(ctx context.Context, id string, form institute.StudentForm) (*structs.Student, error) {
	rec, err := s.api.UpdateStudent(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.col.applyUpdate(*rec)
	return rec, nil
}

// Delete removes the student server-side and drops it from the cache.
func (s *StudentStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteStudent(ctx, id); err != nil {
		return err
	}
	s.col.applyDelete(id)
	return nil
}

func (s *StudentStore) Items() []structs.Student { return s.col.items() }
func (s *StudentStore) Status() Status           { return s.col.currentStatus() }
func (s *StudentStore) Err() error               { return s.col.lastError() }
func (s *StudentStore) Page() *Pagination        { return s.col.page() }
