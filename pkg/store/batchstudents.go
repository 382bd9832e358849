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

// BatchStudentAPI is the slice of the backend client the enrollment store
// needs; the backend only lists and creates enrollments.
type BatchStudentAPI interface {
	ListBatchStudents(ctx context.Context) ([]structs.BatchStudent, error)
	CreateBatchStudent(ctx context.Context, form institute.BatchStudentForm) (*structs.BatchStudent, error)
}

// BatchStudentStore caches the enrollment collection.
type BatchStudentStore struct {
	api BatchStudentAPI
	col *collection[structs.BatchStudent]
}

func newBatchStudentStore(api BatchStudentAPI) *BatchStudentStore {
	return &BatchStudentStore{api: api, col: newCollection[structs.BatchStudent](false)}
}

func (s *BatchStudentStore) Fetch(ctx context.Context) error {
	seq := s.col.beginFetch()
	enrollments, err := s.api.ListBatchStudents(ctx)
	if err != nil {
		s.col.failFetch(seq, err)
		return err
	}
	s.col.reconcileFetch(seq, enrollments, nil)
	return nil
}

func (s *BatchStudentStore) Create(ctx context.Context, form institute.BatchStudentForm) (*structs.BatchStudent, error) {
	rec, err := s.api.CreateBatchStudent(ctx, form)
	if err != nil {
		return nil, err
	}
	s.col.applyCreate(*rec)
	return rec, nil
}

func (s *BatchStudentStore) Items() []structs.BatchStudent { return s.col.items() }
func (s *BatchStudentStore) Status() Status                { return s.col.currentStatus() }
func (s *BatchStudentStore) Err() error                    { return s.col.lastError() }
