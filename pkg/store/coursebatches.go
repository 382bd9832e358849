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
	"sync"

	"github.com/edusync-dev/edusync/pkg/common/structs"
)

// CourseBatchAPI is the slice of the backend client the course-batch
// association store needs.
type CourseBatchAPI interface {
	ListCourseBatches(ctx context.Context, courseID string) ([]structs.Batch, error)
	AddCourseBatches(ctx context.Context, courseID string, batchIDs []string) ([]structs.Batch, error)
	RemoveCourseBatch(ctx context.Context, courseID, batchID string) error
}

// CourseBatchStore caches the batches associated with one course at a
// time; switching courses replaces the whole collection.
type CourseBatchStore struct {
	api CourseBatchAPI
	col *collection[structs.Batch]

	mu       sync.Mutex
	courseID string
}

func newCourseBatchStore(api CourseBatchAPI) *CourseBatchStore {
	return &CourseBatchStore{api: api, col: newCollection[structs.Batch](false)}
}

// Fetch loads the association list for the given course.
func (s *CourseBatchStore) Fetch(ctx context.Context, courseID string) error {
	s.mu.Lock()
	s.courseID = courseID
	s.mu.Unlock()

	seq := s.col.beginFetch()
	batches, err := s.api.ListCourseBatches(ctx, courseID)
	if err != nil {
		s.col.failFetch(seq, err)
		return err
	}
	s.col.reconcileFetch(seq, batches, nil)
	return nil
}

// Add associates batches with the course and patches the cache with the
// returned association list.
func (s *CourseBatchStore) Add(ctx context.Context, courseID string, batchIDs []string) error {
	batches, err := s.api.AddCourseBatches(ctx, courseID, batchIDs)
	if err != nil {
		return err
	}
	for _, b := range batches {
		s.col.applyCreate(b)
	}
	return nil
}

// Remove detaches one batch from the course and drops it from the cache.
func (s *CourseBatchStore) Remove(ctx context.Context, courseID, batchID string) error {
	if err := s.api.RemoveCourseBatch(ctx, courseID, batchID); err != nil {
		return err
	}
	s.col.applyDelete(batchID)
	return nil
}

// CourseID reports which course the cached association list belongs to.
func (s *CourseBatchStore) CourseID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.courseID
}

func (s *CourseBatchStore) Items() []structs.Batch { return s.col.items() }
func (s *CourseBatchStore) Status() Status         { return s.col.currentStatus() }
func (s *CourseBatchStore) Err() error             { return s.col.lastError() }
