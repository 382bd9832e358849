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

// BatchClassAPI is the slice of the backend client the batch-class store
// needs.
type BatchClassAPI interface {
	ListBatchClasses(ctx context.Context, q institute.ListQuery) (*institute.BatchClassPage, error)
	CreateBatchClass(ctx context.Context, form institute.BatchClassForm) (*structs.BatchClass, error)
	UpdateBatchClass(ctx context.Context, id string, form institute.BatchClassForm) (*structs.BatchClass, error)
	DeleteBatchClass(ctx context.Context, id string) error
}

// BatchClassStore caches the faculty/time assignment collection.
type BatchClassStore struct {
	api BatchClassAPI
	col *collection[structs.BatchClass]
}

func newBatchClassStore(api BatchClassAPI) *BatchClassStore {
	return &BatchClassStore{api: api, col: newCollection[structs.BatchClass](false)}
}

func (s *BatchClassStore) Fetch(ctx context.Context, q institute.ListQuery) error {
	seq := s.col.beginFetch()
	page, err := s.api.ListBatchClasses(ctx, q)
	if err != nil {
		s.col.failFetch(seq, err)
		return err
	}
	s.col.reconcileFetch(seq, page.BatchClasses, &Pagination{
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	})
	return nil
}

func (s *BatchClassStore) Create(ctx context.Context, form institute.BatchClassForm) (*structs.BatchClass, error) {
	rec, err := s.api.CreateBatchClass(ctx, form)
	if err != nil {
		return nil, err
	}
	s.col.applyCreate(*rec)
	return rec, nil
}

func (s *BatchClassStore) Update(ctx context.Context, id string, form institute.BatchClassForm) (*structs.BatchClass, error) {
	rec, err := s.api.UpdateBatchClass(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.col.applyUpdate(*rec)
	return rec, nil
}

func (s *BatchClassStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteBatchClass(ctx, id); err != nil {
		return err
	}
	s.col.applyDelete(id)
	return nil
}

func (s *BatchClassStore) Items() []structs.BatchClass { return s.col.items() }
func (s *BatchClassStore) Status() Status              { return s.col.currentStatus() }
func (s *BatchClassStore) Err() error                  { return s.col.lastError() }
func (s *BatchClassStore) Page() *Pagination           { return s.col.page() }
