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

// BatchAPI is the slice of the backend client the batch store needs.
// The backend exposes no batch update.
type BatchAPI interface {
	ListBatches(ctx context.Context) ([]structs.Batch, error)
	CreateBatch(ctx context.Context, form institute.BatchForm) (*structs.Batch, error)
	DeleteBatch(ctx context.Context, id string) error
}

// BatchStore caches the cohort collection.
type BatchStore struct {
	api BatchAPI
	col *collection[structs.Batch]
}

func newBatchStore(api BatchAPI) *BatchStore {
	return &BatchStore{api: api, col: newCollection[structs.Batch](false)}
}

func (s *BatchStore) Fetch(ctx context.Context) error {
	seq := s.col.beginFetch()
	batches, err := s.api.ListBatches(ctx)
	if err != nil {
		s.col.failFetch(seq, err)
		return err
	}
	s.col.reconcileFetch(seq, batches, nil)
	return nil
}

func (s *BatchStore) Create(ctx context.Context, form institute.BatchForm) (*structs.Batch, error) {
	rec, err := s.api.CreateBatch(ctx, form)
	if err != nil {
		return nil, err
	}
	s.col.applyCreate(*rec)
	return rec, nil
}

func (s *BatchStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteBatch(ctx, id); err != nil {
		return err
	}
	s.col.applyDelete(id)
	return nil
}

func (s *BatchStore) Items() []structs.Batch { return s.col.items() }
func (s *BatchStore) Status() Status         { return s.col.currentStatus() }
func (s *BatchStore) Err() error             { return s.col.lastError() }
