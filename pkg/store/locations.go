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

// LocationAPI is the slice of the backend client the location store needs.
type LocationAPI interface {
	ListLocations(ctx context.Context) ([]structs.Location, error)
	CreateLocation(ctx context.Context, form institute.LocationForm) (*structs.Location, error)
	UpdateLocation(ctx context.Context, id string, form institute.LocationForm) (*structs.Location, error)
	DeleteLocation(ctx context.Context, id string) error
}

// LocationStore caches the venue collection.
type LocationStore struct {
	api LocationAPI
	col *collection[structs.Location]
}

func newLocationStore(api LocationAPI) *LocationStore {
	return &LocationStore{api: api, col: newCollection[structs.Location](false)}
}

func (s *LocationStore) Fetch(ctx context.Context) error {
	seq := s.col.beginFetch()
	locations, err := s.api.ListLocations(ctx)
	if err != nil {
		s.col.failFetch(seq, err)
		return err
	}
	s.col.reconcileFetch(seq, locations, nil)
	return nil
}

func (s *LocationStore) Create(ctx context.Context, form institute.LocationForm) (*structs.Location, error) {
	rec, err := s.api.CreateLocation(ctx, form)
	if err != nil {
		return nil, err
	}
	s.col.applyCreate(*rec)
	return rec, nil
}

func (s *LocationStore) Update(ctx context.Context, id string, form institute.LocationForm) (*structs.Location, error) {
	rec, err := s.api.UpdateLocation(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.col.applyUpdate(*rec)
	return rec, nil
}

func (s *LocationStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteLocation(ctx, id); err != nil {
		return err
	}
	s.col.applyDelete(id)
	return nil
}

func (s *LocationStore) Items() []structs.Location { return s.col.items() }
func (s *LocationStore) Status() Status            { return s.col.currentStatus() }
func (s *LocationStore) Err() error                { return s.col.lastError() }
