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

// InstituteAPI is the slice of the backend client the institute store needs.
type InstituteAPI interface {
	ListInstitutes(ctx context.Context, q institute.ListQuery) (*institute.InstitutePage, error)
	GetInstitute(ctx context.Context, id string) (*structs.Institute, error)
	CreateInstitute(ctx context.Context, form institute.InstituteForm) (*structs.Institute, error)
	UpdateInstitute(ctx context.Context, id string, form institute.InstituteForm) (*structs.Institute, error)
	DeleteInstitute(ctx context.Context, id string) error
}

// InstituteStore caches the institute collection.
type InstituteStore struct {
	api InstituteAPI
	col *collection[structs.Institute]
}

func newInstituteStore(api InstituteAPI) *InstituteStore {
	return &InstituteStore{api: api, col: newCollection[structs.Institute](false)}
}

func (s *InstituteStore) Fetch(ctx context.Context, q institute.ListQuery) error {
	seq := s.col.beginFetch()
	page, err := s.api.ListInstitutes(ctx, q)
	if err != nil {
		s.col.failFetch(seq, err)
		return err
	}
	s.col.reconcileFetch(seq, page.Institutes, &Pagination{
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	})
	return nil
}

func (s *InstituteStore) Get(ctx context.Context, id string) (*structs.Institute, error) {
	return s.api.GetInstitute(ctx, id)
}

func (s *InstituteStore) Create(ctx context.Context, form institute.InstituteForm) (*structs.Institute, error) {
	rec, err := s.api.CreateInstitute(ctx, form)
	if err != nil {
		return nil, err
	}
	s.col.applyCreate(*rec)
	return rec, nil
}

func (s *InstituteStore) Update(ctx context.Context, id string, form institute.InstituteForm) (*structs.Institute, error) {
	rec, err := s.api.UpdateInstitute(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.col.applyUpdate(*rec)
	return rec, nil
}

func (s *InstituteStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteInstitute(ctx, id); err != nil {
		return err
	}
	s.col.applyDelete(id)
	return nil
}

func (s *InstituteStore) Items() []structs.Institute { return s.col.items() }
func (s *InstituteStore) Status() Status             { return s.col.currentStatus() }
func (s *InstituteStore) Err() error                 { return s.col.lastError() }
func (s *InstituteStore) Page() *Pagination          { return s.col.page() }
