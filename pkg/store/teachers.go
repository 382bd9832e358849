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

// TeacherAPI is the slice of the backend client the teacher store needs.
type TeacherAPI interface {
	ListTeachers(ctx context.Context) ([]structs.Teacher, error)
	GetTeacher(ctx context.Context, id string) (*structs.Teacher, error)
	CreateTeacher(ctx context.Context, form institute.TeacherForm) (*structs.Teacher, error)
	UpdateTeacher(ctx context.Context, id string, form institute.TeacherForm) (*structs.Teacher, error)
	DeleteTeacher(ctx context.Context, id string) error
}

// TeacherStore caches the faculty collection.
type TeacherStore struct {
	api TeacherAPI
	col *collection[structs.Teacher]
}

func newTeacherStore(api TeacherAPI) *TeacherStore {
	return &TeacherStore{api: api, col: newCollection[structs.Teacher](false)}
}

// Fetch loads all faculty into the cache.
func (s *TeacherStore) Fetch(ctx context.Context) error {
	seq := s.col.beginFetch()
	teachers, err := s.api.ListTeachers(ctx)
	if err != nil {
		s.col.failFetch(seq, err)
		return err
	}
	s.col.reconcileFetch(seq, teachers, nil)
	return nil
}

// Get resolves a single faculty record, bypassing the cache; detail pages
// want fields the listing may not carry.
func (s *TeacherStore) Get(ctx context.Context, id string) (*structs.Teacher, error) {
	return s.api.GetTeacher(ctx, id)
}

func (s *TeacherStore) Create(ctx context.Context, form institute.TeacherForm) (*structs.Teacher, error) {
	rec, err := s.api.CreateTeacher(ctx, form)
	if err != nil {
		return nil, err
	}
	s.col.applyCreate(*rec)
	return rec, nil
}

func (s *TeacherStore) Update(ctx context.Context, id string, form institute.TeacherForm) (*structs.Teacher, error) {
	rec, err := s.api.UpdateTeacher(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.col.applyUpdate(*rec)
	return rec, nil
}

func (s *TeacherStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteTeacher(ctx, id); err != nil {
		return err
	}
	s.col.applyDelete(id)
	return nil
}

func (s *TeacherStore) Items() []structs.Teacher { return s.col.items() }
func (s *TeacherStore) Status() Status           { return s.col.currentStatus() }
func (s *TeacherStore) Err() error               { return s.col.lastError() }
