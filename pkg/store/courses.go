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

// CourseAPI is the slice of the backend client the course store needs.
type CourseAPI interface {
	ListCourses(ctx context.Context) ([]structs.Course, error)
	CreateCourse(ctx context.Context, form institute.CourseForm) (*structs.Course, error)
	UpdateCourse(ctx context.Context, id string, form institute.CourseForm) (*structs.Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

// CourseStore caches the course collection.
type CourseStore struct {
	api CourseAPI
	col *collection[structs.Course]
}

func newCourseStore(api CourseAPI) *CourseStore {
	return &CourseStore{api: api, col: newCollection[structs.Course](false)}
}

func (s *CourseStore) Fetch(ctx context.Context) error {
	seq := s.col.beginFetch()
	courses, err := s.api.ListCourses(ctx)
	if err != nil {
		s.col.failFetch(seq, err)
		return err
	}
	s.col.reconcileFetch(seq, courses, nil)
	return nil
}

func (s *CourseStore) Create(ctx context.Context, form institute.CourseForm) (*structs.Course, error) {
	rec, err := s.api.CreateCourse(ctx, form)
	if err != nil {
		return nil, err
	}
	s.col.applyCreate(*rec)
	return rec, nil
}

func (s *CourseStore) Update(ctx context.Context, id string, form institute.CourseForm) (*structs.Course, error) {
	rec, err := s.api.UpdateCourse(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.col.applyUpdate(*rec)
	return rec, nil
}

func (s *CourseStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteCourse(ctx, id); err != nil {
		return err
	}
	s.col.applyDelete(id)
	return nil
}

func (s *CourseStore) Items() []structs.Course { return s.col.items() }
func (s *CourseStore) Status() Status          { return s.col.currentStatus() }
func (s *CourseStore) Err() error              { return s.col.lastError() }
