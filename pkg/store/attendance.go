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

// AttendanceAPI is the slice of the backend client the attendance store
// needs.
type AttendanceAPI interface {
	ListAttendance(ctx context.Context, q institute.AttendanceQuery) (*institute.AttendancePage, error)
	CreateAttendance(ctx context.Context, form institute.AttendanceForm) (*structs.Attendance, error)
	UpdateAttendance(ctx context.Context, id string, form institute.AttendanceForm) (*structs.Attendance, error)
	DeleteAttendance(ctx context.Context, id string) error
}

// AttendanceStore caches one filtered page of attendance records. New
// marks are prepended so the most recent entry renders first.
type AttendanceStore struct {
	api AttendanceAPI
	col *collection[structs.Attendance]
}

func newAttendanceStore(api AttendanceAPI) *AttendanceStore {
	return &AttendanceStore{api: api, col: newCollection[structs.Attendance](true)}
}

func (s *AttendanceStore) Fetch(ctx context.Context, q institute.AttendanceQuery) error {
	seq := s.col.beginFetch()
	page, err := s.api.ListAttendance(ctx, q)
	if err != nil {
		s.col.failFetch(seq, err)
		return err
	}
	s.col.reconcileFetch(seq, page.AttendanceRecords, &Pagination{
		CurrentPage:  page.Pagination.CurrentPage,
		TotalPages:   page.Pagination.TotalPages,
		TotalRecords: page.Pagination.TotalRecords,
	})
	return nil
}

func (s *AttendanceStore) Create(ctx context.Context, form institute.AttendanceForm) (*structs.Attendance, error) {
	rec, err := s.api.CreateAttendance(ctx, form)
	if err != nil {
		return nil, err
	}
	s.col.applyCreate(*rec)
	return rec, nil
}

func (s *AttendanceStore) Update(ctx context.Context, id string, form institute.AttendanceForm) (*structs.Attendance, error) {
	rec, err := s.api.UpdateAttendance(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.col.applyUpdate(*rec)
	return rec, nil
}

func (s *AttendanceStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteAttendance(ctx, id); err != nil {
		return err
	}
	s.col.applyDelete(id)
	return nil
}

func (s *AttendanceStore) Items() []structs.Attendance { return s.col.items() }
func (s *AttendanceStore) Status() Status              { return s.col.currentStatus() }
func (s *AttendanceStore) Err() error                  { return s.col.lastError() }
func (s *AttendanceStore) Page() *Pagination           { return s.col.page() }
