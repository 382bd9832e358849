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

// Package store owns the client-side collection caches, one store per
// backend resource. Each store runs the same synchronization state
// machine: fetches transition idle→loading→succeeded/failed and replace
// the cache, mutations patch the cache in place on success and hand their
// errors back to the caller instead of persisting them.
package store

import (
	"github.com/edusync-dev/edusync/pkg/clients/institute"
)

// Store composes the per-resource entity stores over one backend client.
// It lives for the process lifetime of the dashboard; collections are
// refreshed by the next fetch rather than persisted.
type Store struct {
	Students      *StudentStore
	Teachers      *TeacherStore
	Institutes    *InstituteStore
	Locations     *LocationStore
	Courses       *CourseStore
	Subjects      *SubjectStore
	SessionYears  *SessionYearStore
	Batches       *BatchStore
	BatchClasses  *BatchClassStore
	BatchStudents *BatchStudentStore
	ClassSessions *ClassSessionStore
	Attendance    *AttendanceStore
	CourseBatches *CourseBatchStore
}

// New creates a Store instance with all sub-stores initialized.
func New(api *institute.Client) *Store {
	return &Store{
		Students:      newStudentStore(api),
		Teachers:      newTeacherStore(api),
		Institutes:    newInstituteStore(api),
		Locations:     newLocationStore(api),
		Courses:       newCourseStore(api),
		Subjects:      newSubjectStore(api),
		SessionYears:  newSessionYearStore(api),
		Batches:       newBatchStore(api),
		BatchClasses:  newBatchClassStore(api),
		BatchStudents: newBatchStudentStore(api),
		ClassSessions: newClassSessionStore(api),
		Attendance:    newAttendanceStore(api),
		CourseBatches: newCourseBatchStore(api),
	}
}

// Compile-time checks that the backend client satisfies every per-store
// API surface.
var (
	_ StudentAPI      = (*institute.Client)(nil)
	_ TeacherAPI      = (*institute.Client)(nil)
	_ InstituteAPI    = (*institute.Client)(nil)
	_ LocationAPI     = (*institute.Client)(nil)
	_ CourseAPI       = (*institute.Client)(nil)
	_ SubjectAPI      = (*institute.Client)(nil)
	_ SessionYearAPI  = (*institute.Client)(nil)
	_ BatchAPI        = (*institute.Client)(nil)
	_ BatchClassAPI   = (*institute.Client)(nil)
	_ BatchStudentAPI = (*institute.Client)(nil)
	_ ClassSessionAPI = (*institute.Client)(nil)
	_ AttendanceAPI   = (*institute.Client)(nil)
	_ CourseBatchAPI  = (*institute.Client)(nil)
)
