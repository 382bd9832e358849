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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusync-dev/edusync/pkg/clients/institute"
	"github.com/edusync-dev/edusync/pkg/common/structs"
)

type fakeSessionAPI struct {
	listCalls int
	sessions  []structs.ClassSession

	created *structs.ClassSession
	updated *structs.ClassSession
}

func (f *fakeSessionAPI) ListSessions(_ context.Context) ([]structs.ClassSession, error) {
	f.listCalls++
	return f.sessions, nil
}

func (f *fakeSessionAPI) GetSession(_ context.Context, id string) (*structs.ClassSession, error) {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			return &f.sessions[i], nil
		}
	}
	return nil, nil
}

func (f *fakeSessionAPI) CreateSession(_ context.Context, _ institute.SessionPayload) (*structs.ClassSession, error) {
	f.sessions = append(f.sessions, *f.created)
	return f.created, nil
}

func (f *fakeSessionAPI) UpdateSession(_ context.Context, _ string, _ institute.SessionPayload) (*structs.ClassSession, error) {
	return f.updated, nil
}

func (f *fakeSessionAPI) DeleteSession(_ context.Context, id string) error {
	kept := f.sessions[:0]
	for _, s := range f.sessions {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	f.sessions = kept
	return nil
}

func (f *fakeSessionAPI) ListEligibleStudents(_ context.Context, _ string) ([]structs.Student, error) {
	return []structs.Student{{ID: "s1", Name: "Ravi"}}, nil
}

func TestClassSessionStore_EnsureFetchesOnlyOnce(t *testing.T) {
	ctx := context.Background()
	api := &fakeSessionAPI{sessions: []structs.ClassSession{{ID: "cs1"}}}
	s := newClassSessionStore(api)

	require.NoError(t, s.Ensure(ctx))
	require.NoError(t, s.Ensure(ctx))
	require.NoError(t, s.Ensure(ctx))

	assert.Equal(t, 1, api.listCalls, "a warm cache must not refetch")
	assert.Len(t, s.Items(), 1)
}

func TestClassSessionStore_MutationInvalidatesForNextEnsure(t *testing.T) {
	ctx := context.Background()
	api := &fakeSessionAPI{
		sessions: []structs.ClassSession{{ID: "cs1"}},
		created:  &structs.ClassSession{ID: "cs2"},
	}
	s := newClassSessionStore(api)
	require.NoError(t, s.Ensure(ctx))

	rec, err := s.Create(ctx, institute.SessionPayload{})
	require.NoError(t, err)
	assert.Equal(t, "cs2", rec.ID)

	// the optimistic patch renders immediately, before any refetch
	assert.Len(t, s.Items(), 2)
	assert.Equal(t, 1, api.listCalls)

	// the next calendar read reconciles against the server
	require.NoError(t, s.Ensure(ctx))
	assert.Equal(t, 2, api.listCalls)
	assert.Len(t, s.Items(), 2)
}

func TestClassSessionStore_DeleteInvalidates(t *testing.T) {
	ctx := context.Background()
	api := &fakeSessionAPI{sessions: []structs.ClassSession{{ID: "cs1"}, {ID: "cs2"}}}
	s := newClassSessionStore(api)
	require.NoError(t, s.Ensure(ctx))

	require.NoError(t, s.Delete(ctx, "cs1"))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "cs2", items[0].ID)

	require.NoError(t, s.Ensure(ctx))
	assert.Equal(t, 2, api.listCalls)
}

func TestClassSessionStore_EligibleStudentsBypassesCache(t *testing.T) {
	ctx := context.Background()
	api := &fakeSessionAPI{}
	s := newClassSessionStore(api)

	students, err := s.EligibleStudents(ctx, "cs1")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Ravi", students[0].Name)
	// no fetch of the session collection happened
	assert.Equal(t, 0, api.listCalls)
	assert.Equal(t, StatusIdle, s.Status())
}
