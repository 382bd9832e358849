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

	"github.com/edusync-dev/edusync/pkg/common/structs"
)

type fakeCourseBatchAPI struct {
	byCourse map[string][]structs.Batch
	added    []structs.Batch
}

func (f *fakeCourseBatchAPI) ListCourseBatches(_ context.Context, courseID string) ([]structs.Batch, error) {
	return f.byCourse[courseID], nil
}

func (f *fakeCourseBatchAPI) AddCourseBatches(_ context.Context, _ string, _ []string) ([]structs.Batch, error) {
	return f.added, nil
}

func (f *fakeCourseBatchAPI) RemoveCourseBatch(_ context.Context, _, _ string) error {
	return nil
}

func TestCourseBatchStore_SwitchingCoursesReplacesCollection(t *testing.T) {
	ctx := context.Background()
	api := &fakeCourseBatchAPI{byCourse: map[string][]structs.Batch{
		"c1": {{ID: "b1", Name: "Morning"}},
		"c2": {{ID: "b2", Name: "Evening"}, {ID: "b3", Name: "Weekend"}},
	}}
	s := newCourseBatchStore(api)

	require.NoError(t, s.Fetch(ctx, "c1"))
	assert.Equal(t, "c1", s.CourseID())
	assert.Len(t, s.Items(), 1)

	require.NoError(t, s.Fetch(ctx, "c2"))
	assert.Equal(t, "c2", s.CourseID())
	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b2", items[0].ID)
}

func TestCourseBatchStore_AddAndRemovePatchCache(t *testing.T) {
	ctx := context.Background()
	api := &fakeCourseBatchAPI{
		byCourse: map[string][]structs.Batch{"c1": {{ID: "b1"}}},
		added:    []structs.Batch{{ID: "b2"}, {ID: "b3"}},
	}
	s := newCourseBatchStore(api)
	require.NoError(t, s.Fetch(ctx, "c1"))

	require.NoError(t, s.Add(ctx, "c1", []string{"b2", "b3"}))
	assert.Len(t, s.Items(), 3)

	require.NoError(t, s.Remove(ctx, "c1", "b2"))
	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b1", items[0].ID)
	assert.Equal(t, "b3", items[1].ID)
}
