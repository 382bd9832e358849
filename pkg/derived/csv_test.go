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

package derived

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusync-dev/edusync/pkg/common/structs"
)

func TestExportCSV_SkipsIdentifierColumn(t *testing.T) {
	var buf bytes.Buffer
	err := ExportCSV(&buf, []structs.SessionYear{
		{ID: "sy1", YearName: "2026-27", StartMonth: "April", StartYear: "2026", EndYear: "2027", DefaultYear: true},
		{ID: "sy2", YearName: "2025-26", StartMonth: "April", StartYear: "2025", EndYear: "2026"},
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"yearName", "startMonth", "startYear", "endYear", "defaultYear"}, rows[0])
	assert.NotContains(t, rows[0], "_id")
	assert.Equal(t, []string{"2026-27", "April", "2026", "2027", "true"}, rows[1])
	assert.Equal(t, []string{"2025-26", "April", "2025", "2026", "false"}, rows[2])
}

func TestExportCSV_FlattensReferences(t *testing.T) {
	var buf bytes.Buffer
	err := ExportCSV(&buf, []structs.Student{
		{ID: "s1", Name: "Ravi Kumar", BatchID: structs.RefID("b1")},
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	header := rows[0]
	batchCol := -1
	for i, col := range header {
		if col == "batchId" {
			batchCol = i
		}
	}
	require.GreaterOrEqual(t, batchCol, 0, "batchId column missing from header %v", header)
	assert.Equal(t, "b1", rows[1][batchCol])
}

func TestExportCSV_JoinsSliceFields(t *testing.T) {
	var buf bytes.Buffer
	err := ExportCSV(&buf, []structs.Batch{
		{ID: "b1", Name: "Morning", LocationIDs: []string{"l1", "l2"}},
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[1], "l1;l2")
}

func TestExportCSV_EmptyCollectionWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	err := ExportCSV(&buf, []structs.Subject{})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"name", "subjecttype", "subjectFee"}, rows[0])
}
