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

package structs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_UnmarshalRawIdentifier(t *testing.T) {
	var s Student
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"s1","name":"Ravi","batchId":"b1"}`), &s))

	assert.Equal(t, "b1", s.BatchID.ID())
	assert.False(t, s.BatchID.Resolved())

	var b Batch
	assert.Error(t, s.BatchID.Expand(&b), "expanding a raw reference must fail")
}

func TestRef_UnmarshalExpandedObject(t *testing.T) {
	var s Student
	payload := `{"_id":"s1","name":"Ravi","batchId":{"_id":"b1","name":"Morning Batch"}}`
	require.NoError(t, json.Unmarshal([]byte(payload), &s))

	assert.Equal(t, "b1", s.BatchID.ID())
	assert.True(t, s.BatchID.Resolved())

	var b Batch
	require.NoError(t, s.BatchID.Expand(&b))
	assert.Equal(t, "Morning Batch", b.Name)
}

func TestRef_UnmarshalNull(t *testing.T) {
	var s Student
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"s1","batchId":null}`), &s))

	assert.Empty(t, s.BatchID.ID())
	assert.False(t, s.BatchID.Resolved())
}

func TestRef_MarshalRoundTrip(t *testing.T) {
	raw, err := json.Marshal(RefID("b1"))
	require.NoError(t, err)
	assert.Equal(t, `"b1"`, string(raw))

	// an expanded reference serializes back as the full object
	var r Ref
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"b1","name":"Morning"}`), &r))
	raw, err = json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"b1","name":"Morning"}`, string(raw))

	// an empty reference serializes as null
	raw, err = json.Marshal(Ref{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}
