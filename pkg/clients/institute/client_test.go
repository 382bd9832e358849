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

package institute

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusync-dev/edusync/pkg/apiclient"
	"github.com/edusync-dev/edusync/pkg/common/structs"
)

type noTokens struct{}

func (noTokens) Token() string { return "" }

// recorded captures the last request the fake backend saw.
type recorded struct {
	method string
	path   string
	query  string
	body   []byte
}

func newTestBackend(t *testing.T, status int, response string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	api := apiclient.New(apiclient.Config{
		BaseURL:       server.URL,
		Timeout:       5 * time.Second,
		RetryInterval: 10 * time.Millisecond,
	}, noTokens{})
	return NewClient(api), rec
}

func TestLogin(t *testing.T) {
	client, rec := newTestBackend(t, http.StatusOK,
		`{"user":{"_id":"u1","name":"Admin","email":"admin@institute.test"},"token":"tok","role":"superadmin"}`)

	result, err := client.Login(context.Background(), Credentials{
		Email:    "admin@institute.test",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/auth/login", rec.path)
	assert.Equal(t, "tok", result.Token)
	assert.Equal(t, "superadmin", result.Role)
	assert.Equal(t, "u1", result.User.ID)
}

func TestLogin_RejectsInvalidFormLocally(t *testing.T) {
	client, rec := newTestBackend(t, http.StatusOK, `{}`)

	_, err := client.Login(context.Background(), Credentials{Email: "not-an-email", Password: "x"})

	require.Error(t, err)
	assert.Empty(t, rec.method, "an invalid form must not reach the backend")
}

func TestListStudents_QueryAndEnvelope(t *testing.T) {
	client, rec := newTestBackend(t, http.StatusOK,
		`{"students":[{"_id":"s1","name":"Ravi"}],"totalPages":3,"currentPage":2}`)

	page, err := client.ListStudents(context.Background(), ListQuery{Page: 2, Limit: 10, Search: "ravi"})

	require.NoError(t, err)
	assert.Equal(t, "/students", rec.path)
	assert.Contains(t, rec.query, "page=2")
	assert.Contains(t, rec.query, "limit=10")
	assert.Contains(t, rec.query, "search=ravi")
	require.Len(t, page.Students, 1)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
}

func TestSubjectEndpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		client, rec := newTestBackend(t, http.StatusOK,
			`{"subject":{"_id":"sub1","name":"Physics","subjectFee":100}}`)

		subject, err := client.CreateSubject(ctx, SubjectForm{Name: "Physics", SubjectFee: 100})
		require.NoError(t, err)
		assert.Equal(t, "/create_subject", rec.path)
		assert.Equal(t, "sub1", subject.ID)
	})

	t.Run("update", func(t *testing.T) {
		client, rec := newTestBackend(t, http.StatusOK,
			`{"subject":{"_id":"sub1","name":"Physics II"}}`)

		_, err := client.UpdateSubject(ctx, "sub1", SubjectForm{Name: "Physics II"})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, rec.method)
		assert.Equal(t, "/update_subject/sub1", rec.path)
	})

	t.Run("delete", func(t *testing.T) {
		client, rec := newTestBackend(t, http.StatusOK, `{}`)

		require.NoError(t, client.DeleteSubject(ctx, "sub1"))
		assert.Equal(t, http.MethodDelete, rec.method)
		assert.Equal(t, "/delete_subject/sub1", rec.path)
	})

	t.Run("validation", func(t *testing.T) {
		client, rec := newTestBackend(t, http.StatusOK, `{}`)

		_, err := client.CreateSubject(ctx, SubjectForm{SubjectFee: 100})
		require.Error(t, err)
		assert.Empty(t, rec.method)
	})
}

func TestCourseForm_RequiresSubjects(t *testing.T) {
	client, rec := newTestBackend(t, http.StatusOK, `{}`)

	_, err := client.CreateCourse(context.Background(), CourseForm{
		Name:        "Science",
		SessionYear: "sy1",
	})

	require.Error(t, err)
	assert.Empty(t, rec.method, "a course without subjects must be rejected locally")
}

func TestCourseBatchAssociation(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		client, rec := newTestBackend(t, http.StatusOK, `{"batches":[{"_id":"b1","name":"Morning"}]}`)

		batches, err := client.ListCourseBatches(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, "/batchebycourse/c1/batches", rec.path)
		require.Len(t, batches, 1)
		assert.Equal(t, "b1", batches[0].ID)
	})

	t.Run("add", func(t *testing.T) {
		client, rec := newTestBackend(t, http.StatusOK, `{"batches":[{"_id":"b1"},{"_id":"b2"}]}`)

		batches, err := client.AddCourseBatches(ctx, "c1", []string{"b1", "b2"})
		require.NoError(t, err)
		assert.Equal(t, "/add-batches", rec.path)
		assert.JSONEq(t, `{"courseId":"c1","batchIds":["b1","b2"]}`, string(rec.body))
		assert.Len(t, batches, 2)
	})

	t.Run("remove sends delete body", func(t *testing.T) {
		client, rec := newTestBackend(t, http.StatusOK, `{}`)

		require.NoError(t, client.RemoveCourseBatch(ctx, "c1", "b1"))
		assert.Equal(t, http.MethodDelete, rec.method)
		assert.Equal(t, "/remove-batch", rec.path)
		assert.JSONEq(t, `{"courseId":"c1","batchId":"b1"}`, string(rec.body))
	})
}

func TestListSessionYears_BareArrayResponse(t *testing.T) {
	client, rec := newTestBackend(t, http.StatusOK,
		`[{"_id":"sy1","yearName":"2026-27","defaultYear":true}]`)

	years, err := client.ListSessionYears(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/session-years", rec.path)
	require.Len(t, years, 1)
	assert.True(t, years[0].DefaultYear)
}

func TestListBatchClasses_BackendPathSpelling(t *testing.T) {
	client, rec := newTestBackend(t, http.StatusOK,
		`{"batchClasses":[],"totalPages":0,"currentPage":1}`)

	_, err := client.ListBatchClasses(context.Background(), ListQuery{})

	require.NoError(t, err)
	// the backend route is misspelled; the client must match it anyway
	assert.Equal(t, "/batch-classess", rec.path)
}

func TestCreateSession_PayloadShape(t *testing.T) {
	client, rec := newTestBackend(t, http.StatusOK, `{"session":{"_id":"cs1"}}`)

	_, err := client.CreateSession(context.Background(), SessionPayload{
		BatchClassID: "bc1",
		ScheduleDetails: structs.ScheduleDetails{
			SessionType: "Weekly",
			WeeklyDays:  []string{"Monday"},
			RepeatEvery: 1,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "/sessions", rec.path)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	details, ok := sent["scheduleDetails"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Weekly", details["sessionType"])
	assert.NotContains(t, details, "onDay")
	assert.NotContains(t, details, "onThe")
}

func TestBackendErrorPassesThrough(t *testing.T) {
	client, _ := newTestBackend(t, http.StatusUnauthorized, `{"message":"jwt expired"}`)

	_, err := client.ListSubjects(context.Background())

	require.Error(t, err)
	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsUnauthorized())
	assert.Equal(t, "jwt expired", apiErr.Message)
}
