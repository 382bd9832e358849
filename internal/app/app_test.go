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

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusync-dev/edusync/pkg/config"
	"github.com/edusync-dev/edusync/pkg/session"
	"github.com/edusync-dev/edusync/pkg/store"
)

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"_id":"u1","name":"Admin"},"token":"tok","role":"superadmin"}`))
	})
	mux.HandleFunc("/subjects", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"subjects":[{"_id":"sub1","name":"Physics","subjectFee":100}]}`))
	})
	mux.HandleFunc("/teachers", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"teachers":[{"_id":"t1","name":"Sharma"}]}`))
	})
	mux.HandleFunc("/session-years", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"sy1","yearName":"2026-27"}]`))
	})
	mux.HandleFunc("/batch-classess", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"batchClasses":[{"_id":"bc1"}],"totalPages":1,"currentPage":1}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testConfig(backendURL string) *config.Config {
	return &config.Config{
		AppName:  "edusync-test",
		LogLevel: "error",
		Backend: config.Backend{
			BaseURL:       backendURL,
			Timeout:       5 * time.Second,
			RetryInterval: 10 * time.Millisecond,
		},
		Session: config.Session{Driver: "memory"},
	}
}

func TestNew_WiresEverything(t *testing.T) {
	ctx := context.Background()
	server := fakeBackend(t)

	a, err := New(ctx, testConfig(server.URL))
	require.NoError(t, err)

	assert.NotNil(t, a.Cache)
	assert.NotNil(t, a.Sessions)
	assert.NotNil(t, a.API)
	assert.NotNil(t, a.Stores)
	assert.False(t, a.Sessions.IsAuthenticated())
	assert.Equal(t, session.RedirectLogin, a.Gate("superadmin"))
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := testConfig("http://localhost:0")
	cfg.Session.Driver = "carrier-pigeon"

	_, err := New(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	ctx := context.Background()
	server := fakeBackend(t)

	a, err := New(ctx, testConfig(server.URL))
	require.NoError(t, err)

	require.NoError(t, a.Login(ctx, "admin@institute.test", "secret"))
	assert.True(t, a.Sessions.IsAuthenticated())
	assert.Equal(t, "tok", a.Sessions.Token())
	assert.Equal(t, session.Allow, a.Gate("superadmin"))
	assert.Equal(t, session.RedirectUnauthorized, a.Gate("teacher"))

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.Sessions.IsAuthenticated())
	assert.Equal(t, session.RedirectLogin, a.Gate())
}

func TestPreload_WarmsCoreCollections(t *testing.T) {
	ctx := context.Background()
	server := fakeBackend(t)

	a, err := New(ctx, testConfig(server.URL))
	require.NoError(t, err)
	require.NoError(t, a.Login(ctx, "admin@institute.test", "secret"))

	require.NoError(t, a.Preload(ctx))

	assert.Equal(t, store.StatusSucceeded, a.Stores.Subjects.Status())
	assert.Len(t, a.Stores.Subjects.Items(), 1)
	assert.Len(t, a.Stores.Teachers.Items(), 1)
	assert.Len(t, a.Stores.SessionYears.Items(), 1)
	assert.Len(t, a.Stores.BatchClasses.Items(), 1)
}

func TestPreload_FailureSurfaces(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"database down"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	a, err := New(ctx, testConfig(server.URL))
	require.NoError(t, err)

	err = a.Preload(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database down")
}
