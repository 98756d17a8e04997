package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiep/askiep-api/internal/models"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
)

func fastOptions() *Options {
	return &Options{Timeout: time.Second, MaxRetries: 2, BackoffBase: time.Millisecond}
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	store := NewFileStore(t.TempDir(), nil)
	c := New(baseURL, fastOptions(), store, nil, nil, nil)
	t.Cleanup(c.Close)
	return c
}

func TestClientRetryBound(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	profile, err := c.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Nil(t, profile)

	// 1 initial attempt + MaxRetries
	assert.Equal(t, int32(3), hits.Load())
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"student name is required"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.SaveProfile(context.Background(), models.ChildProfile{Age: 9})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
	assert.Contains(t, err.Error(), "student name is required")
	assert.Equal(t, int32(1), hits.Load())
}

func TestClientReadFallsBackToCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"p-1","name":"Alex","age":9}`))
	}))

	c := newTestClient(t, srv.URL)

	// First read succeeds and writes through to the local store.
	profile, err := c.GetProfile(context.Background())
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Alex", profile.Name)

	// Server gone: the accessor serves the cached copy instead of failing.
	srv.Close()
	cached, err := c.GetProfile(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "p-1", cached.ID)
}

func TestClientReadWithoutCacheReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close()

	c := newTestClient(t, srv.URL)
	logs, err := c.GetComplianceLogs(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestClientWriteFallsBackLocally(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close()

	c := newTestClient(t, srv.URL)
	saved, err := c.AddComplianceLog(context.Background(), models.ComplianceLog{
		ChildID:     "p-1",
		Date:        time.Now(),
		ServiceType: "Speech Therapy",
		Status:      models.ComplianceReceived,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(saved.ID, "local-"))
	assert.False(t, saved.CreatedAt.IsZero())

	// Subsequent offline reads see the locally persisted entry.
	logs, err := c.GetComplianceLogs(context.Background(), "p-1")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, saved.ID, logs[0].ID)
}

func TestClientCheckHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	assert.True(t, c.CheckHealth(context.Background()))
	assert.False(t, c.Connectivity().Offline())
	assert.False(t, c.Connectivity().LastChecked().IsZero())

	srv.Close()
	assert.False(t, c.CheckHealth(context.Background()))
	assert.True(t, c.Connectivity().Offline())
}

func TestClientSaveLetterReplacesLocalCopy(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close()

	c := newTestClient(t, srv.URL)
	first, err := c.SaveLetter(context.Background(), models.LetterDraft{ChildID: "p-1", Title: "Draft", Content: "v1"})
	require.NoError(t, err)

	updated, err := c.SaveLetter(context.Background(), models.LetterDraft{ID: first.ID, ChildID: "p-1", Title: "Draft", Content: "v2"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)

	drafts, err := c.GetLetters(context.Background(), "p-1")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "v2", drafts[0].Content)
}
