package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-job-matcher/internal/db"
	"github.com/jonathan/cv-job-matcher/internal/types"
)

func doAuthedJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	token, err := s.jwtService.GenerateToken("admin")
	require.NoError(t, err)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func TestHandleListJobs(t *testing.T) {
	s := newTestServer(newFakeStore(
		engineerJob(),
		types.JobListing{ID: "job-2", Title: "Data Analyst"},
	))

	rec := doJSON(t, s.routes(), http.MethodGet, "/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Jobs  []types.JobListing `json:"jobs"`
		Count int                `json:"count"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "job-1", resp.Jobs[0].ID)
	assert.Equal(t, "job-2", resp.Jobs[1].ID)
}

func TestHandleListJobs_NoStore(t *testing.T) {
	s := newTestServer(nil)

	rec := doJSON(t, s.routes(), http.MethodGet, "/jobs", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleGetJob(t *testing.T) {
	s := newTestServer(newFakeStore(engineerJob()))

	rec := doJSON(t, s.routes(), http.MethodGet, "/jobs/job-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var record db.JobRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&record))
	assert.Equal(t, "Software Engineer", record.Title)
}

func TestHandleGetJob_NotFound(t *testing.T) {
	s := newTestServer(newFakeStore())

	rec := doJSON(t, s.routes(), http.MethodGet, "/jobs/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleCreateJob(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store)

	rec := doAuthedJSON(t, s, http.MethodPost, "/jobs", engineerJob())
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, store.jobs, "job-1")
}

func TestHandleCreateJob_RequiresAuth(t *testing.T) {
	s := newTestServer(newFakeStore())

	rec := doJSON(t, s.routes(), http.MethodPost, "/jobs", engineerJob())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleCreateJob_MissingFields(t *testing.T) {
	s := newTestServer(newFakeStore())

	rec := doAuthedJSON(t, s, http.MethodPost, "/jobs", types.JobListing{ID: "job-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doAuthedJSON(t, s, http.MethodPost, "/jobs", types.JobListing{Title: "Engineer"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpdateJob(t *testing.T) {
	store := newFakeStore(engineerJob())
	s := newTestServer(store)

	updated := engineerJob()
	updated.Title = "Staff Software Engineer"
	// The URL ID must win over the body ID
	updated.ID = "something-else"

	rec := doAuthedJSON(t, s, http.MethodPut, "/jobs/job-1", updated)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Staff Software Engineer", store.jobs["job-1"].Title)
	assert.NotContains(t, store.jobs, "something-else")
}

func TestHandleUpdateJob_NotFound(t *testing.T) {
	s := newTestServer(newFakeStore())

	rec := doAuthedJSON(t, s, http.MethodPut, "/jobs/missing", engineerJob())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDeleteJob(t *testing.T) {
	store := newFakeStore(engineerJob())
	s := newTestServer(store)

	rec := doAuthedJSON(t, s, http.MethodDelete, "/jobs/job-1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, store.jobs)

	rec = doAuthedJSON(t, s, http.MethodDelete, "/jobs/job-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDeleteJob_RequiresAuth(t *testing.T) {
	s := newTestServer(newFakeStore(engineerJob()))

	req := httptest.NewRequest(http.MethodDelete, "/jobs/job-1", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleListMatchRuns(t *testing.T) {
	store := newFakeStore(engineerJob())
	s := newTestServer(store)

	// Seed two runs through the match endpoint
	for i := 0; i < 2; i++ {
		rec := doJSON(t, s.routes(), http.MethodPost, "/match", MatchRequest{CVText: sampleCV})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doAuthedJSON(t, s, http.MethodGet, "/match-runs", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Runs  []db.MatchRun `json:"runs"`
		Count int           `json:"count"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Count)

	rec = doAuthedJSON(t, s, http.MethodGet, "/match-runs?limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
}

func TestHandleListMatchRuns_BadLimit(t *testing.T) {
	s := newTestServer(newFakeStore())

	rec := doAuthedJSON(t, s, http.MethodGet, "/match-runs?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doAuthedJSON(t, s, http.MethodGet, "/match-runs?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
