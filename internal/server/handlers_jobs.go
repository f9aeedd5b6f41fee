package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/cv-job-matcher/internal/types"
)

// handleListJobs returns the stored job catalog.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no job store configured")
		return
	}

	jobs, err := s.store.ListJobs(r.Context())
	if err != nil {
		s.log.Error("failed to list jobs", zap.Error(err))
		s.errorResponse(w, http.StatusServiceUnavailable, "job store unavailable")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// handleGetJob returns a single job by ID.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no job store configured")
		return
	}

	id := r.PathValue("id")
	record, err := s.store.GetJob(r.Context(), id)
	if err != nil {
		s.log.Error("failed to get job", zap.String("job_id", id), zap.Error(err))
		s.errorResponse(w, http.StatusServiceUnavailable, "job store unavailable")
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleCreateJob adds a job to the catalog. Requires admin auth.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no job store configured")
		return
	}

	var job types.JobListing
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(job.ID) == "" || strings.TrimSpace(job.Title) == "" {
		s.errorResponse(w, http.StatusBadRequest, "id and title are required")
		return
	}

	if err := s.store.UpsertJob(r.Context(), job); err != nil {
		s.log.Error("failed to create job", zap.String("job_id", job.ID), zap.Error(err))
		s.errorResponse(w, http.StatusServiceUnavailable, "job store unavailable")
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleUpdateJob replaces a job's fields. The URL ID wins over any ID in the
// body. Requires admin auth.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no job store configured")
		return
	}

	id := r.PathValue("id")

	var job types.JobListing
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	job.ID = id
	if strings.TrimSpace(job.Title) == "" {
		s.errorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	existing, err := s.store.GetJob(r.Context(), id)
	if err != nil {
		s.log.Error("failed to get job", zap.String("job_id", id), zap.Error(err))
		s.errorResponse(w, http.StatusServiceUnavailable, "job store unavailable")
		return
	}
	if existing == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}

	if err := s.store.UpsertJob(r.Context(), job); err != nil {
		s.log.Error("failed to update job", zap.String("job_id", id), zap.Error(err))
		s.errorResponse(w, http.StatusServiceUnavailable, "job store unavailable")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleDeleteJob removes a job from the catalog. Requires admin auth.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no job store configured")
		return
	}

	id := r.PathValue("id")
	deleted, err := s.store.DeleteJob(r.Context(), id)
	if err != nil {
		s.log.Error("failed to delete job", zap.String("job_id", id), zap.Error(err))
		s.errorResponse(w, http.StatusServiceUnavailable, "job store unavailable")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListMatchRuns returns recent match history. Requires admin auth.
func (s *Server) handleListMatchRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no job store configured")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	runs, err := s.store.ListMatchRuns(r.Context(), limit)
	if err != nil {
		s.log.Error("failed to list match runs", zap.Error(err))
		s.errorResponse(w, http.StatusServiceUnavailable, "job store unavailable")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"runs":  runs,
		"count": len(runs),
	})
}
