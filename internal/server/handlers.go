package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/cv-job-matcher/internal/accuracy"
	"github.com/jonathan/cv-job-matcher/internal/types"
)

// AnalyzeRequest carries CV text for profile extraction.
type AnalyzeRequest struct {
	CVText string `json:"cv_text"`
}

// MatchRequest carries CV text plus an optional job list. When Jobs is empty
// the server matches against the stored catalog.
type MatchRequest struct {
	CVText  string             `json:"cv_text"`
	Jobs    []types.JobListing `json:"jobs,omitempty"`
	Explain bool               `json:"explain,omitempty"`
}

// MatchResponse is the result of a match run.
type MatchResponse struct {
	Profile      ProfileSummary      `json:"profile"`
	Matches      []types.MatchResult `json:"matches"`
	Explanations map[string]string   `json:"explanations,omitempty"`
	RunID        string              `json:"run_id,omitempty"`
}

// ProfileSummary is the trimmed profile view returned by the API. The raw CV
// text is omitted to keep responses small.
type ProfileSummary struct {
	CVType          types.CVType           `json:"cv_type"`
	SkillScore      float64                `json:"skill_score"`
	ExperienceYears float64                `json:"experience_years"`
	SkillsFound     []string               `json:"skills_found"`
	Education       []types.EducationEntry `json:"education"`
	Keywords        []types.KeywordCount   `json:"keywords"`
}

func summarizeProfile(p *types.CVProfile) ProfileSummary {
	return ProfileSummary{
		CVType:          p.CVType,
		SkillScore:      p.SkillScore,
		ExperienceYears: p.ExperienceYears,
		SkillsFound:     p.SkillsFound,
		Education:       p.Education,
		Keywords:        p.Keywords,
	}
}

// handleHealth responds to health checks. When a database is configured the
// check includes connectivity.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	code := http.StatusOK

	if s.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		if err := s.store.Ping(ctx); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			code = http.StatusServiceUnavailable
		} else {
			status["database"] = "ok"
		}
	}

	s.jsonResponse(w, code, status)
}

// handleAnalyze extracts a CV profile from raw text.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.CVText) == "" {
		s.errorResponse(w, http.StatusBadRequest, "cv_text is required")
		return
	}

	profile := s.extractor.BuildProfile(req.CVText)
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleMatch ranks jobs against the profile extracted from the request's CV
// text. Jobs come from the request body or, when absent, from the store.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.CVText) == "" {
		s.errorResponse(w, http.StatusBadRequest, "cv_text is required")
		return
	}

	jobs := req.Jobs
	if len(jobs) == 0 {
		if s.store == nil {
			s.errorResponse(w, http.StatusBadRequest, "no jobs provided and no job store configured")
			return
		}
		var err error
		jobs, err = s.store.ListJobs(r.Context())
		if err != nil {
			s.log.Error("failed to list jobs", zap.Error(err))
			s.errorResponse(w, http.StatusServiceUnavailable, "job store unavailable")
			return
		}
	}
	if len(jobs) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "job catalog is empty")
		return
	}

	profile := s.extractor.BuildProfile(req.CVText)
	results := s.matcher.RankJobs(profile, jobs)

	resp := MatchResponse{
		Profile: summarizeProfile(profile),
		Matches: results,
	}

	if req.Explain && s.explainer != nil {
		resp.Explanations = s.explainMatches(r.Context(), profile, results)
	}

	if s.store != nil {
		runID, err := s.store.SaveMatchRun(r.Context(), profile, results)
		if err != nil {
			s.log.Warn("failed to save match run", zap.Error(err))
		} else {
			resp.RunID = runID.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// explainMatches generates per-job narratives, keyed by job ID. Failures are
// logged and skipped so one bad LLM call does not sink the response.
func (s *Server) explainMatches(ctx context.Context, profile *types.CVProfile, results []types.MatchResult) map[string]string {
	explanations := make(map[string]string, len(results))
	for _, result := range results {
		text, err := s.explainer.ExplainMatch(ctx, profile, result)
		if err != nil {
			s.log.Warn("failed to explain match",
				zap.String("job_id", result.Job.ID),
				zap.Error(err))
			continue
		}
		explanations[result.Job.ID] = text
	}
	return explanations
}

// handleAccuracy runs the built-in evaluation suite against the live engine.
func (s *Server) handleAccuracy(w http.ResponseWriter, r *http.Request) {
	harness := accuracy.NewHarness(s.extractor.BuildProfile, s.matcher.RankJobs)
	report := harness.Run()
	s.jsonResponse(w, http.StatusOK, report)
}
