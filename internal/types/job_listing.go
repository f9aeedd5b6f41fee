// Package types provides type definitions for structured data used throughout the cv-job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobListing represents a job posting from the catalog.
// Title is the only required field; the scorer degrades gracefully when
// Skills, Requirements, or Experience are missing.
type JobListing struct {
	ID           string   `json:"id"`
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Skills       []string `json:"skills,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Experience   string   `json:"experience,omitempty"` // free-text level descriptor, e.g. "3-5 years"
	Description  string   `json:"description,omitempty"`
}

// MatchResult is the scored outcome of ranking one job against a profile.
// Results are created fresh per scoring run and are not persisted by the engine.
type MatchResult struct {
	Job          JobListing `json:"job"`
	MatchScore   int        `json:"match_score"`   // 0-100
	MatchReasons []string   `json:"match_reasons"` // at most 4 entries
}
