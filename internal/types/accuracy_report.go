// Package types provides type definitions for structured data used throughout the cv-job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// AccuracySummary aggregates a full harness run
type AccuracySummary struct {
	TotalTests      int       `json:"total_tests"`
	PassedTests     int       `json:"passed_tests"`
	FailedTests     int       `json:"failed_tests"`
	OverallAccuracy float64   `json:"overall_accuracy"` // passed/total, percent
	DurationMs      int64     `json:"duration_ms"`
	Timestamp       time.Time `json:"timestamp"`
}

// DimensionAccuracy holds per-dimension accuracy percentages
type DimensionAccuracy struct {
	CVType          float64 `json:"cv_type"`
	JobMatch        float64 `json:"job_match"`
	SkillScoreRange float64 `json:"skill_score_range"`
	ExperienceLevel float64 `json:"experience_level"`
}

// TestExpectation is the labeled ground truth for one sample
type TestExpectation struct {
	CVType          CVType  `json:"cv_type"`
	TopJobTitle     string  `json:"top_job_title"`
	SkillScoreMin   float64 `json:"skill_score_min"`
	SkillScoreMax   float64 `json:"skill_score_max"`
	ExperienceLevel string  `json:"experience_level"` // junior, mid-level, or senior
}

// TestObservation is what the pipeline actually produced for one sample
type TestObservation struct {
	CVType          CVType  `json:"cv_type"`
	TopJobTitle     string  `json:"top_job_title"`
	SkillScore      float64 `json:"skill_score"`
	ExperienceLevel string  `json:"experience_level"`
	Error           string  `json:"error,omitempty"`
}

// TestCaseResult records one sample's comparison against its expectation
type TestCaseResult struct {
	TestID       string          `json:"test_id"`
	Passed       bool            `json:"passed"`
	OverallScore float64         `json:"overall_score"` // mean of the four dimension scores, 0-1
	Actual       TestObservation `json:"actual"`
	Expected     TestExpectation `json:"expected"`
}

// AccuracyReport is the full output of an accuracy harness run
type AccuracyReport struct {
	Summary         AccuracySummary   `json:"summary"`
	Dimensions      DimensionAccuracy `json:"dimensions"`
	Results         []TestCaseResult  `json:"results"`
	Recommendations []string          `json:"recommendations"`
}
