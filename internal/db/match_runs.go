package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/cv-job-matcher/internal/types"
)

// MatchRun records one scored matching request for later inspection.
type MatchRun struct {
	ID              uuid.UUID           `json:"id"`
	CVType          types.CVType        `json:"cv_type"`
	SkillScore      float64             `json:"skill_score"`
	ExperienceYears float64             `json:"experience_years"`
	Results         []types.MatchResult `json:"results"`
	CreatedAt       time.Time           `json:"created_at"`
}

// SaveMatchRun stores the outcome of a matching request and returns its ID.
func (db *DB) SaveMatchRun(ctx context.Context, profile *types.CVProfile, results []types.MatchResult) (uuid.UUID, error) {
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal match results: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_runs (id, cv_type, skill_score, experience_years, results)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, string(profile.CVType), profile.SkillScore, profile.ExperienceYears, resultsJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match run: %w", err)
	}
	return id, nil
}

// GetMatchRun retrieves a match run by ID. Returns nil when it does not exist.
func (db *DB) GetMatchRun(ctx context.Context, id uuid.UUID) (*MatchRun, error) {
	var run MatchRun
	var cvType string
	var resultsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, cv_type, skill_score, experience_years, results, created_at
		 FROM match_runs WHERE id = $1`,
		id,
	).Scan(&run.ID, &cvType, &run.SkillScore, &run.ExperienceYears, &resultsJSON, &run.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match run %s: %w", id, err)
	}

	run.CVType = types.CVType(cvType)
	if err := json.Unmarshal(resultsJSON, &run.Results); err != nil {
		return nil, fmt.Errorf("failed to parse match results: %w", err)
	}
	return &run, nil
}

// ListMatchRuns retrieves the most recent match runs, newest first.
func (db *DB) ListMatchRuns(ctx context.Context, limit int) ([]MatchRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, cv_type, skill_score, experience_years, results, created_at
		 FROM match_runs ORDER BY created_at DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list match runs: %w", err)
	}
	defer rows.Close()

	var runs []MatchRun
	for rows.Next() {
		var run MatchRun
		var cvType string
		var resultsJSON []byte
		if err := rows.Scan(&run.ID, &cvType, &run.SkillScore, &run.ExperienceYears,
			&resultsJSON, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match run row: %w", err)
		}
		run.CVType = types.CVType(cvType)
		if err := json.Unmarshal(resultsJSON, &run.Results); err != nil {
			return nil, fmt.Errorf("failed to parse match results: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate match run rows: %w", err)
	}
	return runs, nil
}
