package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/cv-job-matcher/internal/types"
)

// JobRecord is a stored job listing with persistence metadata.
type JobRecord struct {
	types.JobListing
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertJob inserts a job listing, replacing an existing row with the same ID.
func (db *DB) UpsertJob(ctx context.Context, job types.JobListing) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO jobs (id, title, company, location, skills, requirements, experience, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET
			title = $2, company = $3, location = $4, skills = $5,
			requirements = $6, experience = $7, description = $8, updated_at = NOW()`,
		job.ID, job.Title, job.Company, job.Location, job.Skills,
		job.Requirements, job.Experience, job.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert job %s: %w", job.ID, err)
	}
	return nil
}

// GetJob retrieves a job listing by ID. Returns nil when the job does not exist.
func (db *DB) GetJob(ctx context.Context, id string) (*JobRecord, error) {
	var rec JobRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, company, location, skills, requirements, experience, description,
		        created_at, updated_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Title, &rec.Company, &rec.Location, &rec.Skills,
		&rec.Requirements, &rec.Experience, &rec.Description,
		&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}
	return &rec, nil
}

// ListJobs retrieves all stored job listings ordered by title.
func (db *DB) ListJobs(ctx context.Context) ([]types.JobListing, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, company, location, skills, requirements, experience, description
		 FROM jobs ORDER BY title, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobListing
	for rows.Next() {
		var job types.JobListing
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.Location,
			&job.Skills, &job.Requirements, &job.Experience, &job.Description); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job rows: %w", err)
	}
	return jobs, nil
}

// DeleteJob removes a job listing. Returns false when no row was deleted.
func (db *DB) DeleteJob(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ImportJobs upserts a batch of listings and returns the number stored.
func (db *DB) ImportJobs(ctx context.Context, jobs []types.JobListing) (int, error) {
	count := 0
	for _, job := range jobs {
		if err := db.UpsertJob(ctx, job); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
