// Package catalog loads job listings from files, HTTP endpoints and job
// boards, and merges them into a single deduplicated catalog.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-job-matcher/internal/types"
)

// Source produces job listings from one origin.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Load fetches and parses the listings.
	Load(ctx context.Context) ([]types.JobListing, error)
}

var validate = validator.New()

// Merge loads all sources concurrently and combines their listings.
// Duplicate IDs keep the listing from the source listed first. Listings that
// fail struct validation are dropped with a warning rather than failing the
// whole load.
func Merge(ctx context.Context, log *zap.Logger, sources ...Source) ([]types.JobListing, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no catalog sources configured")
	}

	loaded := make([][]types.JobListing, len(sources))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			jobs, err := src.Load(gctx)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			mu.Lock()
			loaded[i] = jobs
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var merged []types.JobListing
	for i, jobs := range loaded {
		for _, job := range jobs {
			if err := validate.Struct(job); err != nil {
				log.Warn("dropping invalid job listing",
					zap.String("source", sources[i].Name()),
					zap.String("id", job.ID),
					zap.Error(err))
				continue
			}
			if job.ID != "" {
				if seen[job.ID] {
					continue
				}
				seen[job.ID] = true
			}
			merged = append(merged, job)
		}
	}

	// Stable order regardless of which source finished first
	sort.SliceStable(merged, func(a, b int) bool { return merged[a].ID < merged[b].ID })

	return merged, nil
}
