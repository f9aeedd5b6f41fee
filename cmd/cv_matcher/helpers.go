package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-job-matcher/internal/catalog"
	"github.com/jonathan/cv-job-matcher/internal/config"
	"github.com/jonathan/cv-job-matcher/internal/logger"
	"github.com/jonathan/cv-job-matcher/internal/textextract"
	"github.com/jonathan/cv-job-matcher/internal/types"
)

// newLogger builds the CLI logger. Console encoding; debug level when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	return logger.New(false, verbose)
}

// loadMergedConfig loads the optional config file and applies it as defaults
// under the explicitly set CLI flags. Flag values win.
func loadMergedConfig(cmd *cobra.Command, configPath string, flags config.Config) (config.Config, error) {
	cfg := flags
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*loaded)

		// Bools never merge implicitly; honor the file only when the flag
		// was not set on the command line.
		if !cmd.Flags().Changed("use-browser") {
			cfg.UseBrowser = flags.UseBrowser || loaded.UseBrowser
		}
		if !cmd.Flags().Changed("verbose") {
			cfg.Verbose = flags.Verbose || loaded.Verbose
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// readCVText loads and extracts plain text from the configured CV file.
func readCVText(cfg config.Config) (string, error) {
	if cfg.CV == "" {
		return "", fmt.Errorf("a CV file is required (--cv or the 'cv' config key)")
	}
	text, err := textextract.FromFile(cfg.CV)
	if err != nil {
		return "", fmt.Errorf("failed to read CV: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("CV file %s contains no extractable text", cfg.CV)
	}
	return text, nil
}

// catalogSources builds the configured catalog sources. Validate has already
// rejected configs with more than one source.
func catalogSources(cfg config.Config, log *zap.Logger) []catalog.Source {
	var sources []catalog.Source
	if cfg.Catalog != "" {
		sources = append(sources, &catalog.FileSource{Path: cfg.Catalog})
	}
	if cfg.CatalogURL != "" {
		sources = append(sources, catalog.NewHTTPSource(cfg.CatalogURL))
	}
	if cfg.ScrapeURL != "" {
		sources = append(sources, &catalog.ScrapeSource{
			URL:        cfg.ScrapeURL,
			UseBrowser: cfg.UseBrowser,
			Log:        log,
		})
	}
	return sources
}

// loadJobs merges all configured catalog sources into one job list.
func loadJobs(ctx context.Context, cfg config.Config, log *zap.Logger) ([]types.JobListing, error) {
	sources := catalogSources(cfg, log)
	if len(sources) == 0 {
		return nil, fmt.Errorf("a job source is required (--catalog, --catalog-url or --scrape-url)")
	}
	return catalog.Merge(ctx, log, sources...)
}
