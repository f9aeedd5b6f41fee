package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-job-matcher/internal/config"
	"github.com/jonathan/cv-job-matcher/internal/db"
)

var importJobsCmd = &cobra.Command{
	Use:   "import-jobs",
	Short: "Import a job catalog into the database",
	Long:  `Loads jobs from a catalog file, URL or job board page, validates them, and upserts them into the PostgreSQL jobs table. Existing jobs with the same ID are updated.`,
	RunE:  runImportJobs,
}

var (
	importConfigPath  string
	importCatalog     string
	importCatalogURL  string
	importScrapeURL   string
	importUseBrowser  bool
	importVerbose     bool
	importDatabaseURL string
)

func init() {
	importJobsCmd.Flags().StringVar(&importConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	importJobsCmd.Flags().StringVar(&importCatalog, "catalog", "", "Path to job catalog JSON file")
	importJobsCmd.Flags().StringVar(&importCatalogURL, "catalog-url", "", "URL serving a job catalog JSON document")
	importJobsCmd.Flags().StringVar(&importScrapeURL, "scrape-url", "", "Job board URL to scrape a listing from")
	importJobsCmd.Flags().BoolVar(&importUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	importJobsCmd.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "Print detailed debug information")
	importJobsCmd.Flags().StringVar(&importDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(importJobsCmd)
}

func runImportJobs(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, importConfigPath, config.Config{
		Catalog:     importCatalog,
		CatalogURL:  importCatalogURL,
		ScrapeURL:   importScrapeURL,
		UseBrowser:  importUseBrowser,
		Verbose:     importVerbose,
		DatabaseURL: importDatabaseURL,
	})
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("a database is required (--db-url or DATABASE_URL)")
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	jobs, err := loadJobs(ctx, cfg, log)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("catalog source produced no jobs")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	imported, err := database.ImportJobs(ctx, jobs)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	log.Info("jobs imported", zap.Int("imported", imported), zap.Int("total", len(jobs)))
	fmt.Printf("Imported %d of %d jobs.\n", imported, len(jobs))
	return nil
}
