package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-job-matcher/internal/config"
	"github.com/jonathan/cv-job-matcher/internal/db"
	"github.com/jonathan/cv-job-matcher/internal/extraction"
	"github.com/jonathan/cv-job-matcher/internal/llm"
	"github.com/jonathan/cv-job-matcher/internal/matching"
	"github.com/jonathan/cv-job-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a CV against a job catalog",
	Long: `Extracts a profile from the CV, scores it against every job from the
configured catalog source, and prints the ranked matches.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runMatch,
}

var (
	matchConfigPath  string
	matchCV          string
	matchCatalog     string
	matchCatalogURL  string
	matchScrapeURL   string
	matchMinScore    int
	matchMaxResults  int
	matchAPIKey      string
	matchExplain     bool
	matchUseBrowser  bool
	matchJSON        bool
	matchVerbose     bool
	matchDatabaseURL string
)

func init() {
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	matchCmd.Flags().StringVarP(&matchCV, "cv", "c", "", "Path to CV file (txt, pdf or docx)")
	matchCmd.Flags().StringVar(&matchCatalog, "catalog", "", "Path to job catalog JSON file (mutually exclusive with --catalog-url and --scrape-url)")
	matchCmd.Flags().StringVar(&matchCatalogURL, "catalog-url", "", "URL serving a job catalog JSON document")
	matchCmd.Flags().StringVar(&matchScrapeURL, "scrape-url", "", "Job board URL to scrape a listing from")
	matchCmd.Flags().IntVar(&matchMinScore, "min-score", 0, "Minimum match score to include in results")
	matchCmd.Flags().IntVar(&matchMaxResults, "max-results", 0, "Maximum number of ranked results")
	matchCmd.Flags().BoolVar(&matchExplain, "explain", false, "Generate an LLM narrative for each match (requires API key)")
	matchCmd.Flags().BoolVar(&matchUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print results as JSON")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for match-run persistence
	matchCmd.Flags().StringVar(&matchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, matchConfigPath, config.Config{
		CV:          matchCV,
		Catalog:     matchCatalog,
		CatalogURL:  matchCatalogURL,
		ScrapeURL:   matchScrapeURL,
		MinScore:    matchMinScore,
		MaxResults:  matchMaxResults,
		APIKey:      matchAPIKey,
		UseBrowser:  matchUseBrowser,
		Verbose:     matchVerbose,
		DatabaseURL: matchDatabaseURL,
	})
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	text, err := readCVText(cfg)
	if err != nil {
		return err
	}

	jobs, err := loadJobs(ctx, cfg, log)
	if err != nil {
		return err
	}
	log.Debug("catalog loaded", zap.Int("jobs", len(jobs)))

	profile := extraction.NewExtractor().BuildProfile(text)
	results := matching.NewMatcher().RankJobs(profile, jobs)
	results = applyResultLimits(results, cfg)

	explanations := map[string]string{}
	if matchExplain {
		explanations, err = explainResults(ctx, cfg, log, profile, results)
		if err != nil {
			return err
		}
	}

	if cfg.DatabaseURL != "" {
		saveRun(ctx, log, cfg.DatabaseURL, profile, results)
	}

	if matchJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			Profile      *types.CVProfile    `json:"profile"`
			Matches      []types.MatchResult `json:"matches"`
			Explanations map[string]string   `json:"explanations,omitempty"`
		}{profile, results, explanations})
	}

	printMatches(profile, results, explanations)
	return nil
}

// applyResultLimits narrows the engine's ranking to the configured bounds.
// The engine's own threshold and cap still apply first.
func applyResultLimits(results []types.MatchResult, cfg config.Config) []types.MatchResult {
	if cfg.MinScore > 0 {
		filtered := results[:0]
		for _, result := range results {
			if result.MatchScore >= cfg.MinScore {
				filtered = append(filtered, result)
			}
		}
		results = filtered
	}
	if cfg.MaxResults > 0 && len(results) > cfg.MaxResults {
		results = results[:cfg.MaxResults]
	}
	return results
}

func explainResults(ctx context.Context, cfg config.Config, log *zap.Logger, profile *types.CVProfile, results []types.MatchResult) (map[string]string, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("--explain requires an API key (--api-key or GEMINI_API_KEY)")
	}

	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	explainer := llm.NewExplainer(client)
	explanations := make(map[string]string, len(results))
	for _, result := range results {
		narrative, err := explainer.ExplainMatch(ctx, profile, result)
		if err != nil {
			log.Warn("failed to explain match", zap.String("job_id", result.Job.ID), zap.Error(err))
			continue
		}
		explanations[result.Job.ID] = narrative
	}
	return explanations, nil
}

// saveRun persists the match run when a database is configured. Failures are
// logged, not fatal; the CLI result already went to stdout.
func saveRun(ctx context.Context, log *zap.Logger, databaseURL string, profile *types.CVProfile, results []types.MatchResult) {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		log.Warn("failed to connect to database", zap.Error(err))
		return
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		log.Warn("failed to ensure schema", zap.Error(err))
		return
	}
	runID, err := database.SaveMatchRun(ctx, profile, results)
	if err != nil {
		log.Warn("failed to save match run", zap.Error(err))
		return
	}
	log.Info("match run saved", zap.String("run_id", runID.String()))
}

func printMatches(profile *types.CVProfile, results []types.MatchResult, explanations map[string]string) {
	fmt.Printf("Profile: %s, %.1f years, skill score %.1f\n\n",
		profile.CVType, profile.ExperienceYears, profile.SkillScore)

	if len(results) == 0 {
		fmt.Println("No matching jobs found.")
		return
	}

	for i, result := range results {
		header := result.Job.Title
		if result.Job.Company != "" {
			header += " at " + result.Job.Company
		}
		fmt.Printf("%d. %s  [score %d]\n", i+1, header, result.MatchScore)
		if result.Job.Location != "" {
			fmt.Printf("   Location: %s\n", result.Job.Location)
		}
		for _, reason := range result.MatchReasons {
			fmt.Printf("   - %s\n", reason)
		}
		if narrative, ok := explanations[result.Job.ID]; ok {
			fmt.Printf("   %s\n", strings.TrimSpace(narrative))
		}
		fmt.Println()
	}
}
