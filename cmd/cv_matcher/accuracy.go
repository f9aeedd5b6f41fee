package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-job-matcher/internal/accuracy"
	"github.com/jonathan/cv-job-matcher/internal/extraction"
	"github.com/jonathan/cv-job-matcher/internal/matching"
)

var accuracyCmd = &cobra.Command{
	Use:   "accuracy",
	Short: "Run the built-in accuracy evaluation suite",
	Long:  `Runs the labelled sample CVs through extraction and matching, compares the outcomes against their expectations, and prints a per-dimension accuracy report.`,
	RunE:  runAccuracy,
}

var (
	accuracyJSON     bool
	accuracyFailFail bool
)

func init() {
	accuracyCmd.Flags().BoolVar(&accuracyJSON, "json", false, "Print the report as JSON")
	accuracyCmd.Flags().BoolVar(&accuracyFailFail, "fail-on-regression", false, "Exit non-zero when any test case fails")
	rootCmd.AddCommand(accuracyCmd)
}

func runAccuracy(_ *cobra.Command, _ []string) error {
	extractor := extraction.NewExtractor()
	matcher := matching.NewMatcher()

	harness := accuracy.NewHarness(extractor.BuildProfile, matcher.RankJobs)
	report := harness.Run()

	if accuracyJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return err
		}
	} else {
		accuracy.NewPrinter(os.Stdout).PrintReport(report)
	}

	if accuracyFailFail && report.Summary.FailedTests > 0 {
		return fmt.Errorf("%d of %d accuracy tests failed",
			report.Summary.FailedTests, report.Summary.TotalTests)
	}
	return nil
}
