package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-job-matcher/internal/config"
	"github.com/jonathan/cv-job-matcher/internal/extraction"
	"github.com/jonathan/cv-job-matcher/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract a structured profile from a CV",
	Long:  `Reads a CV file (txt, pdf or docx), extracts skills, experience, education and keywords, and prints the resulting profile.`,
	RunE:  runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeCV         string
	analyzeJSON       bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeCV, "cv", "c", "", "Path to CV file (txt, pdf or docx)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full profile as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, analyzeConfigPath, config.Config{
		CV:      analyzeCV,
		Verbose: analyzeVerbose,
	})
	if err != nil {
		return err
	}

	text, err := readCVText(cfg)
	if err != nil {
		return err
	}

	profile := extraction.NewExtractor().BuildProfile(text)

	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(profile)
	}

	printProfile(profile)
	return nil
}

func printProfile(profile *types.CVProfile) {
	fmt.Printf("CV type:          %s\n", profile.CVType)
	fmt.Printf("Skill score:      %.1f / 100\n", profile.SkillScore)
	fmt.Printf("Experience:       %.1f years\n", profile.ExperienceYears)

	if len(profile.SkillsFound) > 0 {
		fmt.Printf("Skills:           %s\n", strings.Join(profile.SkillsFound, ", "))
	}
	for category, hits := range profile.SkillsByCategory {
		if len(hits) == 0 {
			continue
		}
		names := make([]string, 0, len(hits))
		for _, hit := range hits {
			names = append(names, fmt.Sprintf("%s (%d)", hit.Skill, hit.Count))
		}
		fmt.Printf("  %-15s %s\n", category+":", strings.Join(names, ", "))
	}

	if len(profile.Education) > 0 {
		fmt.Println("Education:")
		for _, entry := range profile.Education {
			fmt.Printf("  - [%s] %s\n", entry.Level, entry.Text)
		}
	}

	if len(profile.ExperienceList) > 0 {
		fmt.Println("Positions:")
		for _, entry := range profile.ExperienceList {
			fmt.Printf("  - %s %s (%.1f years)\n", entry.Title, entry.Period, entry.EstimatedYears)
		}
	}
}
