// Package main provides the entry point for the CV job matcher CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_matcher",
	Short: "CV to job matching engine",
	Long:  "cv_matcher extracts a structured profile from a résumé, scores it against a job catalog with a weighted multi-factor matcher, and serves the results over a CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
