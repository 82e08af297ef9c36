// Package main provides the entry point for the draftboard ingestion CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "draftboard",
	Short: "NFL draft prospect grade aggregator",
	Long:  "draftboard scrapes public draft-board sources, resolves prospect identities across sites, converts every grade to a shared 5.0-10.0 scale, and persists the unified board to PostgreSQL.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
