package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/draft-board/internal/config"
	"github.com/jonathan/draft-board/internal/db"
	"github.com/jonathan/draft-board/internal/observability"
	"github.com/jonathan/draft-board/internal/pipeline"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run one ingestion pass over every configured source",
	Long: `Scrape each configured draft-board source, normalize the records, resolve
prospect identities against the stored board, convert grades to the shared
5.0-10.0 scale, and upsert the results.

Sources run concurrently and are isolated: a blocked or broken source is
reported at the end without aborting the others.`,
	RunE: runIngest,
}

var (
	ingestConfigPath  string
	ingestSources     []string
	ingestVerbose     bool
	ingestDatabaseURL string
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestConfigPath, "config", "c", "", "Path to config.json (required)")
	ingestCmd.Flags().StringSliceVarP(&ingestSources, "source", "s", nil, "Only ingest the named sources (repeatable)")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed debug information")
	ingestCmd.Flags().StringVar(&ingestDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	ingestCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	loaded, err := config.LoadConfig(ingestConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg := loaded.MergeWithDefaults(config.Config{})

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = ingestVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = ingestDatabaseURL
	}
	if len(ingestSources) > 0 {
		cfg.Sources = filterSources(cfg.Sources, ingestSources)
		if len(cfg.Sources) == 0 {
			return fmt.Errorf("no configured source matches %v", ingestSources)
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	opts := &pipeline.RunOptions{
		Config:  cfg,
		Store:   database,
		Verbose: cfg.Verbose,
	}
	if cfg.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stdout, "[%s] %s: %s\n", event.Source, event.Stage, event.Message)
		}
	}

	report, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintReport(report)
	printer.PrintUnresolved(report)
	if cfg.Verbose {
		printer.PrintErrors(report)
	}

	if report.Failed() {
		return fmt.Errorf("one or more sources failed; see report above")
	}
	return nil
}

func filterSources(sources []config.SourceConfig, names []string) []config.SourceConfig {
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	var out []config.SourceConfig
	for _, src := range sources {
		if keep[src.Name] {
			out = append(out, src)
		}
	}
	return out
}
