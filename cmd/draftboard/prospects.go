package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/draft-board/internal/db"
	"github.com/jonathan/draft-board/internal/observability"
)

var prospectsCmd = &cobra.Command{
	Use:   "prospects",
	Short: "List stored prospects with optional filters",
	RunE:  runProspects,
}

var (
	prospectsPosition string
	prospectsStatus   string
	prospectsName     string
	prospectsLimit    int
	prospectsOffset   int
	prospectsDBURL    string
)

var markStatusCmd = &cobra.Command{
	Use:   "mark-status",
	Short: "Mark a prospect as active, withdrawn, or drafted",
	RunE:  runMarkStatus,
}

var (
	markStatusID    string
	markStatusValue string
	markStatusDBURL string
)

var deleteProspectCmd = &cobra.Command{
	Use:   "delete-prospect",
	Short: "Delete a prospect and all of its grade history",
	RunE:  runDeleteProspect,
}

var (
	deleteProspectID    string
	deleteProspectDBURL string
)

func init() {
	prospectsCmd.Flags().StringVarP(&prospectsPosition, "position", "p", "", "Filter by canonical position (QB, RB, WR, ...)")
	prospectsCmd.Flags().StringVar(&prospectsStatus, "status", "", "Filter by status (active, withdrawn, drafted)")
	prospectsCmd.Flags().StringVarP(&prospectsName, "name", "n", "", "Substring match on prospect name")
	prospectsCmd.Flags().IntVar(&prospectsLimit, "limit", 25, "Maximum prospects to show")
	prospectsCmd.Flags().IntVar(&prospectsOffset, "offset", 0, "Pagination offset")
	prospectsCmd.Flags().StringVar(&prospectsDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(prospectsCmd)

	markStatusCmd.Flags().StringVar(&markStatusID, "id", "", "Prospect UUID (required)")
	markStatusCmd.Flags().StringVar(&markStatusValue, "status", "", "New status: active, withdrawn, or drafted (required)")
	markStatusCmd.Flags().StringVar(&markStatusDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	markStatusCmd.MarkFlagRequired("id")
	markStatusCmd.MarkFlagRequired("status")
	rootCmd.AddCommand(markStatusCmd)

	deleteProspectCmd.Flags().StringVar(&deleteProspectID, "id", "", "Prospect UUID (required)")
	deleteProspectCmd.Flags().StringVar(&deleteProspectDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	deleteProspectCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(deleteProspectCmd)
}

func connectFromFlag(ctx context.Context, flagURL string) (*db.DB, error) {
	databaseURL := flagURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

func runProspects(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if prospectsPosition != "" && !db.IsValidPosition(prospectsPosition) {
		return fmt.Errorf("unknown position %q; valid positions: %v", prospectsPosition, db.Positions)
	}

	database, err := connectFromFlag(ctx, prospectsDBURL)
	if err != nil {
		return err
	}
	defer database.Close()

	prospects, total, err := database.ListProspects(ctx, db.ListProspectsOptions{
		Position: prospectsPosition,
		Status:   prospectsStatus,
		Name:     prospectsName,
		Limit:    prospectsLimit,
		Offset:   prospectsOffset,
	})
	if err != nil {
		return fmt.Errorf("failed to list prospects: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintProspects(prospects, total)
	return nil
}

func runMarkStatus(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	id, err := uuid.Parse(markStatusID)
	if err != nil {
		return fmt.Errorf("invalid prospect id: %w", err)
	}

	database, err := connectFromFlag(ctx, markStatusDBURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.MarkProspectStatus(ctx, id, markStatusValue); err != nil {
		return fmt.Errorf("failed to mark status: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Marked prospect %s as %s\n", id, markStatusValue)
	return nil
}

func runDeleteProspect(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	id, err := uuid.Parse(deleteProspectID)
	if err != nil {
		return fmt.Errorf("invalid prospect id: %w", err)
	}

	database, err := connectFromFlag(ctx, deleteProspectDBURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.DeleteProspect(ctx, id); err != nil {
		return fmt.Errorf("failed to delete prospect: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Deleted prospect %s and its grade history\n", id)
	return nil
}
