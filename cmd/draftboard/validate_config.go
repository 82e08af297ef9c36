package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/draft-board/internal/config"
	"github.com/jonathan/draft-board/internal/schemas"
)

var validateConfigCmd = &cobra.Command{
	Use:   "validate-config",
	Short: "Validate an ingestion config file",
	Long:  "Validates a config.json against the bundled JSON Schema and the semantic rules (unique source names, grade ranges, scale breakpoints, match thresholds).",
	RunE:  runValidateConfig,
}

var validateConfigPath string

func init() {
	validateConfigCmd.Flags().StringVarP(&validateConfigPath, "config", "c", "", "Path to config.json (required)")

	if err := validateConfigCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}

	rootCmd.AddCommand(validateConfigCmd)
}

func runValidateConfig(_ *cobra.Command, _ []string) error {
	if err := validateConfigFile(validateConfigPath); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Config is valid: %s\n", validateConfigPath)
	return nil
}

// validateConfigFile runs the schema check first (field names and types),
// then the semantic rules the schema cannot express.
func validateConfigFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", path)
	}

	if err := schemas.ValidateSourceConfig(path); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("config does not match schema: %w", err)
		}
		// Schema missing or unloadable: fall through to semantic validation
		_, _ = fmt.Fprintf(os.Stderr, "Warning: could not run schema validation: %v\n", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.Validate()
}
