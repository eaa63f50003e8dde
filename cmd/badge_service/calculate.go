package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/badge-engine/internal/observability"
)

var (
	calculateConfigPath string
	calculateProjects   []string
	calculateVerbose    bool
)

var calculateCmd = &cobra.Command{
	Use:   "calculate <user-id>",
	Short: "Calculate a user's earned badges",
	Long:  `Run one badge calculation for a user and print the earned badges as JSON. Use --project to restrict evaluation to specific projects.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCalculate,
}

func init() {
	calculateCmd.Flags().StringVar(&calculateConfigPath, "config", "", "Path to JSON config file")
	calculateCmd.Flags().StringSliceVar(&calculateProjects, "project", nil, "Project ID to include (repeatable)")
	calculateCmd.Flags().BoolVarP(&calculateVerbose, "verbose", "v", false, "Print evaluation traces")
	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(cmd *cobra.Command, args []string) error {
	userID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", args[0], err)
	}

	var projectIDs []uuid.UUID
	for _, raw := range calculateProjects {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid project id %q: %w", raw, err)
		}
		projectIDs = append(projectIDs, id)
	}

	cfg, err := loadConfig(calculateConfigPath)
	if err != nil {
		return err
	}

	var printer *observability.Printer
	if calculateVerbose || cfg.Verbose {
		printer = observability.NewPrinter(os.Stderr)
	}

	calculator, cleanup, err := buildCalculator(cmd.Context(), cfg, printer)
	if err != nil {
		return fmt.Errorf("failed to build calculator: %w", err)
	}
	defer cleanup()

	results, err := calculator.CalculateForUser(cmd.Context(), userID, projectIDs)
	if err != nil {
		return fmt.Errorf("badge calculation failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
