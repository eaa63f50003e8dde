// Package main provides the entry point for the badge engine service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "badge_service",
	Short: "Achievement badge calculation service",
	Long:  "Badge service evaluates a user's project metrics against the badge catalog and determines earned badges and tiers via LLM-backed threshold reasoning.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
