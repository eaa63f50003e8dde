package main

import (
	"context"
	"fmt"

	"github.com/jonathan/badge-engine/internal/badges"
	"github.com/jonathan/badge-engine/internal/config"
	"github.com/jonathan/badge-engine/internal/db"
	"github.com/jonathan/badge-engine/internal/llm"
	"github.com/jonathan/badge-engine/internal/observability"
)

// buildCalculator wires the database, LLM client, and calculator from
// configuration. The returned cleanup releases both connections.
func buildCalculator(ctx context.Context, cfg *config.Config, printer *observability.Printer) (*badges.Calculator, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	llmConfig := llm.DefaultConfig()
	if cfg.LiteModel != "" {
		llmConfig = llmConfig.WithModel(llm.TierLite, cfg.LiteModel)
	}
	if cfg.StandardModel != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, cfg.StandardModel)
	}

	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	cleanup := func() {
		client.Close()
		database.Close()
	}

	return badges.NewCalculator(database, database, database, client, printer), cleanup, nil
}

// loadConfig merges an optional config file with the environment.
func loadConfig(configPath string) (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
