package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/badge-engine/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes badge calculation over REST.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	cfg.Port = resolvePort(cmd.Flags().Changed("port"), servePort, cfg.Port)

	calculator, cleanup, err := buildCalculator(cmd.Context(), cfg, nil)
	if err != nil {
		return fmt.Errorf("failed to build calculator: %w", err)
	}
	defer cleanup()

	return server.NewServer(calculator, cfg.Port).Start()
}

// resolvePort picks the listen port: an explicitly set flag wins over the
// config file; the flag default only fills a port the file left unset.
func resolvePort(flagChanged bool, flagPort, configPort int) int {
	if flagChanged || configPort == 0 {
		return flagPort
	}
	return configPort
}
