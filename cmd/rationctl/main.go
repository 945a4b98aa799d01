// rationctl runs maintenance tasks against the configured storage.
//
// Usage:
//
//	rationctl migrate   apply the embedded schema
//	rationctl seed      load districts, catalog, the first administrator and demo shops
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rationshop-api/pkg/config"
	"github.com/jhoicas/rationshop-api/pkg/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "rationctl",
	Short: "Maintenance commands for the ration shop API",
	Long: `rationctl reads the same configuration as the API (.env, config.env and
environment variables) and runs one maintenance task against its database.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(migrateCmd, seedCmd)
}

// setup loads the configuration and the logger shared by every command.
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level, Out: os.Stderr})
	return cfg, log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
