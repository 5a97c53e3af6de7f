// Package commands implements the rowset CLI commands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/rowset-go/cli/internal/config"
	"github.com/satishbabariya/rowset-go/telemetry"
)

// Version is the CLI version, set by the build.
var Version = "dev"

// Execute is the main entry point for the CLI
func Execute() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	telemetry.Init(Version, cfg.TelemetryEnabled)
	defer telemetry.Shutdown()

	rootCmd := &cobra.Command{
		Use:           "rowset",
		Short:         "Typed access to SQL query results",
		Long:          "rowset executes SQL statements and renders their results, using the same typed-result runtime the library exposes.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "database connection string (defaults to DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.Provider, "provider", cfg.Provider, "database provider (postgresql, mysql, sqlite)")

	rootCmd.AddCommand(newQueryCommand(cfg))
	rootCmd.AddCommand(newExecCommand(cfg))
	rootCmd.AddCommand(newPingCommand(cfg))

	return rootCmd.Execute()
}
