// Package cmd implements the CLI commands for catalogd.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/catalog-browser/internal/config"
	"github.com/donaldgifford/catalog-browser/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "catalogd",
	Short: "Query a remote product catalog",
	Long: "catalogd serves a JSON API over a third-party product catalog. It adds\n" +
		"word-prefix title search combined with category filters, pagination over\n" +
		"the filtered result set and normalized category menus.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file path (built-in defaults when empty)")

	rootCmd.AddCommand(
		serveCmd(),
		queryCmd(),
		productCmd(),
		categoriesCmd(),
		openapiCmd(),
		versionCommand(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)
	return log
}
