package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/saas-metrics/internal/config"
	"github.com/iwvelando/saas-metrics/pkg/constants"
)

var (
	cfg            *config.Configuration
	configLocation string
	logLevel       string
)

var rootCmd = &cobra.Command{
	Use:   "saas-metrics",
	Short: "SaaS metrics calculator",
	Long: "Derives ~45 standard SaaS KPIs (growth, retention, unit economics, financial\n" +
		"performance) from one month of business inputs, rates them against benchmark\n" +
		"thresholds, and serves the metric relationship graph behind the dashboard views.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfiguration(configLocation)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if err := config.InitLogger(cfg.Logging); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// loadConfiguration reads the config file when it exists and otherwise falls
// back to the default industry profile, so graph and serve subcommands work
// without any file present.
func loadConfiguration(path string) (*config.Configuration, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &config.Configuration{
			Industry: constants.DefaultIndustry,
			Inputs:   config.DefaultInputs(constants.DefaultIndustry),
			Logging:  config.LoggingConfig{Level: "info", Format: "json"},
			Output:   config.OutputConfig{Format: constants.OutputFormatPretty},
		}, nil
	}
	return config.Load(path)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configLocation, "config", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
