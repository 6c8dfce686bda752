package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	logLevel string
	cfgFile  string
)

var rootCmd = &cobra.Command{
	Use:   "refnx",
	Short: "Curve fitting with a derivative-free global optimizer",
	Long: `refnx fits parametric models to measured data by minimizing chi-squared
with a population-based global optimizer, and persists fit runs for later
inspection.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logger
		var level slog.Level
		switch logLevel {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		opts := &slog.HandlerOptions{Level: level}
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))

		// Optimizer and store defaults, overridable from a config file
		viper.SetDefault("optimizer.iters", 200)
		viper.SetDefault("optimizer.pop", 30)
		viper.SetDefault("optimizer.seed", 42)
		viper.SetDefault("store.dir", "./data")

		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			slog.Debug("Loaded config", "file", viper.ConfigFileUsed())
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (yaml)")
}
