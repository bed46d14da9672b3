// package main is the entry point for the pr-status tool
package main

import (
	"log/slog"
	"os"

	configcmd "github.com/alan/pr-status/cmd/config"
	"github.com/alan/pr-status/cmd/report"
	"github.com/alan/pr-status/internal/commands"
	"github.com/alan/pr-status/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	var configFile string
	var logLevel string
	var logFormat string

	rootCmd := report.NewReportCmd(&configFile, config.LoadConfig)
	rootCmd.SilenceErrors = true
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		setupLogger(logLevel, logFormat)
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigPath(), "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(configcmd.NewConfigCmd(&configFile, config.LoadConfigFile, config.SaveConfig))

	if err := rootCmd.Execute(); err != nil {
		commands.DefaultUI().ReportError(err)
		os.Exit(1)
	}
}

func setupLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	// stdout carries the markdown report, so logs go to stderr
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
}
