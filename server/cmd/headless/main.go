// engine2d-headless runs level packs without a window.
//
// Usage:
//
//	engine2d-headless run --levels assets/levels --script walk.yaml
//	engine2d-headless run --levels assets/demo/aabb.yaml --hold right --steps 300 --fast
//	engine2d-headless validate assets/levels
//
// Global flags:
//
//	--config <path>     - YAML config overlay
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/automoto/engine2d/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "headless",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "engine2d-headless",
	Short: "Run and check engine2d levels without a window",
	Long: `engine2d-headless steps the collision simulation without rendering.

Available commands:
  run       - Play a level sequence with scripted input and print a summary
  validate  - Load level files and report problems`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		used, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagLogLevel != "" {
			config.Log.Level = flagLogLevel
		}
		logger.SetLevel(config.LogLevel())
		if used != "" {
			logger.Debug("loaded config", "path", used)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
