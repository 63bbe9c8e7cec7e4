// labs runs the classroom widgets in the terminal.
//
// Usage:
//
//	labs colors              - Run the color table
//	labs serve               - Serve the color table over SSH
//	labs user <file>         - Decode a user record and print the DTO
//	labs config              - Print the effective color table config
//
// Global flags:
//
//	--config <path> - Color table config YAML (default: search ~/.labs/configs, ./configs)
//	--log <path>    - Write logs to a file (the TUI owns the terminal)
//	--debug         - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-labs/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "labs",
	Short: "Classroom widgets in your terminal",
	Long: `labs runs small classroom widgets as terminal programs.

Available commands:
  colors   - Color table: a numbered grid with one interactive cell
  serve    - Serve the color table over SSH
  user     - Decode a user record into a UserDto
  config   - Print the effective color table configuration

Examples:
  labs colors
  labs colors --variant 12
  labs serve --ssh :2222
  labs user ./user.json`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to color table config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the color table config and validates it.
func loadConfig() (config.ColorTableConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the logger from the global flags.
// Without --log the logger writes to fallback.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closer, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
