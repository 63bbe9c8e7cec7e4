package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-labs/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the color table configuration",
	Long: `Print the configuration the color table would run with, as YAML.

The config is looked up in this order:
  --config <path>
  ~/.labs/configs/colortable.yaml
  ./configs/colortable.yaml
  built-in defaults

Examples:
  labs config
  labs config --defaults > ~/.labs/configs/colortable.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		//nolint:errcheck // Nothing to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Nothing to do if stdout is gone
	os.Stdout.Write(data)
}
