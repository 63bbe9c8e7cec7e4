package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-labs/internal/core"
	"github.com/vovakirdan/tui-labs/internal/platform/tui"
)

var (
	flagRows    int
	flagCols    int
	flagVariant int
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Run the color table",
	Long: `Show a numbered grid of cells. One cell (the variant) is interactive:

  hover         - paints it a random color
  click         - paints it the picker color
  double-click  - paints every other cell the picker color

Controls:
  Mouse                 - Hover, click, double-click
  Arrows/hjkl           - Move the cursor (entering a cell counts as hover)
  Enter/Space           - Click the cursor cell
  D                     - Double-click the cursor cell
  Tab                   - Edit the picker color (rgb(r,g,b) or #rrggbb)
  1-9                   - Pick a palette color
  Q/Ctrl+C              - Quit

Examples:
  labs colors
  labs colors --rows 4 --cols 8 --variant 12
  labs colors --config ./colortable.yaml --log ./labs.log --debug`,
	Run: runColors,
}

func init() {
	colorsCmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows (overrides config)")
	colorsCmd.Flags().IntVar(&flagCols, "cols", 0, "Grid columns (overrides config)")
	colorsCmd.Flags().IntVar(&flagVariant, "variant", 0, "Id of the interactive cell (overrides config)")
}

func runColors(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cmd.Flags().Changed("rows") {
		cfg.Grid.Rows = flagRows
	}
	if cmd.Flags().Changed("cols") {
		cfg.Grid.Cols = flagCols
	}
	if cmd.Flags().Changed("variant") {
		cfg.Grid.Variant = flagVariant
	}

	logger, closeLog, err := newLogger(io.Discard, "labs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.DoubleClickInterval = cfg.DoubleClickInterval()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	if err := tui.Run(cfg, rt, logger); err != nil {
		logger.Error("color table failed", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running color table: %v\n", err)
		os.Exit(1)
	}
}
