package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heesch/trigrid"
)

var (
	rootCmd = &cobra.Command{
		Use:   "heesch",
		Short: "Heesch numbers of polyiamonds",
		Long: `heesch surrounds shapes made of unit triangles with rings of
congruent copies and reports how many complete rings (coronas) fit.`,
		SilenceUsage: true,
	}

	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log solver progress to stderr")
	rootCmd.AddCommand(computeCmd, searchCmd, countCmd)
}

// newLogger builds the progress logger: stderr text when --verbose, silent
// otherwise.
func newLogger() *slog.Logger {
	var w io.Writer = io.Discard
	if verbose {
		w = os.Stderr
	}

	return slog.New(slog.NewTextHandler(w, nil))
}

// parseCells decodes a shape description of the form "x,y x,y ...".
func parseCells(raw string) ([]trigrid.Cell, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no cells in %q", raw)
	}

	cells := make([]trigrid.Cell, 0, len(fields))
	for _, f := range fields {
		x, y, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("cell %q: want x,y", f)
		}
		cx, err := strconv.Atoi(x)
		if err != nil {
			return nil, fmt.Errorf("cell %q: %w", f, err)
		}
		cy, err := strconv.Atoi(y)
		if err != nil {
			return nil, fmt.Errorf("cell %q: %w", f, err)
		}
		cells = append(cells, trigrid.Cell{X: cx, Y: cy})
	}

	return cells, nil
}

// formatPairs renders cells as "(x,y) (x,y) ...".
func formatPairs(cells []trigrid.Cell) string {
	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%d,%d)", c.X, c.Y)
	}

	return b.String()
}
