package main

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heesch/corona"
	"github.com/katalvlaran/heesch/search"
)

var (
	searchWorkers   int
	searchMax       int
	searchVertex    bool
	searchTimeout   time.Duration
	searchMinReport int

	searchCmd = &cobra.Command{
		Use:   "search <size>",
		Short: "Sweep every free polyiamond of a size",
		Long: `search enumerates all free polyiamonds with the given number of cells,
computes each shape's Heesch number on a worker pool, and prints the
distribution of outcomes. Shapes at or above --min-report are printed
with their cells so record candidates can be re-run individually.`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}
)

func init() {
	searchCmd.Flags().IntVar(&searchWorkers, "workers", 0,
		"worker pool size (0 = number of CPUs, capped at 8)")
	searchCmd.Flags().IntVar(&searchMax, "max-coronas", corona.DefaultMaxCoronas,
		"per-shape corona cap")
	searchCmd.Flags().BoolVar(&searchVertex, "vertex-touch", false,
		"require only vertex contact between coronas")
	searchCmd.Flags().DurationVar(&searchTimeout, "shape-timeout", 0,
		"per-shape time budget; shapes over budget are reported as unknown")
	searchCmd.Flags().IntVar(&searchMinReport, "min-report", 1,
		"print example shapes for Heesch numbers at or above this value")
}

func runSearch(cmd *cobra.Command, args []string) error {
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("size %q: %w", args[0], err)
	}

	opts := search.DefaultOptions()
	opts.Workers = searchWorkers
	opts.MaxCoronas = searchMax
	if searchVertex {
		opts.Touch = corona.TouchVertex
	}
	opts.PerShapeTimeout = searchTimeout
	opts.MinReport = searchMinReport
	opts.Logger = newLogger()

	start := time.Now()
	summary, _, err := search.Run(cmd.Context(), size, opts)
	if err != nil {
		return err
	}

	printSummary(cmd, summary, time.Since(start))

	return nil
}

func printSummary(cmd *cobra.Command, s search.Summary, elapsed time.Duration) {
	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)

	bold.Fprintf(out, "%d-iamonds: %d shapes\n", s.Size, s.Shapes)
	fmt.Fprintf(out, "  tile the plane: %d\n", s.TilesPlane)
	if s.Unknown > 0 {
		fmt.Fprintf(out, "  unknown: %d\n", s.Unknown)
	}

	numbers := make([]int, 0, len(s.Distribution))
	for h := range s.Distribution {
		numbers = append(numbers, h)
	}
	sort.Ints(numbers)
	for _, h := range numbers {
		fmt.Fprintf(out, "  Heesch %d: %d\n", h, s.Distribution[h])
		for _, p := range s.Examples[h] {
			fmt.Fprintf(out, "    %s\n", formatPairs(p.Cells()))
		}
	}
	fmt.Fprintf(out, "elapsed: %s\n", elapsed.Round(time.Millisecond))
}
