package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heesch/polyiamond"
)

var countCmd = &cobra.Command{
	Use:   "count <size>",
	Short: "Count free and fixed polyiamonds up to a size",
	Long: `count prints the census of polyiamonds for every size up to the given
one: free shapes (distinct up to rotation, reflection, translation) and
fixed shapes (distinct up to translation only).`,
	Args: cobra.ExactArgs(1),
	RunE: runCount,
}

func runCount(cmd *cobra.Command, args []string) error {
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("size %q: %w", args[0], err)
	}
	if size < 1 {
		return fmt.Errorf("size must be at least 1, got %d", size)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%5s %10s %10s\n", "size", "free", "fixed")
	for n := 1; n <= size; n++ {
		fmt.Fprintf(out, "%5d %10d %10d\n", n, polyiamond.Count(n), polyiamond.CountFixed(n))
	}

	return nil
}
