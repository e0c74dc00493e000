package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heesch/corona"
	"github.com/katalvlaran/heesch/polyiamond"
)

var (
	computeCells  string
	computeMax    int
	computeVertex bool
	computeWait   time.Duration

	computeCmd = &cobra.Command{
		Use:   "compute --cells \"x,y x,y ...\"",
		Short: "Compute the Heesch number of one shape",
		Long: `compute builds the shape from the given lattice cells, surrounds it
corona by corona, and prints the resulting Heesch number together with the
size of each corona.

A cell x,y is the upward triangle at (x,y) when x+y is even and the
downward one when x+y is odd.`,
		RunE: runCompute,
	}
)

func init() {
	computeCmd.Flags().StringVar(&computeCells, "cells", "",
		"shape cells as space-separated x,y pairs (required)")
	computeCmd.Flags().IntVar(&computeMax, "max-coronas", corona.DefaultMaxCoronas,
		"stop after this many coronas and report a plane tiling")
	computeCmd.Flags().BoolVar(&computeVertex, "vertex-touch", false,
		"require only vertex contact between coronas (default edge contact)")
	computeCmd.Flags().DurationVar(&computeWait, "timeout", 0,
		"abort the computation after this duration (0 = no limit)")
	_ = computeCmd.MarkFlagRequired("cells")
}

func runCompute(cmd *cobra.Command, _ []string) error {
	cells, err := parseCells(computeCells)
	if err != nil {
		return err
	}
	shape, err := polyiamond.New(cells)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if computeWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, computeWait)
		defer cancel()
	}

	opts := corona.DefaultOptions()
	opts.MaxCoronas = computeMax
	if computeVertex {
		opts.Touch = corona.TouchVertex
	}
	opts.Logger = newLogger()

	fmt.Fprintln(cmd.OutOrStdout(), shape)
	fmt.Fprintln(cmd.OutOrStdout(), "cells:", formatPairs(shape.Cells()))

	start := time.Now()
	res, err := corona.Compute(ctx, shape, opts)
	if err != nil {
		return err
	}

	printResult(cmd, res, time.Since(start))

	return nil
}

func printResult(cmd *cobra.Command, res corona.Result, elapsed time.Duration) {
	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)

	if res.TilesPlane {
		bold.Fprintf(out, "tiles the plane (%d+ coronas)\n", res.Heesch)
	} else {
		bold.Fprintf(out, "Heesch number: %d\n", res.Heesch)
	}
	if len(res.CoronaSizes) > 0 {
		fmt.Fprintln(out, "corona sizes:", res.CoronaSizes)
	}
	fmt.Fprintf(out, "elapsed: %s\n", elapsed.Round(time.Millisecond))
}
