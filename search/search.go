package search

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/heesch/corona"
	"github.com/katalvlaran/heesch/polyiamond"
)

// Run sweeps every free polyiamond of the given size through the corona
// engine and returns the aggregated Summary alongside the per-shape results,
// ordered by canonical shape.
//
// Complexity: O(shapes) corona computations, each dominated by SAT solving;
// the pool runs Options.Workers of them concurrently.
func Run(ctx context.Context, size int, opts Options) (Summary, []ShapeResult, error) {
	if size < 1 {
		return Summary{}, nil, ErrSize
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
		if workers > 8 {
			workers = 8
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	shapes := polyiamond.Enumerate(size)
	logger.Info("sweep started", "size", size, "shapes", len(shapes), "workers", workers)

	perShape := corona.Options{
		MaxCoronas: opts.MaxCoronas,
		Touch:      opts.Touch,
		Solver:     opts.Solver,
	}

	out := make([]ShapeResult, len(shapes))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = computeOne(ctx, shapes[i], perShape, opts.PerShapeTimeout)
			}
		}()
	}

feed:
	for i := range shapes {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Summary{}, nil, err
	}

	summary := fold(size, out, opts.MinReport, logger)

	return summary, out, nil
}

// computeOne runs a single shape under its own deadline.
func computeOne(ctx context.Context, p *polyiamond.Polyiamond, opts corona.Options, timeout time.Duration) ShapeResult {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := corona.Compute(ctx, p, opts)

	return ShapeResult{Shape: p, Result: res, Err: err}
}

// fold reduces per-shape results into the Summary counters.
func fold(size int, results []ShapeResult, minReport int, logger *slog.Logger) Summary {
	s := Summary{
		Size:         size,
		Shapes:       len(results),
		Distribution: make(map[int]int),
		Examples:     make(map[int][]*polyiamond.Polyiamond),
	}

	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Unknown++
			logger.Warn("shape skipped", "cells", r.Shape.Pairs(), "err", r.Err)
		case r.Result.TilesPlane:
			s.TilesPlane++
		default:
			h := r.Result.Heesch
			s.Distribution[h]++
			if h >= minReport && len(s.Examples[h]) < maxExamplesPerClass {
				s.Examples[h] = append(s.Examples[h], r.Shape)
			}
		}
	}
	logger.Info("sweep finished",
		"tilers", s.TilesPlane, "unknown", s.Unknown, "classes", len(s.Distribution))

	return s
}
