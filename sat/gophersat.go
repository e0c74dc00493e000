package sat

import (
	"context"
	"fmt"

	"github.com/crillab/gophersat/solver"
)

// NewGophersat returns the default Solver, backed by gophersat. The returned
// value is stateless: every Solve call parses the clauses into a fresh
// solver instance, so calls never share state and the value may be used
// from many goroutines at once.
func NewGophersat() Solver {
	return gophersat{}
}

type gophersat struct{}

// Solve runs gophersat on the given clauses. Cancellation is wired through
// gophersat's stop channel: when ctx fires mid-search the solver halts with
// an indeterminate status, surfaced as ErrInterrupted.
// Complexity: NP-hard; bounded only by ctx.
func (gophersat) Solve(ctx context.Context, clauses [][]int) (Result, error) {
	s := solver.New(solver.ParseSlice(clauses))

	// Relay ctx cancellation to the solver, and stop relaying once the
	// solver returns on its own.
	stop := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			close(stop)
		case <-finished:
		}
	}()

	// Optimal stops at the first zero-cost model, which for a pure decision
	// problem is the first model found. Intermediate results are drained.
	results := make(chan solver.Result)
	drained := make(chan struct{})
	go func() {
		for range results {
		}
		close(drained)
	}()

	res := s.Optimal(results, stop)
	close(finished)
	<-drained

	switch res.Status {
	case solver.Sat:
		model := s.Model()
		out := make([]bool, len(model))
		copy(out, model)

		return Result{Status: Sat, Model: out}, nil
	case solver.Unsat:
		return Result{Status: Unsat}, nil
	default:
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrInterrupted, err)
		}

		return Result{}, ErrInterrupted
	}
}
