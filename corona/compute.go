package corona

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/heesch/polyiamond"
	"github.com/katalvlaran/heesch/sat"
	"github.com/katalvlaran/heesch/trigrid"
)

// Compute reports the Heesch number of p: the maximum number of complete
// coronas that can be stacked around it, or the tiles-plane outcome when
// opts.MaxCoronas rounds complete.
//
// A committed corona can wall off a boundary pocket that no later copy can
// reach, so a single satisfying model per round is not enough: when a round
// cannot be completed, the previous round's corona is blocked and re-solved,
// recursively, until the deepest completable sequence is found or every
// alternative is exhausted. The reported number is a maximum over corona
// choices, not the depth of one arbitrary path.
//
// The returned Result is valid on every nil-error return. On error the
// Result carries the deepest sequence found before the failure, but the
// Heesch number is unknown: an interrupted backend proves nothing.
func Compute(ctx context.Context, p *polyiamond.Polyiamond, opts Options) (Result, error) {
	if p == nil {
		return Result{}, ErrNilShape
	}
	if opts.MaxCoronas <= 0 {
		opts.MaxCoronas = DefaultMaxCoronas
	}
	if opts.Solver == nil {
		opts.Solver = sat.NewGophersat()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &engine{orients: orientationsOf(p), opts: opts, log: log}
	log.Info("heesch computation started",
		"cells", p.Size(),
		"orientations", len(e.orients),
		"max_coronas", opts.MaxCoronas)

	coronas, full, err := e.extend(ctx, p.CellSet(), 1)

	var res Result
	res.Coronas = coronas
	res.Heesch = len(coronas)
	for _, c := range coronas {
		res.CoronaSizes = append(res.CoronaSizes, len(c.Placements))
	}
	if err != nil {
		return res, err
	}
	if full {
		res.TilesPlane = true
		log.Info("corona cap reached, shape treated as tiling the plane",
			"rounds", opts.MaxCoronas)
	} else {
		log.Info("heesch number found",
			"heesch", res.Heesch,
			"corona_sizes", fmt.Sprint(res.CoronaSizes))
	}

	return res, nil
}

// engine carries the state shared by every round of one computation.
type engine struct {
	orients []orientation
	opts    Options
	log     *slog.Logger
}

// extend completes rounds round..MaxCoronas on top of occupied and returns
// the longest corona sequence it could build, with full reporting whether
// the sequence reaches the cap. occupied is never mutated.
//
// Each satisfying model is committed tentatively; if the rounds above it
// fall short of the cap, a blocking clause over the committed selection
// removes that corona from the round's model space and the round is solved
// again. Under the edge rule every model covers each boundary cell exactly
// once (two placements sharing a boundary cell are excluded pairwise), so
// strict supersets of a selection are already infeasible and negating the
// selected variables blocks exactly one corona.
func (e *engine) extend(ctx context.Context, occupied trigrid.CellSet, round int) (best []Corona, full bool, err error) {
	if round > e.opts.MaxCoronas {
		return nil, true, nil
	}

	boundary := trigrid.Boundary(occupied)
	seeds := boundary
	if e.opts.Touch == TouchVertex {
		seeds = trigrid.VertexFrontier(occupied)
	}

	candidates := findPlacements(e.orients, occupied, seeds)
	clauses, uncovered := buildFormula(candidates, boundary)
	e.log.Debug("corona round encoded",
		"round", round,
		"boundary", boundary.Len(),
		"candidates", len(candidates),
		"clauses", len(clauses))

	if len(uncovered) > 0 {
		e.log.Debug("boundary cell uncoverable",
			"round", round,
			"cell", fmt.Sprintf("(%d,%d)", uncovered[0].X, uncovered[0].Y))

		return nil, false, nil
	}

	for {
		verdict, err := e.opts.Solver.Solve(ctx, clauses)
		if err != nil {
			return best, false, fmt.Errorf("corona: round %d: %w", round, err)
		}
		if verdict.Status == sat.Unsat {
			return best, false, nil
		}
		if verdict.Status != sat.Sat {
			return best, false, fmt.Errorf("corona: round %d: %w", round, ErrIndeterminate)
		}

		chosen := selectedPlacements(candidates, verdict.Model)
		grown := occupied.Clone()
		for _, pl := range chosen {
			for _, c := range pl.Cells {
				grown.Add(c)
			}
		}

		deeper, complete, err := e.extend(ctx, grown, round+1)
		seq := append([]Corona{{
			Placements:        chosen,
			ConfigurationSize: grown.Len(),
		}}, deeper...)
		if len(seq) > len(best) {
			best = seq
		}
		if err != nil {
			return best, false, err
		}
		if complete {
			e.log.Info("corona committed",
				"round", round,
				"placements", len(chosen),
				"configuration", grown.Len())

			return best, true, nil
		}

		clauses = append(clauses, blockingClause(verdict.Model))
		e.log.Debug("corona dead end, blocking and retrying",
			"round", round,
			"reached", len(seq))
	}
}

// blockingClause negates the selection of model: any later model of the
// same round must drop at least one of the selected placements.
func blockingClause(model []bool) []int {
	var clause []int
	for i, selected := range model {
		if selected {
			clause = append(clause, -(i + 1))
		}
	}

	return clause
}
