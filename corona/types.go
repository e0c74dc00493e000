package corona

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/heesch/sat"
	"github.com/katalvlaran/heesch/trigrid"
)

// Sentinel errors for the corona engine.
var (
	// ErrNilShape indicates Compute was called with a nil shape.
	ErrNilShape = errors.New("corona: shape must be non-nil")
	// ErrIndeterminate indicates the backend returned neither SAT nor UNSAT
	// without reporting an error; the Heesch number is unknown.
	ErrIndeterminate = errors.New("corona: backend verdict indeterminate")
)

// TouchRule selects how a placement must contact the configuration to be a
// corona candidate.
type TouchRule int

const (
	// TouchEdge admits placements with at least one cell edge-adjacent to
	// the configuration. This is the default; under it every touching
	// placement covers a boundary cell and vice versa.
	TouchEdge TouchRule = iota
	// TouchVertex additionally admits placements that only share a lattice
	// vertex with the configuration. Boundary coverage requirements are
	// unchanged; only the candidate set grows.
	TouchVertex
)

// DefaultMaxCoronas is the round cap used when Options.MaxCoronas is unset.
// A shape completing this many rounds is reported as tiling the plane.
const DefaultMaxCoronas = 5

// Options configures Compute.
//
//   - MaxCoronas — round cap; reaching it yields the tiles-plane outcome
//     (0 or negative falls back to DefaultMaxCoronas).
//   - Touch      — the touching rule for placement candidates.
//   - Solver     — the SAT backend; nil falls back to sat.NewGophersat().
//   - Logger     — per-round progress via slog; nil disables logging.
type Options struct {
	MaxCoronas int
	Touch      TouchRule
	Solver     sat.Solver
	Logger     *slog.Logger
}

// DefaultOptions returns the standard configuration: five coronas,
// edge-touching, the gophersat backend, no logging.
func DefaultOptions() Options {
	return Options{
		MaxCoronas: DefaultMaxCoronas,
		Touch:      TouchEdge,
		Solver:     sat.NewGophersat(),
	}
}

// Placement is one positioned, transformed copy of the shape: the cells of
// Transform applied to the shape, translated by (DX, DY). Cells holds the
// materialized occupied cells, sorted by (X, Y).
type Placement struct {
	Transform trigrid.Transform
	DX, DY    int
	Cells     []trigrid.Cell
}

// Corona records one committed round: the placements selected by the
// backend and the configuration cell count after their cells were merged.
type Corona struct {
	Placements        []Placement
	ConfigurationSize int
}

// Result reports a Heesch computation.
//
// When TilesPlane is false, Heesch is the Heesch number: the depth of the
// deepest completable corona sequence over all corona choices. When
// TilesPlane is true the shape completed every requested round and Heesch
// only records the cap. CoronaSizes lists the committed placements per
// round of the reported sequence, e.g. [5, 10, 15, 21]; it is empty for
// Heesch number 0.
type Result struct {
	Heesch      int
	TilesPlane  bool
	CoronaSizes []int
	Coronas     []Corona
}
