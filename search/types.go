package search

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/heesch/corona"
	"github.com/katalvlaran/heesch/polyiamond"
	"github.com/katalvlaran/heesch/sat"
)

// ErrSize is returned when the requested polyiamond size is below 1.
var ErrSize = errors.New("search: size must be at least 1")

// maxExamplesPerClass caps how many representative shapes a Summary keeps
// for each Heesch number.
const maxExamplesPerClass = 3

// Options tunes a batch sweep.
type Options struct {
	// Workers is the pool size. Zero selects min(GOMAXPROCS, 8).
	Workers int

	// MaxCoronas caps the per-shape corona loop; zero selects
	// corona.DefaultMaxCoronas.
	MaxCoronas int

	// Touch selects the adjacency rule passed to the corona engine.
	Touch corona.TouchRule

	// PerShapeTimeout bounds each shape's computation. Zero means no
	// per-shape deadline beyond the caller's context.
	PerShapeTimeout time.Duration

	// MinReport drops shapes with a smaller Heesch number from the
	// per-class Examples (the distribution still counts them).
	MinReport int

	// Solver overrides the SAT backend. Nil selects sat.NewGophersat.
	Solver sat.Solver

	// Logger receives per-shape progress. Nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns the options used by the heesch CLI.
func DefaultOptions() Options {
	return Options{
		MaxCoronas: corona.DefaultMaxCoronas,
		Touch:      corona.TouchEdge,
	}
}

// ShapeResult pairs one shape with its computation outcome. Err is non-nil
// when the shape timed out or the backend failed; Result is meaningful only
// when Err is nil.
type ShapeResult struct {
	Shape  *polyiamond.Polyiamond
	Result corona.Result
	Err    error
}

// Summary aggregates a full sweep of size-n shapes.
type Summary struct {
	// Size is the polyiamond size that was swept.
	Size int

	// Shapes is the number of free shapes enumerated.
	Shapes int

	// Distribution maps each finite Heesch number to the count of shapes
	// achieving it. Plane-tilers and unknowns are excluded.
	Distribution map[int]int

	// TilesPlane counts shapes that completed every corona up to the cap.
	TilesPlane int

	// Unknown counts shapes whose computation failed or timed out.
	Unknown int

	// Examples holds up to three representative shapes per finite Heesch
	// number, subject to Options.MinReport.
	Examples map[int][]*polyiamond.Polyiamond
}
