package polyiamond

import (
	"github.com/katalvlaran/heesch/trigrid"
)

// Polyiamond is an immutable connected set of triangular cells, stored in
// normalized position (minimal coordinates at the origin up to the lattice
// parity constraint). Construct with New or FromPairs.
type Polyiamond struct {
	cells  trigrid.CellSet
	sorted []trigrid.Cell
}

// New validates and normalizes cells into a Polyiamond. Duplicates collapse.
// Returns ErrEmptyShape for empty input and ErrNotConnected when the cells
// do not form a single edge-connected region.
// Complexity: O(n) plus the connectivity check.
func New(cells []trigrid.Cell) (*Polyiamond, error) {
	set := trigrid.NewCellSet(cells...)
	if set.Len() == 0 {
		return nil, ErrEmptyShape
	}
	if err := checkConnected(set); err != nil {
		return nil, err
	}

	return fromSet(trigrid.Normalize(set)), nil
}

// FromPairs builds a Polyiamond from (x, y) coordinate pairs, the form used
// in reports and on the command line.
func FromPairs(pairs [][2]int) (*Polyiamond, error) {
	cells := make([]trigrid.Cell, len(pairs))
	for i, p := range pairs {
		cells[i] = trigrid.Cell{X: p[0], Y: p[1]}
	}

	return New(cells)
}

// fromSet wraps an already-normalized, validated set without re-checking.
func fromSet(set trigrid.CellSet) *Polyiamond {
	return &Polyiamond{cells: set, sorted: set.Cells()}
}

// Size returns the number of cells.
func (p *Polyiamond) Size() int {
	return len(p.sorted)
}

// Cells returns the shape's cells sorted by (X, Y). The slice is a copy.
func (p *Polyiamond) Cells() []trigrid.Cell {
	out := make([]trigrid.Cell, len(p.sorted))
	copy(out, p.sorted)

	return out
}

// CellSet returns an independent copy of the occupied cells.
func (p *Polyiamond) CellSet() trigrid.CellSet {
	return p.cells.Clone()
}

// Pairs returns the cells as (x, y) pairs, sorted, for reporting.
func (p *Polyiamond) Pairs() [][2]int {
	out := make([][2]int, len(p.sorted))
	for i, c := range p.sorted {
		out[i] = [2]int{c.X, c.Y}
	}

	return out
}

// Boundary returns the cells edge-adjacent to the shape but outside it.
// Recomputed on each call; the shape itself never changes.
func (p *Polyiamond) Boundary() trigrid.CellSet {
	return trigrid.Boundary(p.cells)
}
