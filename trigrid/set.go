package trigrid

import "sort"

// CellSet is an unordered set of cells. The zero value is not usable;
// construct with NewCellSet or make.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells, discarding duplicates.
// Complexity: O(n).
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}

	return s
}

// Has reports membership of c.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]

	return ok
}

// Add inserts c into s.
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Len returns the number of cells in s.
func (s CellSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of s.
// Complexity: O(n).
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}

	return out
}

// Disjoint reports whether s and t share no cell.
// Complexity: O(min(|s|,|t|)).
func (s CellSet) Disjoint(t CellSet) bool {
	small, large := s, t
	if len(t) < len(s) {
		small, large = t, s
	}
	for c := range small {
		if large.Has(c) {
			return false
		}
	}

	return true
}

// Cells returns the members of s sorted by (X, Y). The slice is freshly
// allocated; callers may retain it.
// Complexity: O(n log n).
func (s CellSet) Cells() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	SortCells(out)

	return out
}

// SortCells orders cells in place by X, then Y.
func SortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}

		return cells[i].Y < cells[j].Y
	})
}

// Translate returns a copy of s shifted by (dx, dy).
// Complexity: O(n).
func Translate(s CellSet, dx, dy int) CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c.Translate(dx, dy)] = struct{}{}
	}

	return out
}

// Boundary returns every cell edge-adjacent to s but not in s. This is the
// set of cells a corona must cover.
// Complexity: O(n).
func Boundary(s CellSet) CellSet {
	out := make(CellSet)
	for c := range s {
		for _, n := range c.Neighbors() {
			if !s.Has(n) {
				out[n] = struct{}{}
			}
		}
	}

	return out
}

// VertexFrontier returns every cell outside s that shares at least one
// lattice vertex with a cell of s. The frontier is a superset of Boundary
// and seeds placement generation under the vertex-touch rule.
// Complexity: O(n).
func VertexFrontier(s CellSet) CellSet {
	out := make(CellSet)
	for c := range s {
		for _, v := range c.Vertices() {
			for _, n := range incidentCells(v) {
				if !s.Has(n) {
					out[n] = struct{}{}
				}
			}
		}
	}

	return out
}

// NormalizeOffset returns the translation (dx, dy) that Normalize applies:
// the shift moving min X and min Y toward the origin, adjusted so dx+dy
// stays even and orientations survive.
func NormalizeOffset(s CellSet) (dx, dy int) {
	if len(s) == 0 {
		return 0, 0
	}
	first := true
	minX, minY := 0, 0
	for c := range s {
		if first || c.X < minX {
			minX = c.X
		}
		if first || c.Y < minY {
			minY = c.Y
		}
		first = false
	}
	if mod2(minX+minY) != 0 {
		minX--
	}

	return -minX, -minY
}

// Normalize translates s to canonical position: minimal coordinates at the
// origin up to the parity constraint. Congruent sets that differ only by a
// lattice translation normalize identically.
// Complexity: O(n).
func Normalize(s CellSet) CellSet {
	dx, dy := NormalizeOffset(s)
	if dx == 0 && dy == 0 {
		return s.Clone()
	}

	return Translate(s, dx, dy)
}
