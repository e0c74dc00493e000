package polyiamond

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/heesch/trigrid"
)

// Canonical returns the canonical cell sequence of p: every symmetry in the
// lattice group is applied, each image is normalized, serialized to its
// sorted cell list, and the minimum is kept. Deterministic; two polyiamonds
// are congruent iff their canonical sequences are equal.
// Complexity: O(12 · n log n).
func (p *Polyiamond) Canonical() []trigrid.Cell {
	var best []trigrid.Cell
	for _, t := range trigrid.Transforms() {
		img := make(trigrid.CellSet, len(p.cells))
		for c := range p.cells {
			img.Add(t.Apply(c))
		}
		cand := trigrid.Normalize(img).Cells()
		if best == nil || CompareCells(cand, best) < 0 {
			best = cand
		}
	}

	return best
}

// CanonicalKey returns Canonical in a compact comparable string form,
// suitable as a map key for congruence-based deduplication.
func (p *Polyiamond) CanonicalKey() string {
	return CellsKey(p.Canonical())
}

// Equivalent reports whether a and b are congruent under rotation,
// reflection and lattice translation.
func Equivalent(a, b *Polyiamond) bool {
	return CompareCells(a.Canonical(), b.Canonical()) == 0
}

// CompareCells orders sorted cell sequences lexicographically by (X, Y),
// shorter sequences first. Returns -1, 0 or +1.
func CompareCells(a, b []trigrid.Cell) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i].X != b[i].X:
			if a[i].X < b[i].X {
				return -1
			}
			return 1
		case a[i].Y != b[i].Y:
			if a[i].Y < b[i].Y {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// CellsKey serializes a sorted cell sequence to a compact string key.
func CellsKey(cells []trigrid.Cell) string {
	var b strings.Builder
	b.Grow(len(cells) * 6)
	for _, c := range cells {
		b.WriteString(strconv.Itoa(c.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Y))
		b.WriteByte(';')
	}

	return b.String()
}
