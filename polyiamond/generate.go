package polyiamond

import (
	"github.com/katalvlaran/heesch/trigrid"
)

// EnumerateFixed returns every connected n-cell shape reachable by growing
// from the up cell at the origin, deduplicated positionally. Every free
// n-iamond appears among the results in at least one position and
// orientation; congruent repeats are expected and are collapsed by
// Enumerate.
// Complexity: exponential in n (the number of shapes is exponential).
func EnumerateFixed(n int) []trigrid.CellSet {
	if n <= 0 {
		return nil
	}

	level := []trigrid.CellSet{trigrid.NewCellSet(trigrid.Cell{X: 0, Y: 0})}
	for size := 2; size <= n; size++ {
		var next []trigrid.CellSet
		seen := make(map[string]struct{})
		for _, cells := range level {
			for _, c := range cells.Cells() {
				for _, nb := range c.Neighbors() {
					if cells.Has(nb) {
						continue
					}
					grown := cells.Clone()
					grown.Add(nb)
					key := CellsKey(grown.Cells())
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}
					next = append(next, grown)
				}
			}
		}
		level = next
	}

	return level
}

// Enumerate returns one representative per congruence class of n-iamonds,
// each in canonical form. Counts follow OEIS A000577 (1, 1, 1, 3, 4, 12,
// 24, 66, ...).
func Enumerate(n int) []*Polyiamond {
	fixed := EnumerateFixed(n)
	seen := make(map[string]struct{}, len(fixed))
	var out []*Polyiamond
	for _, cells := range fixed {
		p := fromSet(trigrid.Normalize(cells))
		canon := p.Canonical()
		key := CellsKey(canon)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, fromSet(trigrid.NewCellSet(canon...)))
	}

	return out
}

// Count returns the number of free n-iamonds without retaining them.
func Count(n int) int {
	return len(Enumerate(n))
}

// CountFixed returns the number of fixed n-iamonds: shapes distinct up to
// translation only, counting rotations and reflections separately. Counts
// follow OEIS A001420 (2, 3, 6, 14, 36, 94, ...).
func CountFixed(n int) int {
	total := 0
	for _, p := range Enumerate(n) {
		images := make(map[string]struct{}, trigrid.NumTransforms)
		for _, t := range trigrid.Transforms() {
			img := trigrid.NewCellSet()
			for _, c := range p.Cells() {
				img.Add(t.Apply(c))
			}
			images[CellsKey(trigrid.Normalize(img).Cells())] = struct{}{}
		}
		total += len(images)
	}

	return total
}
