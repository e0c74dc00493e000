package corona

import (
	"github.com/katalvlaran/heesch/polyiamond"
	"github.com/katalvlaran/heesch/trigrid"
)

// Placements enumerates every candidate placement of p against the given
// configuration under rule: copies disjoint from the configuration that
// touch it. Output is deterministic and deduplicated by occupied cell set;
// the candidate set is exactly what one corona round chooses from.
func Placements(p *polyiamond.Polyiamond, configuration trigrid.CellSet, rule TouchRule) []Placement {
	seeds := trigrid.Boundary(configuration)
	if rule == TouchVertex {
		seeds = trigrid.VertexFrontier(configuration)
	}

	return findPlacements(orientationsOf(p), configuration, seeds)
}

// orientation is one distinct transform image of the shape, kept with the
// transform that produced it. Cells are sorted by (X, Y).
type orientation struct {
	transform trigrid.Transform
	cells     []trigrid.Cell
}

// orientationsOf applies all 12 lattice symmetries to the shape and drops
// images that coincide up to lattice translation — a shape with internal
// symmetry has fewer than 12 distinct orientations, and keeping repeats
// would only produce duplicate placements.
// Complexity: O(12 · n log n).
func orientationsOf(p *polyiamond.Polyiamond) []orientation {
	base := p.Cells()
	seen := make(map[string]struct{}, trigrid.NumTransforms)
	out := make([]orientation, 0, trigrid.NumTransforms)
	for _, t := range trigrid.Transforms() {
		img := make(trigrid.CellSet, len(base))
		for _, c := range base {
			img.Add(t.Apply(c))
		}
		key := polyiamond.CellsKey(trigrid.Normalize(img).Cells())
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, orientation{transform: t, cells: img.Cells()})
	}

	return out
}

// findPlacements enumerates every placement of the shape that is disjoint
// from occupied and covers at least one seed cell, deduplicated by occupied
// cell set. Seeds are the boundary (edge rule) or the vertex frontier
// (vertex rule); aligning every orientation cell on every seed reaches every
// placement touching the configuration, because any touching placement
// occupies some seed cell.
//
// Translations with odd dx+dy are skipped: they flip cell orientations and
// are not lattice motions.
// Complexity: O(|seeds| · 12 · n²) placement candidates, each O(n) to check.
func findPlacements(orients []orientation, occupied trigrid.CellSet, seeds trigrid.CellSet) []Placement {
	var out []Placement
	seen := make(map[string]struct{})
	for _, seed := range seeds.Cells() {
		for _, o := range orients {
			for _, anchor := range o.cells {
				dx, dy := seed.X-anchor.X, seed.Y-anchor.Y
				if (dx+dy)&1 != 0 {
					continue
				}
				cells, clear := translateDisjoint(o.cells, dx, dy, occupied)
				if !clear {
					continue
				}
				key := polyiamond.CellsKey(cells)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, Placement{
					Transform: o.transform,
					DX:        dx,
					DY:        dy,
					Cells:     cells,
				})
			}
		}
	}

	return out
}

// translateDisjoint shifts cells by (dx, dy), bailing out early on the first
// collision with occupied. The input is sorted and translation preserves
// (X, Y) order, so the result is sorted too.
func translateDisjoint(cells []trigrid.Cell, dx, dy int, occupied trigrid.CellSet) ([]trigrid.Cell, bool) {
	out := make([]trigrid.Cell, len(cells))
	for i, c := range cells {
		moved := c.Translate(dx, dy)
		if occupied.Has(moved) {
			return nil, false
		}
		out[i] = moved
	}

	return out, true
}
