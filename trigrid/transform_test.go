package trigrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heesch/trigrid"
)

// sampleCells covers both orientations across all four quadrants.
func sampleCells() []trigrid.Cell {
	var out []trigrid.Cell
	for x := -5; x <= 5; x++ {
		for y := -5; y <= 5; y++ {
			out = append(out, trigrid.Cell{x, y})
		}
	}

	return out
}

// TestRotation_SixCycleAroundVertex pins the orbit of the six cells meeting
// at the rotation vertex, then checks r⁶ = identity everywhere.
func TestRotation_SixCycleAroundVertex(t *testing.T) {
	rot := trigrid.Transform(1)

	orbit := []trigrid.Cell{{0, 0}, {1, 0}, {2, 0}, {2, -1}, {1, -1}, {0, -1}}
	for i, c := range orbit {
		next := orbit[(i+1)%len(orbit)]
		require.Equal(t, next, rot.Apply(c), "rotating %v", c)
	}

	for _, c := range sampleCells() {
		img := c
		for i := 0; i < 6; i++ {
			img = rot.Apply(img)
		}
		require.Equal(t, c, img, "six rotations must fix %v", c)
	}
}

// TestReflection_Involution: reflecting twice is the identity.
func TestReflection_Involution(t *testing.T) {
	refl := trigrid.Transform(6)
	for _, c := range sampleCells() {
		require.Equal(t, c, refl.Apply(refl.Apply(c)))
	}
	// Known image: the up triangle above the axis maps to the down triangle below.
	require.Equal(t, trigrid.Cell{0, -1}, refl.Apply(trigrid.Cell{0, 0}))
}

// TestTransforms_PreserveAdjacency: every symmetry maps neighbors to neighbors.
func TestTransforms_PreserveAdjacency(t *testing.T) {
	for _, tr := range trigrid.Transforms() {
		for _, c := range sampleCells() {
			ci := tr.Apply(c)
			for _, n := range c.Neighbors() {
				ni := tr.Apply(n)
				found := false
				for _, m := range ci.Neighbors() {
					if m == ni {
						found = true
					}
				}
				require.True(t, found,
					"transform %d must keep %v and %v adjacent", tr, c, n)
			}
		}
	}
}

// TestTransforms_Bijective: no symmetry collapses two distinct cells.
func TestTransforms_Bijective(t *testing.T) {
	cells := sampleCells()
	for _, tr := range trigrid.Transforms() {
		seen := make(map[trigrid.Cell]trigrid.Cell, len(cells))
		for _, c := range cells {
			img := tr.Apply(c)
			if prev, dup := seen[img]; dup {
				t.Fatalf("transform %d maps both %v and %v to %v", tr, prev, c, img)
			}
			seen[img] = c
		}
	}
}

// TestCompose agrees with sequential application on every pair.
func TestCompose(t *testing.T) {
	probe := []trigrid.Cell{{0, 0}, {1, 0}, {3, 2}, {-2, 1}, {-3, -4}}
	for _, a := range trigrid.Transforms() {
		for _, b := range trigrid.Transforms() {
			ab := a.Compose(b)
			for _, c := range probe {
				require.Equal(t, a.Apply(b.Apply(c)), ab.Apply(c),
					"Compose(%d,%d) must equal sequential application", a, b)
			}
		}
	}
}

// TestInverse: t∘t⁻¹ acts as the identity.
func TestInverse(t *testing.T) {
	probe := []trigrid.Cell{{0, 0}, {1, 0}, {4, -3}, {-1, 2}}
	for _, tr := range trigrid.Transforms() {
		inv := tr.Inverse()
		require.Equal(t, trigrid.Identity, tr.Compose(inv))
		for _, c := range probe {
			require.Equal(t, c, tr.Apply(inv.Apply(c)))
			require.Equal(t, c, inv.Apply(tr.Apply(c)))
		}
	}
}

// TestGroupClosure: composing any two table entries lands back in the table
// and the 12 transforms are pairwise distinct as cell maps.
func TestGroupClosure(t *testing.T) {
	probe := sampleCells()
	actions := make(map[string]trigrid.Transform)
	key := func(tr trigrid.Transform) string {
		buf := make([]byte, 0, len(probe)*4)
		for _, c := range probe {
			img := tr.Apply(c)
			buf = append(buf, byte(img.X), byte(img.Y), ';', ' ')
		}
		return string(buf)
	}
	for _, tr := range trigrid.Transforms() {
		k := key(tr)
		if prev, dup := actions[k]; dup {
			t.Fatalf("transforms %d and %d act identically", prev, tr)
		}
		actions[k] = tr
	}
	require.Len(t, actions, trigrid.NumTransforms)
}
