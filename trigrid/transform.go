package trigrid

// Transform indexes the fixed table of the 12 rigid symmetries of the
// triangular lattice. Transform t = m*6 + r applies reflection across the
// x-axis m times (m ∈ {0,1}), then r clockwise 60° rotations, both about
// the lattice vertex at Cartesian (1/2, 0).
//
// Composed with lattice translations these 12 maps generate every rigid
// motion of the tiling, so enumerating Transform × even-translation reaches
// every congruent placement of a shape.
type Transform int

// NumTransforms is the order of the symmetry group: 6 rotations × 2 reflections.
const NumTransforms = 12

// Identity is the do-nothing transform.
const Identity Transform = 0

// table holds the 12 symmetries as pure cell maps, built once at startup.
// Read-only after init; safe to share across goroutines.
var table [NumTransforms]func(Cell) Cell

func init() {
	for t := 0; t < NumTransforms; t++ {
		r, m := t%6, t/6
		table[t] = func(c Cell) Cell {
			if m == 1 {
				c = reflectX(c)
			}
			for i := 0; i < r; i++ {
				c = rotate60(c)
			}

			return c
		}
	}
}

// Transforms returns all 12 transforms in a fixed order: the 6 rotations,
// then their reflected counterparts.
func Transforms() []Transform {
	out := make([]Transform, NumTransforms)
	for i := range out {
		out[i] = Transform(i)
	}

	return out
}

// Apply maps c through t.
// Complexity: O(1).
func (t Transform) Apply(c Cell) Cell {
	return table[t](c)
}

// Compose returns the transform equivalent to applying u first, then t.
// Follows the dihedral relation m·rᵏ·m = r⁻ᵏ.
func (t Transform) Compose(u Transform) Transform {
	rt, mt := int(t)%6, int(t)/6
	ru, mu := int(u)%6, int(u)/6
	r := rt + ru
	if mt == 1 {
		r = rt - ru
	}
	r = ((r % 6) + 6) % 6

	return Transform(((mt + mu) % 2 * 6) + r)
}

// Inverse returns the transform undoing t. Reflected transforms are
// involutions; pure rotations invert to their complement.
func (t Transform) Inverse() Transform {
	r, m := int(t)%6, int(t)/6
	if m == 1 {
		return t
	}

	return Transform((6 - r) % 6)
}

// rotate60 rotates c by 60° clockwise about the lattice vertex at
// Cartesian (1/2, 0). Derived by rotating the cell's centroid and reading
// the image cell back off the lattice; both divisions are exact because the
// numerators are always even.
func rotate60(c Cell) Cell {
	u := mod2(c.X + c.Y)
	x := (c.X + 3*c.Y + u + 2) / 2
	// s = 3*y' + u' of the image cell.
	s := (3*c.Y - 3*c.X + u + 2) / 2

	return Cell{x, floorDiv(s, 3)}
}

// reflectX reflects c across the x-axis, which runs through the rotation
// vertex along a line of horizontal edges. Orientation flips.
func reflectX(c Cell) Cell {
	return Cell{c.X, -c.Y - 1}
}
