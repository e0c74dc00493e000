package trigrid

// Cell addresses one triangular cell of the lattice. Cells are immutable
// value types; equality and map keying are coordinate-wise.
//
// The parity of X+Y determines orientation: even sums point up (▲),
// odd sums point down (▼).
type Cell struct {
	X, Y int
}

// IsUp reports whether c is an up-pointing triangle.
// Complexity: O(1).
func (c Cell) IsUp() bool {
	return mod2(c.X+c.Y) == 0
}

// IsDown reports whether c is a down-pointing triangle.
// Complexity: O(1).
func (c Cell) IsDown() bool {
	return !c.IsUp()
}

// Neighbors returns the three edge-adjacent cells of c, each of opposite
// orientation: an up cell shares its slant edges with (X±1,Y) and its
// horizontal base with (X,Y−1); a down cell mirrors this upward.
// Complexity: O(1).
func (c Cell) Neighbors() [3]Cell {
	if c.IsUp() {
		return [3]Cell{{c.X - 1, c.Y}, {c.X + 1, c.Y}, {c.X, c.Y - 1}}
	}

	return [3]Cell{{c.X - 1, c.Y}, {c.X + 1, c.Y}, {c.X, c.Y + 1}}
}

// Translate returns c shifted by (dx, dy). Only even dx+dy shifts are
// lattice motions; callers enforcing that invariant live one level up.
// Complexity: O(1).
func (c Cell) Translate(dx, dy int) Cell {
	return Cell{c.X + dx, c.Y + dy}
}

// Vertex is a corner point of the lattice, at Cartesian (X/2, Y·√3/2).
// Six cells meet at every vertex; lattice vertices have odd X+Y.
type Vertex struct {
	X, Y int
}

// Vertices returns the three corner vertices of c.
// Complexity: O(1).
func (c Cell) Vertices() [3]Vertex {
	if c.IsUp() {
		return [3]Vertex{{c.X - 1, c.Y}, {c.X + 1, c.Y}, {c.X, c.Y + 1}}
	}

	return [3]Vertex{{c.X - 1, c.Y + 1}, {c.X + 1, c.Y + 1}, {c.X, c.Y}}
}

// incidentCells returns the six cells meeting at v.
func incidentCells(v Vertex) [6]Cell {
	return [6]Cell{
		{v.X - 1, v.Y}, {v.X + 1, v.Y}, {v.X, v.Y - 1},
		{v.X - 1, v.Y - 1}, {v.X + 1, v.Y - 1}, {v.X, v.Y},
	}
}

// mod2 is the non-negative remainder of n modulo 2.
func mod2(n int) int {
	return ((n % 2) + 2) % 2
}

// floorDiv is floor(a/b) for positive b, exact on negative a where Go's
// native division truncates toward zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}
