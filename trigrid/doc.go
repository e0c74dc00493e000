// Package trigrid models the triangular lattice that polyiamonds live on:
// integer-addressed triangular cells, their adjacency, cell sets with
// boundary/frontier queries, and the lattice's finite symmetry group.
//
// What:
//
//   - Cell (X, Y) addresses one equilateral-triangle cell; the parity of X+Y
//     fixes its orientation (even → pointing up, odd → pointing down).
//   - Neighbors, Translate, Vertices are pure, total functions of coordinates.
//   - CellSet holds a region; Boundary and VertexFrontier recompute the cells
//     an expansion step may claim.
//   - Transform indexes the fixed table of the 12 rigid symmetries
//     (6 rotations × 2 reflections) of the lattice, exact in integer
//     coordinates, composable and invertible.
//
// Why:
//
//   - Corona computation needs an exact geometric model: one off-by-one in
//     adjacency or a drifting transform silently changes a Heesch number.
//   - All operations here are allocation-light value arithmetic, safe to run
//     on the placement-generation hot path and to share across goroutines.
//
// Coordinate contract:
//
//   - Up cell (X,Y): neighbors (X−1,Y), (X+1,Y), (X,Y−1).
//   - Down cell (X,Y): neighbors (X−1,Y), (X+1,Y), (X,Y+1).
//   - Lattice translations are exactly the cell translations with dx+dy even;
//     odd offsets flip orientation and are not rigid motions of the tiling.
//
// Complexity:
//
//   - Cell operations: O(1).
//   - Boundary / VertexFrontier / Normalize: O(|set|).
//   - Transform.Apply: O(1).
package trigrid
