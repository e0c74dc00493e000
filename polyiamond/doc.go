// Package polyiamond models connected shapes of triangular cells and their
// congruence classes, plus enumeration of all shapes of a given size.
//
// What:
//
//   - Polyiamond: an immutable, validated, normalized set of trigrid cells.
//     Construction rejects empty input (ErrEmptyShape) and cell sets that are
//     not edge-connected (ErrNotConnected).
//   - Canonical form: the minimum, over the 12 lattice symmetries and
//     normalizing translation, of the sorted cell sequence. Two polyiamonds
//     are congruent iff their canonical forms are equal.
//   - Enumerate / EnumerateFixed: growth-based generation of all n-iamonds,
//     deduplicated positionally (fixed) or by congruence class (free).
//   - String renders the shape with ▲/▼ glyphs for quick inspection.
//
// Why:
//
//   - The Heesch engine needs exact congruence-aware equality: canonical
//     forms are explicit minimum-selection, not ad hoc hashing, so
//     deduplication is reproducible.
//   - Connectivity is checked by graph reachability over lvlath
//     (core.Graph + bfs.BFS) rather than a hand-rolled traversal.
//
// Complexity:
//
//   - New: O(n) construction + O(n) connectivity check.
//   - Canonical: O(12 · n log n).
//   - EnumerateFixed(n): exponential in n (the object count is exponential).
//
// Errors:
//
//   - ErrEmptyShape: no cells supplied.
//   - ErrNotConnected: cells do not form one edge-connected region.
package polyiamond
