// Package corona computes Heesch numbers of polyiamonds by iterated corona
// completion: each round surrounds the current configuration with one more
// complete ring of non-overlapping congruent copies of the shape, encoded
// as a CNF formula and decided by a SAT backend.
//
// What:
//
//   - Placement generation: every transform + translation of the shape that
//     is disjoint from the configuration and touches it, deduplicated by
//     occupied cells.
//   - Constraint encoding: one boolean variable per placement; pairwise
//     exclusion clauses for cell-sharing placements; a coverage clause per
//     boundary cell. A boundary cell no candidate covers short-circuits to
//     the unsatisfiable outcome without invoking the backend.
//   - Compute: backtracking search over rounds. A satisfying model is
//     committed tentatively and the next round attempted on the grown
//     configuration; when a round cannot be completed, the previous round's
//     corona is blocked (a clause negating its selected variables) and
//     solved again, so one wedging corona never under-reports the result.
//     The deepest completable sequence is the Heesch number; completing
//     Options.MaxCoronas rounds reports the shape as tiling the plane.
//
// Why:
//
//   - Correctness of the reported number rests on the generator missing no
//     placement, the encoder forbidding exactly the overlapping pairs, and
//     the search exhausting alternative coronas before giving up on a
//     depth. A model satisfies exactly one placement per boundary cell, so
//     negating its selection removes exactly that corona from the round.
//
// Round structure (search tree):
//
//	each node = one configuration; children = its satisfying coronas.
//	UNSAT or an uncoverable boundary cell makes a node a leaf; the result
//	is the deepest path, capped at Options.MaxCoronas.
//
// The configuration is the only state carried down the tree; placements
// and formulas are rebuilt per node and discarded.
//
// Errors:
//
//   - ErrNilShape: Compute called without a shape.
//   - sat.ErrInterrupted (wrapped): the backend was canceled mid-round; the
//     Heesch number is unknown, not proven. Propagated untouched — retrying
//     with a larger budget is the caller's decision.
//
// Complexity: each round is O(P²·n) encoding work for P candidate
// placements of an n-cell shape, plus one NP-hard backend call.
package corona
