// Package heesch computes Heesch numbers of polyiamonds — shapes glued from
// unit triangles on the triangular lattice.
//
// 🚀 What is heesch?
//
//	A SAT-backed engine that surrounds a shape with rings (coronas) of
//	non-overlapping congruent copies and reports how many complete rings fit:
//		• Exact lattice geometry: integer cells, vertices, rotations & reflections
//		• Shape model: connectivity, canonical forms, free/fixed enumeration
//		• Placement generator: every congruent copy touching a configuration
//		• CNF encoder: non-overlap and full-coverage constraints
//		• Corona loop: one SAT instance per ring, halting on UNSAT or a cap
//
// ✨ Why choose heesch?
//
//   - Exact arithmetic – no floating-point lattice coordinates anywhere
//   - Deterministic – sorted iteration end to end, reproducible runs
//   - Cancelable – context-aware solving down into the SAT backend
//   - Scriptable – a cobra CLI for single shapes, sweeps and censuses
//
// Under the hood, everything is organized under five subpackages:
//
//	trigrid/    — triangular-lattice cells, vertices, sets & the 12 symmetries
//	polyiamond/ — validated shapes, canonical forms, enumeration & rendering
//	sat/        — solver contract + gophersat adapter with cancellation
//	corona/     — placements, CNF encoding & the corona state machine
//	search/     — parallel sweeps over all free shapes of a size
//
// Quick ASCII example:
//
//	 ▲▼▲
//	▲▼▲
//
// is a 6-cell polyiamond (a "sphinx-like" bar pair) as rendered by
// polyiamond.Polyiamond.String: one row per lattice Y, upward and downward
// triangles alternating with the parity of X+Y.
//
//	go get github.com/katalvlaran/heesch
package heesch
