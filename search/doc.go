// Package search sweeps all free polyiamonds of a given size through the
// corona engine and aggregates the outcomes.
//
// What:
//
//	Run enumerates every free n-iamond, computes each shape's Heesch number
//	on a bounded worker pool, and folds the per-shape results into a
//	Summary: a distribution of Heesch numbers, the count of plane-tilers,
//	and representative example shapes per class.
//
// Why:
//
//	Record-hunting is a batch problem. A single shape is cheap for small n,
//	but the census grows fast (24 free 7-iamonds, hundreds beyond), and each
//	shape is an independent SAT workload, so the sweep parallelizes cleanly.
//
// Concurrency:
//
//	Workers default to min(GOMAXPROCS, 8). Each shape gets its own deadline
//	(Options.PerShapeTimeout); a shape that times out is counted as Unknown
//	and never contributes a Heesch number. Jobs flow through an unbuffered
//	channel so cancellation takes effect between shapes.
//
// Errors:
//
//	ErrSize - requested size is below 1.
package search
