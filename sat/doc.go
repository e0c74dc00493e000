// Package sat defines the boolean-satisfiability backend contract used by
// the corona engine, and provides the default implementation on top of the
// pure-Go gophersat solver.
//
// What:
//
//   - Solver: accepts a CNF formula as clauses of 1-based DIMACS literals
//     (negative = negated) and returns a satisfying assignment, an
//     unsatisfiability verdict, or an interruption error.
//   - NewGophersat: the default backend. Each call builds a fresh underlying
//     solver, so repeated invocations cannot contaminate one another and the
//     value is safe for concurrent use.
//
// Why:
//
//   - The corona engine must never confuse "unsatisfiable" with "gave up":
//     the first proves a Heesch bound, the second proves nothing. The
//     contract keeps the two apart — Unsat is a Result status, interruption
//     is an error (ErrInterrupted) carrying the context cause.
//
// Errors:
//
//   - ErrInterrupted: solving was canceled before a verdict; satisfiability
//     of the formula is unknown, not refuted. Retryable with a larger budget.
package sat
