package sat

import (
	"context"
	"errors"
)

// ErrInterrupted is returned when solving was canceled before reaching a
// verdict. The formula's satisfiability is unknown — never treat this as
// unsatisfiability.
var ErrInterrupted = errors.New("sat: solving interrupted")

// Status is the verdict of one solving attempt.
type Status int

const (
	// Unknown means no verdict was reached.
	Unknown Status = iota
	// Sat means a satisfying assignment was found.
	Sat
	// Unsat means the formula was proven unsatisfiable.
	Unsat
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Result is the outcome of Solve. Model is populated only when Status is
// Sat; Model[i] is the assignment of variable i+1.
type Result struct {
	Status Status
	Model  []bool
}

// Solver is the backend contract. Clauses use 1-based DIMACS literals: the
// clause {1, -3} reads "variable 1 or not variable 3". Implementations must
// be safe for repeated and concurrent calls, each solving an independent
// formula, and must honor ctx cancellation by returning ErrInterrupted.
type Solver interface {
	Solve(ctx context.Context, clauses [][]int) (Result, error)
}
