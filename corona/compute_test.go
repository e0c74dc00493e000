package corona_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/heesch/corona"
	"github.com/katalvlaran/heesch/sat"
	"github.com/katalvlaran/heesch/trigrid"
)

// stubSolver returns canned verdicts and records the clauses of every call,
// for exercising loop transitions without SAT work.
type stubSolver struct {
	results []sat.Result
	errs    []error
	calls   int
	got     [][][]int
}

func (s *stubSolver) Solve(_ context.Context, clauses [][]int) (sat.Result, error) {
	s.got = append(s.got, clauses[:len(clauses):len(clauses)])
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return sat.Result{}, s.errs[i]
	}

	return s.results[i], nil
}

// ComputeSuite groups corona-loop tests.
type ComputeSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *ComputeSuite) SetupTest() {
	s.ctx = context.Background()
}

// TestNilShape: the shape must be validated before any solving starts.
func (s *ComputeSuite) TestNilShape() {
	_, err := corona.Compute(s.ctx, nil, corona.DefaultOptions())
	require.ErrorIs(s.T(), err, corona.ErrNilShape)
}

// TestUnsatFirstRound: an immediately unsatisfiable round reports Heesch 0
// with an empty corona sequence.
func (s *ComputeSuite) TestUnsatFirstRound() {
	p := mustShape(s.T(), []trigrid.Cell{{X: 0, Y: 0}})
	opts := corona.DefaultOptions()
	opts.Solver = &stubSolver{results: []sat.Result{{Status: sat.Unsat}}}

	res, err := corona.Compute(s.ctx, p, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, res.Heesch)
	require.False(s.T(), res.TilesPlane)
	require.Empty(s.T(), res.CoronaSizes)
	require.Empty(s.T(), res.Coronas)
}

// TestInterruptedPropagates: a canceled backend surfaces as an error, never
// as a Heesch number.
func (s *ComputeSuite) TestInterruptedPropagates() {
	p := mustShape(s.T(), []trigrid.Cell{{X: 0, Y: 0}})
	opts := corona.DefaultOptions()
	opts.Solver = &stubSolver{errs: []error{sat.ErrInterrupted}}

	res, err := corona.Compute(s.ctx, p, opts)
	require.ErrorIs(s.T(), err, sat.ErrInterrupted)
	require.Equal(s.T(), 0, res.Heesch)
	require.False(s.T(), res.TilesPlane)
}

// TestIndeterminateVerdict: a backend returning Unknown without an error is
// still an error to the loop.
func (s *ComputeSuite) TestIndeterminateVerdict() {
	p := mustShape(s.T(), []trigrid.Cell{{X: 0, Y: 0}})
	opts := corona.DefaultOptions()
	opts.Solver = &stubSolver{results: []sat.Result{{Status: sat.Unknown}}}

	_, err := corona.Compute(s.ctx, p, opts)
	require.ErrorIs(s.T(), err, corona.ErrIndeterminate)
}

// TestSingleCell_RoundInvariants runs the real backend on a lone triangle
// and replays every committed corona, checking the loop's contract:
// non-overlap, boundary coverage, monotonic growth.
func (s *ComputeSuite) TestSingleCell_RoundInvariants() {
	p := mustShape(s.T(), []trigrid.Cell{{X: 0, Y: 0}})
	opts := corona.DefaultOptions()
	opts.MaxCoronas = 3

	res, err := corona.Compute(s.ctx, p, opts)
	require.NoError(s.T(), err)
	require.True(s.T(), res.TilesPlane, "a lone triangle surrounds indefinitely")
	require.Equal(s.T(), 3, res.Heesch)
	require.Len(s.T(), res.CoronaSizes, 3)
	require.Len(s.T(), res.Coronas, 3)

	config := p.CellSet()
	prevSize := config.Len()
	for i, c := range res.Coronas {
		boundary := trigrid.Boundary(config)

		claimed := trigrid.NewCellSet()
		for _, pl := range c.Placements {
			set := trigrid.NewCellSet(pl.Cells...)
			require.True(s.T(), set.Disjoint(config),
				"corona %d placement overlaps prior configuration", i+1)
			require.True(s.T(), set.Disjoint(claimed),
				"corona %d placements overlap each other", i+1)
			for cell := range set {
				claimed.Add(cell)
			}
		}
		for cell := range claimed {
			config.Add(cell)
		}

		for cell := range boundary {
			require.True(s.T(), config.Has(cell),
				"boundary cell (%d,%d) left uncovered by corona %d", cell.X, cell.Y, i+1)
		}

		require.Equal(s.T(), config.Len(), c.ConfigurationSize)
		require.Greater(s.T(), c.ConfigurationSize, prevSize,
			"configuration must grow strictly")
		prevSize = c.ConfigurationSize
		require.Equal(s.T(), len(c.Placements), res.CoronaSizes[i])
	}
}

// TestTrianglePair_TilesPlane: the 2-iamond (a rhombus) tiles the plane, so
// the cap outcome must be reported, not a finite number.
func (s *ComputeSuite) TestTrianglePair_TilesPlane() {
	p := mustShape(s.T(), []trigrid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}})
	opts := corona.DefaultOptions()
	opts.MaxCoronas = 5

	res, err := corona.Compute(s.ctx, p, opts)
	require.NoError(s.T(), err)
	require.True(s.T(), res.TilesPlane)
	require.Len(s.T(), res.CoronaSizes, 5)
	for i := 1; i < len(res.Coronas); i++ {
		require.Greater(s.T(), res.Coronas[i].ConfigurationSize,
			res.Coronas[i-1].ConfigurationSize)
	}
}

// TestDeadEndBlocksAndRetries: a committed corona that leaves the next
// round unsatisfiable must not end the computation. The round is solved
// again with the failed selection blocked, and only a round with no
// remaining alternatives halts the search.
func (s *ComputeSuite) TestDeadEndBlocksAndRetries() {
	p := mustShape(s.T(), []trigrid.Cell{{X: 0, Y: 0}})
	stub := &stubSolver{results: []sat.Result{
		{Status: sat.Sat, Model: []bool{true}}, // round 1: first corona
		{Status: sat.Unsat},                    // round 2: dead end
		{Status: sat.Unsat},                    // round 1: no alternative left
	}}
	opts := corona.DefaultOptions()
	opts.MaxCoronas = 2
	opts.Solver = stub

	res, err := corona.Compute(s.ctx, p, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, stub.calls)
	require.Equal(s.T(), 1, res.Heesch, "deepest sequence found is one corona")
	require.False(s.T(), res.TilesPlane)
	require.Equal(s.T(), []int{1}, res.CoronaSizes)

	// The retried round must carry the blocking clause for the committed
	// selection on top of the original formula.
	retry := stub.got[2]
	require.Len(s.T(), retry, len(stub.got[0])+1)
	require.Equal(s.T(), []int{-1}, retry[len(retry)-1])
}

// TestDeadEndRecoversDeeper: blocking a wedged corona and taking an
// alternative one must reach the full depth the first choice could not.
func (s *ComputeSuite) TestDeadEndRecoversDeeper() {
	p := mustShape(s.T(), []trigrid.Cell{{X: 0, Y: 0}})
	stub := &stubSolver{results: []sat.Result{
		{Status: sat.Sat, Model: []bool{true}},        // round 1: wedging corona
		{Status: sat.Unsat},                           // round 2: dead end
		{Status: sat.Sat, Model: []bool{false, true}}, // round 1: alternative
		{Status: sat.Sat, Model: []bool{true}},        // round 2: completes
	}}
	opts := corona.DefaultOptions()
	opts.MaxCoronas = 2
	opts.Solver = stub

	res, err := corona.Compute(s.ctx, p, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, stub.calls)
	require.True(s.T(), res.TilesPlane)
	require.Equal(s.T(), 2, res.Heesch)

	// The reported first corona is the alternative, not the blocked one.
	candidates := corona.Placements(p, p.CellSet(), corona.TouchEdge)
	require.Len(s.T(), res.Coronas[0].Placements, 1)
	require.Equal(s.T(), candidates[1], res.Coronas[0].Placements[0])

	retry := stub.got[2]
	require.Equal(s.T(), []int{-1}, retry[len(retry)-1])
}

// TestDefaultsApplied: zero options fall back to the documented defaults.
func (s *ComputeSuite) TestDefaultsApplied() {
	p := mustShape(s.T(), []trigrid.Cell{{X: 0, Y: 0}})
	stub := &stubSolver{results: []sat.Result{{Status: sat.Unsat}}}

	res, err := corona.Compute(s.ctx, p, corona.Options{Solver: stub})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, res.Heesch)
	require.Equal(s.T(), 1, stub.calls, "halt on first UNSAT")
}

func TestComputeSuite(t *testing.T) {
	suite.Run(t, new(ComputeSuite))
}

// TestCompute_ContextCanceled: an already-canceled context aborts the first
// backend call with an interruption, not a verdict.
func TestCompute_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := mustShape(t, []trigrid.Cell{{X: 0, Y: 0}})
	opts := corona.DefaultOptions()
	opts.Solver = ctxSolver{}

	_, err := corona.Compute(ctx, p, opts)
	require.Error(t, err)
	require.ErrorIs(t, err, sat.ErrInterrupted)
}

// ctxSolver honors cancellation before doing any work, mimicking the
// contract of the real backend.
type ctxSolver struct{}

func (ctxSolver) Solve(ctx context.Context, clauses [][]int) (sat.Result, error) {
	if err := ctx.Err(); err != nil {
		return sat.Result{}, errors.Join(sat.ErrInterrupted, err)
	}

	return sat.NewGophersat().Solve(ctx, clauses)
}
