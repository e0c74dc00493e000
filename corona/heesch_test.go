package corona_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heesch/corona"
	"github.com/katalvlaran/heesch/polyiamond"
	"github.com/katalvlaran/heesch/trigrid"
)

// Published record holders among the 10-iamonds. Each run drives the full
// pipeline through the real SAT backend, so they are skipped in -short mode.
func TestCompute_KnownHeesch4(t *testing.T) {
	if testing.Short() {
		t.Skip("full SAT run")
	}

	p, err := polyiamond.New([]trigrid.Cell{
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 0},
		{X: 3, Y: 1}, {X: 3, Y: 2}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 5, Y: 2},
	})
	require.NoError(t, err)

	res, err := corona.Compute(context.Background(), p, corona.DefaultOptions())
	require.NoError(t, err)
	require.False(t, res.TilesPlane)
	require.Equal(t, 4, res.Heesch)
	require.Equal(t, []int{5, 10, 15, 21}, res.CoronaSizes)
}

func TestCompute_KnownHeesch3(t *testing.T) {
	if testing.Short() {
		t.Skip("full SAT run")
	}

	p, err := polyiamond.New([]trigrid.Cell{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1},
		{X: 2, Y: 2}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 4, Y: 2}, {X: 5, Y: 2},
	})
	require.NoError(t, err)

	res, err := corona.Compute(context.Background(), p, corona.DefaultOptions())
	require.NoError(t, err)
	require.False(t, res.TilesPlane)
	require.Equal(t, 3, res.Heesch)
	require.Equal(t, []int{6, 12, 19}, res.CoronaSizes)
}
