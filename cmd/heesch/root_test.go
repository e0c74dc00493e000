package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heesch/trigrid"
)

func TestParseCells(t *testing.T) {
	cells, err := parseCells("0,0 1,0 -2,3")
	require.NoError(t, err)
	require.Equal(t, []trigrid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 3}}, cells)

	for _, raw := range []string{"", "  ", "1", "1;2", "a,b", "1,2 x,0"} {
		_, err := parseCells(raw)
		require.Error(t, err, "raw=%q", raw)
	}
}

func TestFormatPairs(t *testing.T) {
	got := formatPairs([]trigrid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}})
	require.Equal(t, "(0,0) (1,0)", got)
	require.Empty(t, formatPairs(nil))
}

func TestCountCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := countCmd
	cmd.SetOut(&buf)

	require.NoError(t, runCount(cmd, []string{"4"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5, "header plus one row per size")
	require.Contains(t, lines[4], "3")
	require.Contains(t, lines[4], "14")
}

func TestCountCommand_BadSize(t *testing.T) {
	require.Error(t, runCount(countCmd, []string{"zero"}))
	require.Error(t, runCount(countCmd, []string{"0"}))
}
