package polyiamond

import (
	"fmt"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"

	"github.com/katalvlaran/heesch/trigrid"
)

// checkConnected verifies that set forms one edge-connected region by
// building an unweighted core.Graph over the cells and running BFS from the
// minimal cell: the shape is connected iff BFS visits every vertex.
// Complexity: O(n) vertices and edges.
func checkConnected(set trigrid.CellSet) error {
	if set.Len() <= 1 {
		return nil
	}

	g := core.NewGraph()
	cells := set.Cells()
	for _, c := range cells {
		_ = g.AddVertex(cellID(c))
	}
	for _, c := range cells {
		for _, n := range c.Neighbors() {
			if set.Has(n) {
				// Duplicate undirected edges are rejected by core; ignore.
				_, _ = g.AddEdge(cellID(c), cellID(n), 0)
			}
		}
	}

	res, err := bfs.BFS(g, cellID(cells[0]))
	if err != nil {
		return fmt.Errorf("polyiamond: connectivity check: %w", err)
	}
	if len(res.Order) != set.Len() {
		return ErrNotConnected
	}

	return nil
}

// cellID formats the graph vertex identifier for a cell.
func cellID(c trigrid.Cell) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}
