package polyiamond

import (
	"strings"

	"github.com/katalvlaran/heesch/trigrid"
)

// String renders the shape as rows of ▲/▼ glyphs, top row first.
// Intended for logs and CLI output, not for parsing.
func (p *Polyiamond) String() string {
	if len(p.sorted) == 0 {
		return ""
	}

	minX, maxX := p.sorted[0].X, p.sorted[0].X
	minY, maxY := p.sorted[0].Y, p.sorted[0].Y
	for _, c := range p.sorted {
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}

	var b strings.Builder
	for y := maxY; y >= minY; y-- {
		var line strings.Builder
		for x := minX; x <= maxX; x++ {
			c := trigrid.Cell{X: x, Y: y}
			switch {
			case !p.cells.Has(c):
				line.WriteByte(' ')
			case c.IsUp():
				line.WriteRune('▲')
			default:
				line.WriteRune('▼')
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		if y > minY {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
