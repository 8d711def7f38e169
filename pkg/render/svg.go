package render

import (
	"bytes"
	"fmt"

	"github.com/gridwright/gridwright/pkg/puzzle"
)

const defaultCellSize = 36

// SVGOptions configures vector rendering of the grid.
type SVGOptions struct {
	// CellSize is the side of one grid cell in pixels. Defaults to 36.
	CellSize int
	// Solution draws the answer letters inside letter cells.
	Solution bool
}

// SVG renders the puzzle grid as a standalone SVG document. Blocked cells
// are filled black, letter cells white with a thin border, and clue numbers
// sit in the top-left corner of their start cells. The result is suitable
// for printing or conversion with [ToPNG] and [ToPDF].
func SVG(p *puzzle.Puzzle, opts SVGOptions) []byte {
	cell := opts.CellSize
	if cell <= 0 {
		cell = defaultCellSize
	}
	side := p.Size * cell

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		side, side, side, side)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%d" height="%d" fill="black"/>`+"\n", side, side)

	renderCells(&buf, p, cell, opts.Solution)
	renderNumbers(&buf, p, cell)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderCells(buf *bytes.Buffer, p *puzzle.Puzzle, cell int, solution bool) {
	for row := range p.Size {
		for col := range p.Size {
			c := p.At(row, col)
			if c == puzzle.Empty {
				continue
			}
			x, y := col*cell, row*cell
			fmt.Fprintf(buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="white" stroke="black" stroke-width="1"/>`+"\n",
				x, y, cell, cell)
			if solution {
				fmt.Fprintf(buf, `  <text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="%d">%s</text>`+"\n",
					x+cell/2, y+cell*3/4, cell/2, c)
			}
		}
	}
}

func renderNumbers(buf *bytes.Buffer, p *puzzle.Puzzle, cell int) {
	seen := make(map[puzzle.Coord]bool, len(p.Words))
	for _, w := range p.Words {
		coord := puzzle.Coord{Row: w.StartRow, Col: w.StartCol}
		if seen[coord] {
			continue
		}
		seen[coord] = true
		x, y := coord.Col*cell, coord.Row*cell
		fmt.Fprintf(buf, `  <text x="%d" y="%d" font-family="sans-serif" font-size="%d">%d</text>`+"\n",
			x+2, y+cell/3, cell/3, w.Number)
	}
}
