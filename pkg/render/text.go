package render

import (
	"bytes"
	"fmt"

	"github.com/gridwright/gridwright/pkg/puzzle"
)

// TextOptions configures plain-text rendering.
type TextOptions struct {
	// Solution fills letter cells with their answer letters.
	// When false, letter cells are drawn as blanks for solving.
	Solution bool
}

// Text renders the puzzle as plain text: the grid followed by numbered
// across and down clue lists. Blocked cells are drawn as '#', open cells
// as '_' or their letter depending on [TextOptions.Solution].
func Text(p *puzzle.Puzzle, opts TextOptions) string {
	var buf bytes.Buffer

	numbers := startNumbers(p)

	for row := range p.Size {
		for col := range p.Size {
			if col > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(textCell(p, numbers, row, col, opts.Solution))
		}
		buf.WriteByte('\n')
	}

	writeClues(&buf, "Across", p.AcrossWords())
	writeClues(&buf, "Down", p.DownWords())

	return buf.String()
}

func textCell(p *puzzle.Puzzle, numbers map[puzzle.Coord]int, row, col int, solution bool) string {
	c := p.At(row, col)
	if c == puzzle.Empty {
		return "#"
	}
	if solution {
		return string(c)
	}
	if n, ok := numbers[puzzle.Coord{Row: row, Col: col}]; ok && n < 10 {
		return fmt.Sprintf("%d", n)
	}
	return "_"
}

func writeClues(buf *bytes.Buffer, heading string, words []puzzle.PlacedWord) {
	if len(words) == 0 {
		return
	}
	fmt.Fprintf(buf, "\n%s\n", heading)
	for _, w := range words {
		fmt.Fprintf(buf, "  %d. %s (%d)\n", w.Number, w.Clue, len(w.Answer))
	}
}

// startNumbers maps each word's start cell to its clue number.
func startNumbers(p *puzzle.Puzzle) map[puzzle.Coord]int {
	numbers := make(map[puzzle.Coord]int, len(p.Words))
	for _, w := range p.Words {
		numbers[puzzle.Coord{Row: w.StartRow, Col: w.StartCol}] = w.Number
	}
	return numbers
}
