package generator

import (
	"cmp"
	"slices"

	"github.com/gridwright/gridwright/pkg/puzzle"
)

// assignNumbers converts placements into numbered words using standard
// crossword numbering: distinct start cells are sorted in reading order (row,
// then column) and numbered sequentially from 1. An across word and a down
// word starting on the same cell share one number. The returned slice is
// ordered by number, with across before down on shared start cells.
func assignNumbers(placed []placement) []puzzle.PlacedWord {
	starts := make(map[puzzle.Coord]bool, len(placed))
	for _, p := range placed {
		starts[puzzle.Coord{Row: p.row, Col: p.col}] = true
	}

	ordered := make([]puzzle.Coord, 0, len(starts))
	for c := range starts {
		ordered = append(ordered, c)
	}
	slices.SortFunc(ordered, func(a, b puzzle.Coord) int {
		if a.Row != b.Row {
			return cmp.Compare(a.Row, b.Row)
		}
		return cmp.Compare(a.Col, b.Col)
	})

	numbers := make(map[puzzle.Coord]int, len(ordered))
	for i, c := range ordered {
		numbers[c] = i + 1
	}

	words := make([]puzzle.PlacedWord, len(placed))
	for i, p := range placed {
		words[i] = puzzle.PlacedWord{
			Number:    numbers[puzzle.Coord{Row: p.row, Col: p.col}],
			Answer:    p.word,
			Clue:      p.clue,
			StartRow:  p.row,
			StartCol:  p.col,
			Direction: p.dir,
		}
	}
	slices.SortStableFunc(words, func(a, b puzzle.PlacedWord) int {
		if a.Number != b.Number {
			return cmp.Compare(a.Number, b.Number)
		}
		if a.Direction == b.Direction {
			return 0
		}
		if a.Direction == puzzle.Across {
			return -1
		}
		return 1
	})
	return words
}
