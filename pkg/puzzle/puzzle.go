package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDirection is returned by [Puzzle.Validate] when a placed word
	// has a direction other than [Across] or [Down].
	ErrUnknownDirection = errors.New("unknown direction")

	// ErrNotSquare is returned by [Puzzle.Validate] when the grid is not a
	// Size×Size matrix. The grid must be square even when the placed content
	// is rectangular; the short axis is padded with black cells.
	ErrNotSquare = errors.New("grid is not square")

	// ErrSpanOutOfBounds is returned by [Puzzle.Validate] when a word span
	// extends past the grid boundary.
	ErrSpanOutOfBounds = errors.New("word span out of bounds")

	// ErrLetterMismatch is returned by [Puzzle.Validate] when a cell of a word
	// span disagrees with the letter stored in the grid. Two words crossing at
	// a cell must agree on the letter there; this is the core consistency
	// invariant of the structure.
	ErrLetterMismatch = errors.New("word letter does not match grid cell")

	// ErrOrphanCell is returned by [Puzzle.Validate] when a filled cell is not
	// covered by any placed word's span.
	ErrOrphanCell = errors.New("filled cell belongs to no word")

	// ErrEmptyBorder is returned by [Puzzle.Validate] when the grid is not
	// compacted: filled content must touch row 0, column 0, and the far edge
	// on at least one axis. The square grid may keep black padding lines on
	// the short axis of a rectangular bounding box, but never on both axes.
	ErrEmptyBorder = errors.New("grid is not compacted to its content")
)

// Direction is the orientation of a placed word on the grid.
type Direction string

const (
	// Across words extend left to right along a row.
	Across Direction = "across"
	// Down words extend top to bottom along a column.
	Down Direction = "down"
)

// Valid reports whether d is one of the two supported directions.
func (d Direction) Valid() bool { return d == Across || d == Down }

// Perpendicular returns the other direction. A word always crosses the word
// it intersects at a right angle; parallel overlapping placement never occurs.
func (d Direction) Perpendicular() Direction {
	if d == Across {
		return Down
	}
	return Across
}

// Cell is a single grid position: either empty (black) or one uppercase letter.
type Cell string

// Empty is the black cell.
const Empty Cell = ""

// Empty reports whether the cell is black.
func (c Cell) Empty() bool { return c == Empty }

// Coord identifies a grid position by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PlacedWord is a word fixed on the grid with its assigned clue number.
// StartRow and StartCol locate the first letter; subsequent letters extend
// along the word's direction.
type PlacedWord struct {
	Number    int       `json:"number"`
	Answer    string    `json:"answer"`
	Clue      string    `json:"clue"`
	StartRow  int       `json:"startRow"`
	StartCol  int       `json:"startCol"`
	Direction Direction `json:"direction"`
}

// Cells returns the grid coordinates occupied by the word, in letter order.
func (w PlacedWord) Cells() []Coord {
	cells := make([]Coord, len(w.Answer))
	for i := range w.Answer {
		cells[i] = Coord{Row: w.StartRow, Col: w.StartCol}
		if w.Direction == Across {
			cells[i].Col += i
		} else {
			cells[i].Row += i
		}
	}
	return cells
}

// Puzzle is a finished crossword: a compacted square letter grid plus the
// numbered words placed on it. Instances are created fresh per generation
// call and never mutated afterwards.
type Puzzle struct {
	Size  int          `json:"size"`
	Words []PlacedWord `json:"words"`
	Grid  [][]Cell     `json:"grid"`
}

// AcrossWords returns the placed words with direction [Across], in slice order.
func (p *Puzzle) AcrossWords() []PlacedWord { return p.byDirection(Across) }

// DownWords returns the placed words with direction [Down], in slice order.
func (p *Puzzle) DownWords() []PlacedWord { return p.byDirection(Down) }

func (p *Puzzle) byDirection(d Direction) []PlacedWord {
	var words []PlacedWord
	for _, w := range p.Words {
		if w.Direction == d {
			words = append(words, w)
		}
	}
	return words
}

// At returns the cell at (row, col), or an empty cell if the coordinate is
// off-grid.
func (p *Puzzle) At(row, col int) Cell {
	if row < 0 || row >= len(p.Grid) || col < 0 || col >= len(p.Grid[row]) {
		return ""
	}
	return p.Grid[row][col]
}

// Validate checks the structural invariants of a finished puzzle and returns
// nil if all hold:
//
//  1. The grid is a Size×Size square.
//  2. Every word has a valid direction and its span fits inside the grid.
//  3. Every cell of every word span matches the grid letter exactly.
//  4. Every filled grid cell is covered by at least one word span.
//  5. No border row or column is entirely black (the grid is compacted).
//
// Errors are wrapped with the offending word or coordinate; use errors.Is to
// test for the sentinel.
func (p *Puzzle) Validate() error {
	if len(p.Grid) != p.Size {
		return fmt.Errorf("%w: %d rows, size %d", ErrNotSquare, len(p.Grid), p.Size)
	}
	for r, row := range p.Grid {
		if len(row) != p.Size {
			return fmt.Errorf("%w: row %d has %d cells, size %d", ErrNotSquare, r, len(row), p.Size)
		}
	}

	covered := make(map[Coord]bool)
	for _, w := range p.Words {
		if !w.Direction.Valid() {
			return fmt.Errorf("%w: %q has direction %q", ErrUnknownDirection, w.Answer, w.Direction)
		}
		for i, c := range w.Cells() {
			if c.Row < 0 || c.Row >= p.Size || c.Col < 0 || c.Col >= p.Size {
				return fmt.Errorf("%w: %q at (%d,%d)", ErrSpanOutOfBounds, w.Answer, c.Row, c.Col)
			}
			if string(p.Grid[c.Row][c.Col]) != w.Answer[i:i+1] {
				return fmt.Errorf("%w: %q letter %d at (%d,%d): grid holds %q",
					ErrLetterMismatch, w.Answer, i, c.Row, c.Col, p.Grid[c.Row][c.Col])
			}
			covered[c] = true
		}
	}

	for r := range p.Grid {
		for c := range p.Grid[r] {
			if !p.Grid[r][c].Empty() && !covered[Coord{Row: r, Col: c}] {
				return fmt.Errorf("%w: (%d,%d)", ErrOrphanCell, r, c)
			}
		}
	}

	return p.validateBorders()
}

func (p *Puzzle) validateBorders() error {
	if p.Size == 0 {
		return nil
	}
	minRow, maxRow, minCol, maxCol := p.Size, -1, p.Size, -1
	for r := range p.Grid {
		for c := range p.Grid[r] {
			if p.Grid[r][c].Empty() {
				continue
			}
			minRow = min(minRow, r)
			maxRow = max(maxRow, r)
			minCol = min(minCol, c)
			maxCol = max(maxCol, c)
		}
	}
	if maxRow < 0 {
		return ErrEmptyBorder
	}
	if minRow != 0 || minCol != 0 {
		return ErrEmptyBorder
	}
	if max(maxRow, maxCol) != p.Size-1 {
		return ErrEmptyBorder
	}
	return nil
}
