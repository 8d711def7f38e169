package generator

import "github.com/gridwright/gridwright/pkg/puzzle"

// placement is a working record for one word during generation. Coordinates
// refer to the oversized working grid until compact rebases them.
type placement struct {
	word string
	clue string
	row  int
	col  int
	dir  puzzle.Direction
}

// cells returns the working-grid coordinates the placement occupies.
func (p placement) cells() []puzzle.Coord {
	out := make([]puzzle.Coord, len(p.word))
	for i := range p.word {
		out[i] = puzzle.Coord{Row: p.row, Col: p.col}
		if p.dir == puzzle.Across {
			out[i].Col += i
		} else {
			out[i].Row += i
		}
	}
	return out
}

// workGrid is the oversized square letter grid mutated during placement.
// A zero byte marks an empty (black) cell.
type workGrid struct {
	size  int
	cells [][]byte
}

func newWorkGrid(size int) *workGrid {
	cells := make([][]byte, size)
	for i := range cells {
		cells[i] = make([]byte, size)
	}
	return &workGrid{size: size, cells: cells}
}

// at returns the letter at (row, col), or 0 when empty or off-grid.
func (g *workGrid) at(row, col int) byte {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return 0
	}
	return g.cells[row][col]
}

// place writes the word's letters onto the grid. The caller must have
// validated the placement first.
func (g *workGrid) place(p placement) {
	for i, c := range p.cells() {
		g.cells[c.Row][c.Col] = p.word[i]
	}
}

// findCandidates enumerates every placement of word that crosses an already
// placed word at a matching letter. For each placed word, every index pair
// (i, j) with word[i] == placed.word[j] yields one candidate positioned so
// the shared letter lands on the same cell in both words, oriented
// perpendicular to the placed word. Candidates appear in discovery order:
// placed words in placement order, then word index, then placed-word index.
// That order is the deterministic tie-breaker during scoring.
func findCandidates(placed []placement, word string) []placement {
	var candidates []placement
	for _, p := range placed {
		for i := 0; i < len(word); i++ {
			for j := 0; j < len(p.word); j++ {
				if word[i] != p.word[j] {
					continue
				}
				cand := placement{word: word, dir: p.dir.Perpendicular()}
				if p.dir == puzzle.Across {
					// Shared cell is (p.row, p.col+j); the new word runs down
					// through it with letter i on the shared cell.
					cand.row = p.row - i
					cand.col = p.col + j
				} else {
					cand.row = p.row + j
					cand.col = p.col - i
				}
				candidates = append(candidates, cand)
			}
		}
	}
	return candidates
}

// canPlace validates a candidate against the crossword construction rules:
//
//   - Bounds: the whole word fits inside the grid.
//   - Letter consistency: every occupied cell is empty or already holds the
//     exact letter the word would place there.
//   - No flush adjacency: cells the word would newly fill must have empty
//     perpendicular neighbors, so parallel words never run side by side
//     without a separating black cell. Intersection cells are exempt.
//   - End caps: the cells immediately before the start and after the end
//     along the word's direction must be empty or off-grid.
func canPlace(g *workGrid, p placement) bool {
	dr, dc := 0, 1
	if p.dir == puzzle.Down {
		dr, dc = 1, 0
	}

	endRow := p.row + dr*(len(p.word)-1)
	endCol := p.col + dc*(len(p.word)-1)
	if p.row < 0 || p.col < 0 || endRow >= g.size || endCol >= g.size {
		return false
	}

	for i := 0; i < len(p.word); i++ {
		row, col := p.row+dr*i, p.col+dc*i
		existing := g.cells[row][col]
		if existing != 0 {
			if existing != p.word[i] {
				return false
			}
			continue
		}
		// Newly filled cell: both perpendicular neighbors must be empty.
		if g.at(row+dc, col+dr) != 0 || g.at(row-dc, col-dr) != 0 {
			return false
		}
	}

	if g.at(p.row-dr, p.col-dc) != 0 || g.at(endRow+dr, endCol+dc) != 0 {
		return false
	}
	return true
}
