package generator

// compact crops the working grid to the tight bounding box of its filled
// cells and rebases every placement by the same offset. The result is always
// square: when the bounding box is rectangular, the larger dimension wins and
// the short axis keeps black padding lines. Compaction is a pure translation;
// no word is relocated relative to any other, so all letter intersections
// survive unchanged. Running compact on an already compacted grid is a no-op.
func compact(g *workGrid, placed []placement) (*workGrid, []placement) {
	minRow, maxRow := g.size, -1
	minCol, maxCol := g.size, -1
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c] == 0 {
				continue
			}
			minRow = min(minRow, r)
			maxRow = max(maxRow, r)
			minCol = min(minCol, c)
			maxCol = max(maxCol, c)
		}
	}
	if maxRow < 0 {
		return newWorkGrid(0), nil
	}

	side := max(maxRow-minRow+1, maxCol-minCol+1)
	out := newWorkGrid(side)
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			out.cells[r-minRow][c-minCol] = g.cells[r][c]
		}
	}

	shifted := make([]placement, len(placed))
	for i, p := range placed {
		p.row -= minRow
		p.col -= minCol
		shifted[i] = p
	}
	return out, shifted
}
