package generator

const (
	intersectionPoints = 10 // per cell the word shares with existing content

	nearBonus      = 5 // average start distance below nearThreshold
	tightBonus     = 5 // additional bonus below tightThreshold
	nearThreshold  = 5.0
	tightThreshold = 3.0

	longWeakPenalty = 5 // long word with weak connectivity
	longWordLength  = 6
	weakScoreCutoff = 10
)

// scorePlacement ranks a validated candidate. Higher is better.
//
// Each cell where the candidate's letter coincides with an already filled
// cell earns intersectionPoints; this counts actual crossings on the grid,
// not candidate letter pairs. A compactness bonus rewards candidates whose
// start cell sits close to the centroid of existing words, measured as the
// average Manhattan distance to every placed word's start cell: nearBonus
// below nearThreshold, plus tightBonus below tightThreshold. Finally, words
// longer than longWordLength that still score below weakScoreCutoff lose
// longWeakPenalty, discouraging sprawling placements of long words with a
// single weak crossing.
func scorePlacement(g *workGrid, placed []placement, p placement) int {
	score := 0
	for i, c := range p.cells() {
		if g.cells[c.Row][c.Col] == p.word[i] {
			score += intersectionPoints
		}
	}

	if len(placed) > 0 {
		total := 0
		for _, q := range placed {
			total += abs(p.row-q.row) + abs(p.col-q.col)
		}
		avg := float64(total) / float64(len(placed))
		if avg < nearThreshold {
			score += nearBonus
		}
		if avg < tightThreshold {
			score += tightBonus
		}
	}

	if len(p.word) > longWordLength && score < weakScoreCutoff {
		score -= longWeakPenalty
	}
	return score
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
