package generator

import (
	"testing"

	"github.com/gridwright/gridwright/pkg/puzzle"
)

func TestFindCandidates_EveryMatchingPair(t *testing.T) {
	placed := []placement{{word: "PAPA", row: 5, col: 5, dir: puzzle.Across}}
	// "APE" has A matching PAPA at j=1 and j=3, and P matching at j=0 and j=2.
	cands := findCandidates(placed, "APE")
	if len(cands) != 4 {
		t.Fatalf("found %d candidates, want 4", len(cands))
	}
	for _, c := range cands {
		if c.dir != puzzle.Down {
			t.Errorf("candidate direction = %s, want down (perpendicular)", c.dir)
		}
	}
	// First candidate in discovery order: word index 0 (A) against PAPA index 1.
	first := cands[0]
	if first.row != 5 || first.col != 6 {
		t.Errorf("first candidate at (%d,%d), want (5,6)", first.row, first.col)
	}
}

func TestFindCandidates_SharedLetterAligns(t *testing.T) {
	placed := []placement{{word: "VERTIGO", row: 3, col: 2, dir: puzzle.Down}}
	for _, c := range findCandidates(placed, "TIGER") {
		// The shared cell must hold the same letter in both words.
		var sharedLetter byte
		for i, cell := range c.cells() {
			if cell.Col == 2 && cell.Row >= 3 && cell.Row < 3+len("VERTIGO") {
				sharedLetter = c.word[i]
				if "VERTIGO"[cell.Row-3] != sharedLetter {
					t.Errorf("candidate at (%d,%d): letters disagree on shared cell", c.row, c.col)
				}
			}
		}
	}
}

func TestCanPlace_Bounds(t *testing.T) {
	g := newWorkGrid(5)
	tests := []struct {
		name string
		p    placement
		want bool
	}{
		{"fits", placement{word: "ABCDE", row: 2, col: 0, dir: puzzle.Across}, true},
		{"overruns right", placement{word: "ABCDE", row: 0, col: 1, dir: puzzle.Across}, false},
		{"overruns bottom", placement{word: "ABCDE", row: 1, col: 0, dir: puzzle.Down}, false},
		{"negative row", placement{word: "AB", row: -1, col: 0, dir: puzzle.Down}, false},
		{"negative col", placement{word: "AB", row: 0, col: -1, dir: puzzle.Across}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canPlace(g, tt.p); got != tt.want {
				t.Errorf("canPlace() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanPlace_LetterConflict(t *testing.T) {
	g := newWorkGrid(10)
	g.place(placement{word: "CAT", row: 4, col: 3, dir: puzzle.Across})

	// Crossing the A with a word that also has A there is fine.
	ok := placement{word: "MAP", row: 3, col: 4, dir: puzzle.Down}
	if !canPlace(g, ok) {
		t.Errorf("matching letter crossing rejected")
	}
	// A word putting a different letter on the same cell is not.
	bad := placement{word: "MOP", row: 3, col: 4, dir: puzzle.Down}
	if canPlace(g, bad) {
		t.Errorf("conflicting letter crossing accepted")
	}
}

func TestCanPlace_FlushAdjacency(t *testing.T) {
	g := newWorkGrid(10)
	g.place(placement{word: "CAT", row: 4, col: 3, dir: puzzle.Across})

	// A parallel word directly below with no crossing must be rejected.
	parallel := placement{word: "COT", row: 5, col: 3, dir: puzzle.Across}
	if canPlace(g, parallel) {
		t.Errorf("flush parallel word accepted")
	}
}

func TestCanPlace_EndCaps(t *testing.T) {
	g := newWorkGrid(10)
	g.place(placement{word: "CAT", row: 4, col: 3, dir: puzzle.Across})

	// Extending CAT end-to-end on the same row must be rejected even though
	// no cell overlaps.
	before := placement{word: "TO", row: 4, col: 1, dir: puzzle.Across}
	if canPlace(g, before) {
		t.Errorf("word running into another word's start accepted")
	}
	after := placement{word: "ON", row: 4, col: 6, dir: puzzle.Across}
	if canPlace(g, after) {
		t.Errorf("word running off another word's end accepted")
	}
}

func TestScorePlacement(t *testing.T) {
	g := newWorkGrid(30)
	anchor := placement{word: "STREAM", row: 15, col: 12, dir: puzzle.Across}
	g.place(anchor)
	placed := []placement{anchor}

	// One intersection close to the anchor start: 10 + 5 + 5.
	near := placement{word: "MASTER", row: 13, col: 12, dir: puzzle.Down}
	if got := scorePlacement(g, placed, near); got != 20 {
		t.Errorf("near candidate score = %d, want 20", got)
	}

	// One intersection far from the anchor start: intersection points only,
	// and the word is long (>6? no, 6 is not >6) so no penalty applies.
	far := placement{word: "MASTER", row: 15, col: 17, dir: puzzle.Down}
	if got := scorePlacement(g, placed, far); got != 10 {
		t.Errorf("far candidate score = %d, want 10", got)
	}
}

func TestScorePlacement_LongWeakPenalty(t *testing.T) {
	g := newWorkGrid(30)
	anchor := placement{word: "STREAMS", row: 15, col: 11, dir: puzzle.Across}
	g.place(anchor)
	placed := []placement{anchor}

	// Seven letters, one far intersection, no compactness bonus: the raw 10
	// is not below the cutoff, so no penalty.
	tail := placement{word: "SYSTEMS", row: 15, col: 17, dir: puzzle.Down}
	if got := scorePlacement(g, placed, tail); got != 10 {
		t.Errorf("score = %d, want 10 (no penalty at exactly the cutoff)", got)
	}

	// No intersection at all but hypothetically valid: a long word scoring
	// below the cutoff takes the penalty.
	floating := placement{word: "SYSTEMS", row: 25, col: 11, dir: puzzle.Across}
	if got := scorePlacement(g, placed, floating); got != -5 {
		t.Errorf("score = %d, want -5 (long weak penalty)", got)
	}
}
