package generator

import (
	"reflect"
	"testing"

	"github.com/gridwright/gridwright/pkg/puzzle"
)

func TestCompact_TranslatesToOrigin(t *testing.T) {
	g := newWorkGrid(10)
	p := placement{word: "CAT", row: 4, col: 3, dir: puzzle.Across}
	g.place(p)

	out, placed := compact(g, []placement{p})

	if out.size != 3 {
		t.Fatalf("size = %d, want 3", out.size)
	}
	if got := string([]byte{out.cells[0][0], out.cells[0][1], out.cells[0][2]}); got != "CAT" {
		t.Errorf("row 0 = %q, want CAT", got)
	}
	if placed[0].row != 0 || placed[0].col != 0 {
		t.Errorf("placement at (%d,%d), want (0,0)", placed[0].row, placed[0].col)
	}
}

func TestCompact_SquareFromRectangle(t *testing.T) {
	// Content spans 2 rows × 5 cols: the larger dimension wins and the short
	// axis keeps black padding.
	g := newWorkGrid(12)
	a := placement{word: "HELLO", row: 5, col: 4, dir: puzzle.Across}
	b := placement{word: "HI", row: 5, col: 4, dir: puzzle.Down}
	g.place(a)
	g.place(b)

	out, placed := compact(g, []placement{a, b})

	if out.size != 5 {
		t.Fatalf("size = %d, want 5", out.size)
	}
	for i, want := range []struct{ row, col int }{{0, 0}, {0, 0}} {
		if placed[i].row != want.row || placed[i].col != want.col {
			t.Errorf("placement %d at (%d,%d), want (0,0)", i, placed[i].row, placed[i].col)
		}
	}
	for c := 0; c < 5; c++ {
		for r := 2; r < 5; r++ {
			if out.cells[r][c] != 0 {
				t.Errorf("cell (%d,%d) = %q, want padding", r, c, out.cells[r][c])
			}
		}
	}
}

func TestCompact_Idempotent(t *testing.T) {
	g := newWorkGrid(20)
	a := placement{word: "STONE", row: 8, col: 6, dir: puzzle.Across}
	b := placement{word: "SALT", row: 8, col: 6, dir: puzzle.Down}
	g.place(a)
	g.place(b)

	once, placedOnce := compact(g, []placement{a, b})
	twice, placedTwice := compact(once, placedOnce)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second compaction changed the grid")
	}
	if !reflect.DeepEqual(placedOnce, placedTwice) {
		t.Errorf("second compaction changed the placements")
	}
}

func TestCompact_EmptyGrid(t *testing.T) {
	out, placed := compact(newWorkGrid(8), nil)
	if out.size != 0 {
		t.Errorf("size = %d, want 0", out.size)
	}
	if len(placed) != 0 {
		t.Errorf("placed = %v, want empty", placed)
	}
}

func TestAssignNumbers_ReadingOrder(t *testing.T) {
	placed := []placement{
		{word: "DOWNER", row: 0, col: 4, dir: puzzle.Down},
		{word: "TOP", row: 0, col: 2, dir: puzzle.Across},
		{word: "LOW", row: 3, col: 0, dir: puzzle.Across},
	}
	words := assignNumbers(placed)

	byAnswer := make(map[string]puzzle.PlacedWord)
	for _, w := range words {
		byAnswer[w.Answer] = w
	}
	if byAnswer["TOP"].Number != 1 {
		t.Errorf("TOP number = %d, want 1 (row 0, col 2)", byAnswer["TOP"].Number)
	}
	if byAnswer["DOWNER"].Number != 2 {
		t.Errorf("DOWNER number = %d, want 2 (row 0, col 4)", byAnswer["DOWNER"].Number)
	}
	if byAnswer["LOW"].Number != 3 {
		t.Errorf("LOW number = %d, want 3 (row 3, col 0)", byAnswer["LOW"].Number)
	}
}

func TestAssignNumbers_SharedStartCell(t *testing.T) {
	placed := []placement{
		{word: "ACROSS", row: 2, col: 1, dir: puzzle.Across},
		{word: "AXIS", row: 2, col: 1, dir: puzzle.Down},
		{word: "LATER", row: 4, col: 0, dir: puzzle.Across},
	}
	words := assignNumbers(placed)

	if words[0].Number != 1 || words[1].Number != 1 {
		t.Errorf("shared start numbers = %d, %d, want 1, 1", words[0].Number, words[1].Number)
	}
	if words[0].Direction != puzzle.Across {
		t.Errorf("across should sort before down on a shared start cell")
	}
	if words[2].Number != 2 {
		t.Errorf("LATER number = %d, want 2", words[2].Number)
	}
}
