package render

import (
	"strings"
	"testing"

	"github.com/gridwright/gridwright/pkg/puzzle"
)

// crossed builds a 3x3 puzzle with CAT across and AXE down sharing the A.
//
//	C A T
//	# X #
//	# E #
func crossed() *puzzle.Puzzle {
	return &puzzle.Puzzle{
		Size: 3,
		Words: []puzzle.PlacedWord{
			{Number: 1, Answer: "CAT", Clue: "Feline pet", StartRow: 0, StartCol: 0, Direction: puzzle.Across},
			{Number: 2, Answer: "AXE", Clue: "Chopping tool", StartRow: 0, StartCol: 1, Direction: puzzle.Down},
		},
		Grid: [][]puzzle.Cell{
			{"C", "A", "T"},
			{puzzle.Empty, "X", puzzle.Empty},
			{puzzle.Empty, "E", puzzle.Empty},
		},
	}
}

func TestText_Blank(t *testing.T) {
	got := Text(crossed(), TextOptions{})

	lines := strings.Split(got, "\n")
	if lines[0] != "1 2 _" {
		t.Errorf("Text() first row = %q, want %q", lines[0], "1 2 _")
	}
	if lines[1] != "# _ #" {
		t.Errorf("Text() second row = %q, want %q", lines[1], "# _ #")
	}
	if strings.Contains(got, "X") {
		t.Error("Text() blank mode should not contain answer letters")
	}
}

func TestText_Solution(t *testing.T) {
	got := Text(crossed(), TextOptions{Solution: true})

	lines := strings.Split(got, "\n")
	if lines[0] != "C A T" {
		t.Errorf("Text() first row = %q, want %q", lines[0], "C A T")
	}
	if lines[2] != "# E #" {
		t.Errorf("Text() third row = %q, want %q", lines[2], "# E #")
	}
}

func TestText_ClueLists(t *testing.T) {
	got := Text(crossed(), TextOptions{})

	if !strings.Contains(got, "Across\n  1. Feline pet (3)") {
		t.Errorf("Text() missing across clue list:\n%s", got)
	}
	if !strings.Contains(got, "Down\n  2. Chopping tool (3)") {
		t.Errorf("Text() missing down clue list:\n%s", got)
	}
}

func TestSVG_Grid(t *testing.T) {
	got := string(SVG(crossed(), SVGOptions{}))

	if !strings.Contains(got, `viewBox="0 0 108 108"`) {
		t.Errorf("SVG() missing 3x36 viewBox:\n%s", got[:200])
	}
	if n := strings.Count(got, `fill="white"`); n != 5 {
		t.Errorf("SVG() white cell count = %d, want 5", n)
	}
	if strings.Contains(got, ">X<") {
		t.Error("SVG() blank mode should not contain answer letters")
	}
}

func TestSVG_Solution(t *testing.T) {
	got := string(SVG(crossed(), SVGOptions{Solution: true, CellSize: 20}))

	if !strings.Contains(got, `viewBox="0 0 60 60"`) {
		t.Error("SVG() should honor CellSize")
	}
	for _, letter := range []string{">C<", ">A<", ">T<", ">X<", ">E<"} {
		if !strings.Contains(got, letter) {
			t.Errorf("SVG() solution missing letter %q", letter)
		}
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(crossed())

	if !strings.Contains(dot, "graph G") {
		t.Error("ToDOT() output missing graph declaration")
	}
	if !strings.Contains(dot, `"1-across"`) {
		t.Error("ToDOT() output missing across node")
	}
	if !strings.Contains(dot, `"2-down"`) {
		t.Error("ToDOT() output missing down node")
	}
	if !strings.Contains(dot, `"1-across" -- "2-down" [label="A"]`) {
		t.Errorf("ToDOT() output missing intersection edge:\n%s", dot)
	}
}

func TestIntersections_None(t *testing.T) {
	p := &puzzle.Puzzle{
		Size: 1,
		Words: []puzzle.PlacedWord{
			{Number: 1, Answer: "A", StartRow: 0, StartCol: 0, Direction: puzzle.Across},
		},
		Grid: [][]puzzle.Cell{{"A"}},
	}
	if edges := intersections(p); len(edges) != 0 {
		t.Errorf("intersections() = %d edges, want 0", len(edges))
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(ToDOT(crossed()))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(`not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
