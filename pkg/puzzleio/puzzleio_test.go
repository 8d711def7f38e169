package puzzleio

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gridwright/gridwright/pkg/puzzle"
)

func sample() *puzzle.Puzzle {
	return &puzzle.Puzzle{
		Size: 3,
		Words: []puzzle.PlacedWord{
			{Number: 1, Answer: "CAT", Clue: "pet", StartRow: 0, StartCol: 0, Direction: puzzle.Across},
			{Number: 2, Answer: "AXE", Clue: "tool", StartRow: 0, StartCol: 1, Direction: puzzle.Down},
		},
		Grid: [][]puzzle.Cell{
			{"C", "A", "T"},
			{"", "X", ""},
			{"", "E", ""},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sample(), &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if !reflect.DeepEqual(got, sample()) {
		t.Errorf("round trip changed the puzzle:\ngot  %+v\nwant %+v", got, sample())
	}
}

func TestReadJSON_Malformed(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{not json")); err == nil {
		t.Errorf("ReadJSON() = nil error for malformed input")
	}
}

func TestReadJSON_RejectsInvalidPuzzle(t *testing.T) {
	// Grid letter disagrees with the word span.
	const doc = `{
	  "size": 2,
	  "words": [{"number": 1, "answer": "AB", "clue": "", "startRow": 0, "startCol": 0, "direction": "across"}],
	  "grid": [["A", "X"], ["", ""]]
	}`
	_, err := ReadJSON(strings.NewReader(doc))
	if !errors.Is(err, puzzle.ErrLetterMismatch) {
		t.Errorf("ReadJSON() error = %v, want ErrLetterMismatch", err)
	}
}

func TestReadJSON_RejectsUnknownDirection(t *testing.T) {
	const doc = `{
	  "size": 2,
	  "words": [{"number": 1, "answer": "AB", "clue": "", "startRow": 0, "startCol": 0, "direction": "diagonal"}],
	  "grid": [["A", "B"], ["", ""]]
	}`
	_, err := ReadJSON(strings.NewReader(doc))
	if !errors.Is(err, puzzle.ErrUnknownDirection) {
		t.Errorf("ReadJSON() error = %v, want ErrUnknownDirection", err)
	}
}

func TestExportImportFile(t *testing.T) {
	path := t.TempDir() + "/puzzle.json"
	if err := ExportJSON(sample(), path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if !reflect.DeepEqual(got, sample()) {
		t.Errorf("file round trip changed the puzzle")
	}
}
