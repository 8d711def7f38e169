package puzzleio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gridwright/gridwright/pkg/puzzle"
)

// ReadJSON decodes a puzzle from r and validates its structural invariants.
//
// ReadJSON returns an error if the JSON is malformed or if the decoded
// puzzle violates the [puzzle.Puzzle.Validate] contract (non-square grid,
// word spans disagreeing with grid letters, orphan cells, uncompacted
// borders, unknown directions). Validation errors are wrapped; use errors.Is
// with the puzzle package sentinels to classify them.
//
// The returned puzzle is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*puzzle.Puzzle, error) {
	var p puzzle.Puzzle
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid puzzle: %w", err)
	}
	return &p, nil
}

// ImportJSON reads a puzzle from a JSON file at path.
// This is a convenience wrapper around [ReadJSON] for file-based input.
func ImportJSON(path string) (*puzzle.Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	p, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
