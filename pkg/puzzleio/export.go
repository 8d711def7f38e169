package puzzleio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gridwright/gridwright/pkg/puzzle"
)

// WriteJSON encodes a puzzle as indented JSON and writes it to w.
// The output round-trips through [ReadJSON].
func WriteJSON(p *puzzle.Puzzle, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a puzzle to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(p *puzzle.Puzzle, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(p, f)
}
