// Package puzzleio reads and writes the JSON interchange format for puzzles.
//
// The format is the straight JSON encoding of [puzzle.Puzzle]:
//
//	{
//	  "size": 5,
//	  "words": [
//	    {"number": 1, "answer": "AREA", "clue": "a", "startRow": 0, "startCol": 2, "direction": "down"}
//	  ],
//	  "grid": [["", "", "A", "", ""], ...]
//	}
//
// ReadJSON validates the structure on import so downstream renderers can rely
// on the [puzzle.Puzzle.Validate] invariants even for hand-edited files.
package puzzleio
