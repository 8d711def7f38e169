// Package puzzle defines the crossword data model shared by the generator,
// renderers, and IO layer.
//
// A [Puzzle] is the finished, immutable result of a generation run: a square
// grid of [Cell] values compacted to the bounding box of its content, plus
// the [PlacedWord] entries anchored on it with standard reading-order clue
// numbers. [Puzzle.Validate] checks the structural invariants that every
// successful generation guarantees; consumers deserializing untrusted puzzle
// JSON should call it before rendering.
package puzzle
