// Package generator builds crossword puzzles from unordered word lists.
//
// Generation is a one-way pipeline: raw inputs are normalized and filtered,
// sorted longest first, placed greedily onto an oversized working grid via
// intersection search with constraint validation and heuristic scoring, then
// compacted to the minimal bounding square and numbered in reading order.
// The search is greedy and never backtracks: once a word is fixed it stays
// fixed, and a word with no acceptable placement is dropped rather than
// forcing earlier words to move. That is a deliberate speed/simplicity
// tradeoff over constraint-satisfaction search.
//
// There is no randomness anywhere in the pipeline, so identical input and
// options produce an identical [puzzle.Puzzle] on every call. Calls share no
// state, so callers may generate candidate puzzles in parallel and keep the
// best without synchronization.
package generator

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/gridwright/gridwright/pkg/observability"
	"github.com/gridwright/gridwright/pkg/puzzle"
)

var (
	// ErrEmptyInput is returned by [Generate] when no words were supplied.
	ErrEmptyInput = errors.New("no input words")

	// ErrNoValidWords is returned by [Generate] when every input word was
	// rejected during normalization (too short or non-alphabetic).
	ErrNoValidWords = errors.New("no valid words after normalization")

	// ErrInsufficientPlacement is returned by [Generate] when fewer than
	// min(3, wordCount) words could be placed. This is the common failure
	// mode for word sets that share few letters.
	ErrInsufficientPlacement = errors.New("not enough words could be placed")
)

// minWorkGridSize is the floor for the working grid side. The working grid
// is deliberately oversized so placement can grow in any direction before
// compaction crops it; the constant is a tuning choice, not a correctness
// requirement.
const minWorkGridSize = 30

// Generate places as many of the given words as possible onto a shared
// crossword grid and returns the compacted, numbered result.
//
// Words are normalized first (see [Normalize]); entries that survive are
// sorted by length descending (stable, preserving input order on ties) and
// the longest is placed across the center of the working grid as the anchor.
// Every remaining word is tried against all placed words at every matching
// letter pair; the highest-scoring valid candidate wins if it clears
// opts.MinIntersections, otherwise the word is dropped and generation
// continues. Dropped words are reported through [observability.Generator],
// never as errors.
//
// Generate fails with ErrEmptyInput, ErrNoValidWords, or
// ErrInsufficientPlacement (fewer than min(3, wordCount) placements). On
// failure the returned puzzle is nil; no partial grid is ever produced.
// The context is used for observability events only; generation itself has
// no suspension points.
func Generate(ctx context.Context, inputs []WordInput, opts Options) (*puzzle.Puzzle, error) {
	hooks := observability.Generator()
	hooks.OnGenerateStart(ctx, len(inputs))
	start := time.Now()

	p, placed, dropped, err := generate(ctx, hooks, inputs, opts)
	hooks.OnGenerateComplete(ctx, placed, dropped, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func generate(ctx context.Context, hooks observability.GeneratorHooks, inputs []WordInput, opts Options) (*puzzle.Puzzle, int, int, error) {
	if len(inputs) == 0 {
		return nil, 0, 0, ErrEmptyInput
	}
	words := Normalize(inputs)
	if len(words) == 0 {
		return nil, 0, 0, ErrNoValidWords
	}
	opts = opts.WithDefaults()

	// Longest first: long words placed early create the most intersection
	// opportunities for the rest. Stable sort keeps input order on ties.
	slices.SortStableFunc(words, func(a, b WordInput) int {
		return len(b.Word) - len(a.Word)
	})

	size := max(minWorkGridSize, 3*len(words[0].Word))
	grid := newWorkGrid(size)

	anchor := placement{
		word: words[0].Word,
		clue: words[0].Clue,
		row:  size / 2,
		col:  (size - len(words[0].Word)) / 2,
		dir:  puzzle.Across,
	}
	grid.place(anchor)
	placed := []placement{anchor}
	hooks.OnWordPlaced(ctx, anchor.word, 0)

	dropped := 0
	for _, w := range words[1:] {
		cand, score, valid, ok := bestPlacement(grid, placed, w.Word, opts)
		if !ok {
			hooks.OnWordDropped(ctx, w.Word, valid)
			dropped++
			continue
		}
		cand.clue = w.Clue
		grid.place(cand)
		placed = append(placed, cand)
		hooks.OnWordPlaced(ctx, cand.word, score)
	}

	if len(placed) < min(3, len(words)) {
		return nil, len(placed), dropped, ErrInsufficientPlacement
	}

	grid, placed = compact(grid, placed)
	return buildPuzzle(grid, placed), len(placed), dropped, nil
}

// bestPlacement evaluates every valid candidate for word and returns the
// highest scoring one along with its score and the total number of valid
// candidates considered. ok is false when no candidate clears
// opts.MinIntersections. Ties keep the earliest candidate in discovery
// order, so the result is deterministic.
//
// The engine's retry contract (opts.MaxAttemptsPerWord) is honored by a
// single evaluation pass: with no randomness between attempts, repeat passes
// over the same grid are identical, so one pass decides.
func bestPlacement(g *workGrid, placed []placement, word string, opts Options) (best placement, score, valid int, ok bool) {
	score = -1 << 31
	for _, cand := range findCandidates(placed, word) {
		if !canPlace(g, cand) {
			continue
		}
		valid++
		if s := scorePlacement(g, placed, cand); s > score {
			best, score = cand, s
		}
	}
	if valid == 0 || score < opts.MinIntersections {
		return placement{}, 0, valid, false
	}
	return best, score, valid, true
}

// buildPuzzle converts the compacted working grid and placements into the
// immutable output structure.
func buildPuzzle(g *workGrid, placed []placement) *puzzle.Puzzle {
	cells := make([][]puzzle.Cell, g.size)
	for r := range cells {
		cells[r] = make([]puzzle.Cell, g.size)
		for c := range cells[r] {
			if b := g.cells[r][c]; b != 0 {
				cells[r][c] = puzzle.Cell(b)
			}
		}
	}
	return &puzzle.Puzzle{
		Size:  g.size,
		Words: assignNumbers(placed),
		Grid:  cells,
	}
}
