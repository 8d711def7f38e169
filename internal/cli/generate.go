package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gridwright/gridwright/pkg/cache"
	"github.com/gridwright/gridwright/pkg/generator"
	"github.com/gridwright/gridwright/pkg/puzzle"
	"github.com/gridwright/gridwright/pkg/puzzleio"
	"github.com/gridwright/gridwright/pkg/render"
	"github.com/gridwright/gridwright/pkg/wordlist"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output           string // output file path (stdout if empty)
	format           string // json or text
	maxAttempts      int    // placement passes per word
	minIntersections int    // acceptance bar for a candidate's score
	gridPadding      int    // reserved padding around the compacted grid
	refresh          bool   // bypass the generation cache
	noCache          bool   // disable the generation cache entirely
}

// newGenerateCmd creates the generate command for building a puzzle from a
// word list file. Word lists can be JSON, TOML, or tab-separated text; the
// format is detected from the file extension.
//
// Results are cached under the user cache directory keyed by the word list
// and options, so repeated runs of the same input return instantly.
func newGenerateCmd() *cobra.Command {
	defaults := generator.DefaultOptions()
	opts := generateOpts{
		format:           "json",
		maxAttempts:      defaults.MaxAttemptsPerWord,
		minIntersections: defaults.MinIntersections,
		gridPadding:      defaults.GridPadding,
	}

	cmd := &cobra.Command{
		Use:   "generate <wordlist>",
		Short: "Build a crossword grid from a word list",
		Long: `Build a crossword grid from a word list file.

The word list format is detected from the extension:
  .json   [{"word": "cat", "clue": "Feline pet"}, ...]
  .toml   [[words]] tables with word and clue keys
  .txt    one word per line, clue after a tab, # comments

Examples:
  gridwright generate words.json
  gridwright generate words.txt -o puzzle.json
  gridwright generate words.toml --min-intersections 2
  gridwright generate words.json -f text`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "json" && opts.format != "text" {
				return fmt.Errorf("invalid format %q (valid: json, text)", opts.format)
			}
			return runGenerate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format (json, text)")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", opts.maxAttempts, "placement passes per word")
	cmd.Flags().IntVar(&opts.minIntersections, "min-intersections", opts.minIntersections, "minimum placement score to accept")
	cmd.Flags().IntVar(&opts.gridPadding, "grid-padding", opts.gridPadding, "padding around the compacted grid")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the generation cache")

	return cmd
}

// runGenerate loads the word list, generates the puzzle (through the cache
// unless disabled), and writes it as JSON to opts.output or stdout.
func runGenerate(ctx context.Context, input string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Loading word list %s", input)

	words, err := wordlist.Load(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d words", len(words))

	genOpts := generator.Options{
		MaxAttemptsPerWord: opts.maxAttempts,
		MinIntersections:   opts.minIntersections,
		GridPadding:        opts.gridPadding,
	}

	spinner := newSpinnerWithContext(ctx, "Placing words...")
	spinner.Start()

	prog := newProgress(logger)
	p, cached, err := generateCached(ctx, words, genOpts, opts)
	spinner.Stop()
	if err != nil {
		if errors.Is(err, generator.ErrInsufficientPlacement) {
			printWarning("Not enough words intersect to form a grid")
		}
		return err
	}
	prog.done(fmt.Sprintf("Placed %d of %d words", len(p.Words), len(words)))

	printStats(len(p.Words), len(words)-len(p.Words), p.Size, cached)

	if opts.output == "" {
		if opts.format == "text" {
			_, err := fmt.Fprint(os.Stdout, render.Text(p, render.TextOptions{}))
			return err
		}
		return puzzleio.WriteJSON(p, os.Stdout)
	}
	if opts.format == "text" {
		text := render.Text(p, render.TextOptions{})
		if err := os.WriteFile(opts.output, []byte(text), 0o644); err != nil {
			return err
		}
	} else if err := puzzleio.ExportJSON(p, opts.output); err != nil {
		return err
	}
	printFile(opts.output)
	if opts.format == "json" {
		printNextStep("Render it", fmt.Sprintf("gridwright render %s", opts.output))
	}
	return nil
}

// generateCached memoizes generation results in the file cache. The second
// return reports whether the puzzle came from the cache.
func generateCached(ctx context.Context, words []generator.WordInput, genOpts generator.Options, opts *generateOpts) (*puzzle.Puzzle, bool, error) {
	logger := loggerFromContext(ctx)

	if opts.noCache {
		p, err := generator.Generate(ctx, words, genOpts)
		return p, false, err
	}

	c, err := openCache()
	if err != nil {
		logger.Warnf("Cache unavailable: %v", err)
		p, err := generator.Generate(ctx, words, genOpts)
		return p, false, err
	}
	defer c.Close()

	key := wordlistKey(words, genOpts)
	if !opts.refresh {
		if data, ok, err := c.Get(ctx, key); err == nil && ok {
			var p puzzle.Puzzle
			if err := json.Unmarshal(data, &p); err == nil {
				return &p, true, nil
			}
			logger.Warnf("Discarding corrupt cache entry %s", key)
		}
	}

	p, err := generator.Generate(ctx, words, genOpts)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(p); err == nil {
		if err := c.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			logger.Warnf("Caching puzzle failed: %v", err)
		}
	}
	return p, false, nil
}

// wordlistKey derives the cache key for a word list and options pair. The
// options are normalized first so zero fields key the same as defaults.
func wordlistKey(words []generator.WordInput, opts generator.Options) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Word + "\t" + w.Clue
	}
	opts = opts.WithDefaults()
	return cache.PuzzleKey(parts, opts.MaxAttemptsPerWord, opts.MinIntersections, opts.GridPadding)
}

// cacheDir returns the generation cache directory under the user cache root.
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "gridwright"), nil
}

// openCache opens the default file cache.
func openCache() (cache.Cache, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}
