package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridwright/gridwright/pkg/puzzle"
	"github.com/gridwright/gridwright/pkg/puzzleio"
	"github.com/gridwright/gridwright/pkg/render"
)

const (
	vizGrid  = "grid"  // the filled crossword grid
	vizGraph = "graph" // word-intersection graph via Graphviz

	defaultPNGScale = 2.0 // 2x resolution for high-DPI displays
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple outputs)
	vizTypes []string // visualization types: "grid", "graph"
	formats  []string // output formats: "text", "svg", "png", "pdf", "dot"
	solution bool     // fill in answer letters
	cellSize int      // grid cell size in pixels
}

// newRenderCmd creates the render command for converting a saved puzzle to
// presentation formats. The grid view supports text, SVG, PNG, and PDF; the
// graph view additionally supports raw DOT output.
func newRenderCmd() *cobra.Command {
	var vizTypesStr, formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <puzzle.json>",
		Short: "Render a puzzle to text, SVG, PNG, PDF, or DOT output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.vizTypes = parseVizTypes(vizTypesStr)
			opts.formats = parseFormats(formatsStr)
			if err := validateVizTypes(opts.vizTypes); err != nil {
				return err
			}
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single type/format) or base path (multiple)")
	cmd.Flags().StringVarP(&vizTypesStr, "type", "t", "", "visualization type(s): grid (default), graph (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): text (default), svg, png, pdf, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.solution, "solution", false, "fill in answer letters")
	cmd.Flags().IntVar(&opts.cellSize, "cell-size", 0, "grid cell size in pixels")

	return cmd
}

// parseVizTypes parses the --type flag, defaulting to ["grid"].
func parseVizTypes(s string) []string {
	if s == "" {
		return []string{vizGrid}
	}
	return strings.Split(s, ",")
}

// parseFormats parses the --format flag, defaulting to ["text"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"text"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"text": true, "svg": true, "png": true, "pdf": true, "dot": true}

func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'text', 'svg', 'png', 'pdf', or 'dot')", f)
		}
	}
	return nil
}

func validateVizTypes(types []string) error {
	for _, v := range types {
		if v != vizGrid && v != vizGraph {
			return fmt.Errorf("invalid type: %s (must be 'grid' or 'graph')", v)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output has a
// known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the puzzle from input and renders it to the requested
// type/format combinations.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	p, err := puzzleio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded puzzle: %d words, %dx%d grid", len(p.Words), p.Size, p.Size)

	if len(opts.vizTypes) == 1 && len(opts.formats) == 1 {
		return renderSingle(ctx, p, opts.vizTypes[0], opts.formats[0], input, opts)
	}
	return renderMultiple(ctx, p, input, opts)
}

// renderSingle renders one type/format combination to a single output file.
// If opts.output is empty, the output path is derived from the input name;
// text output with no explicit path goes to stdout.
func renderSingle(ctx context.Context, p *puzzle.Puzzle, vizType, format, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	data, err := renderPuzzle(ctx, p, vizType, format, opts)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	outputPath := opts.output
	if outputPath == "" && format == "text" {
		out, err := openOutput("")
		if err != nil {
			return err
		}
		defer out.Close()
		_, err = out.Write(data)
		return err
	}
	if outputPath == "" {
		outputPath = basePath("", input) + "." + formatExt(format)
	}

	out, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = out.Write(data); err != nil {
		return err
	}

	logger.Infof("Generated %s", outputPath)
	return nil
}

// renderMultiple renders all requested type/format combinations to separate
// files named base_type.format (or base.format when only one type is asked).
func renderMultiple(ctx context.Context, p *puzzle.Puzzle, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	base := basePath(opts.output, input)

	for _, vizType := range opts.vizTypes {
		for _, format := range opts.formats {
			data, err := renderPuzzle(ctx, p, vizType, format, opts)
			if errors.Is(err, errSkipFormat) {
				logger.Debugf("Skipping %s/%s (unsupported combination)", vizType, format)
				continue
			}
			if err != nil {
				return fmt.Errorf("%s/%s: %w", vizType, format, err)
			}

			var path string
			if len(opts.vizTypes) == 1 {
				path = fmt.Sprintf("%s.%s", base, formatExt(format))
			} else {
				path = fmt.Sprintf("%s_%s.%s", base, vizType, formatExt(format))
			}

			out, err := openOutput(path)
			if err != nil {
				return err
			}
			if _, err := out.Write(data); err != nil {
				out.Close()
				return err
			}
			out.Close()
			logger.Infof("Generated %s", path)
		}
	}
	return nil
}

// errSkipFormat is a sentinel error indicating an unsupported format/type combination.
var errSkipFormat = fmt.Errorf("skip unsupported format")

// formatExt maps a format name to its file extension.
func formatExt(format string) string {
	if format == "text" {
		return "txt"
	}
	return format
}

// renderPuzzle dispatches to the grid or graph renderer.
func renderPuzzle(ctx context.Context, p *puzzle.Puzzle, vizType, format string, opts *renderOpts) ([]byte, error) {
	switch vizType {
	case vizGrid:
		return renderGrid(ctx, p, format, opts)
	case vizGraph:
		return renderGraph(ctx, p, format)
	default:
		return nil, fmt.Errorf("unknown visualization type: %s", vizType)
	}
}

// renderGrid renders the crossword grid itself. DOT is graph-only and is
// skipped here.
func renderGrid(ctx context.Context, p *puzzle.Puzzle, format string, opts *renderOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)

	switch format {
	case "text":
		return []byte(render.Text(p, render.TextOptions{Solution: opts.solution})), nil
	case "svg":
		logger.Info("Rendering grid SVG")
		return render.SVG(p, render.SVGOptions{CellSize: opts.cellSize, Solution: opts.solution}), nil
	case "png":
		logger.Info("Rendering grid PNG")
		svg := render.SVG(p, render.SVGOptions{CellSize: opts.cellSize, Solution: opts.solution})
		return render.ToPNG(svg, defaultPNGScale)
	case "pdf":
		logger.Info("Rendering grid PDF")
		svg := render.SVG(p, render.SVGOptions{CellSize: opts.cellSize, Solution: opts.solution})
		return render.ToPDF(svg)
	case "dot":
		return nil, errSkipFormat
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// renderGraph renders the word-intersection graph using Graphviz. Text is
// grid-only and is skipped here.
func renderGraph(ctx context.Context, p *puzzle.Puzzle, format string) ([]byte, error) {
	logger := loggerFromContext(ctx)
	logger.Info("Generating intersection graph")
	dot := render.ToDOT(p)

	switch format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		logger.Info("Rendering graph SVG")
		return render.RenderSVG(dot)
	case "png":
		logger.Info("Rendering graph PNG")
		return render.RenderPNG(dot, defaultPNGScale)
	case "pdf":
		logger.Info("Rendering graph PDF")
		return render.RenderPDF(dot)
	case "text":
		return nil, errSkipFormat
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
