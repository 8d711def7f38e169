package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/gridwright/gridwright/pkg/puzzle"
)

// ToDOT converts a puzzle to its word-intersection graph in Graphviz DOT
// format. Each placed word becomes a node labeled with its clue number,
// direction, and answer; each shared cell becomes an edge labeled with the
// shared letter. The resulting DOT string can be rendered with [RenderSVG],
// [RenderPNG], or [RenderPDF].
func ToDOT(p *puzzle.Puzzle) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, w := range p.Words {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID(w), nodeLabel(w))
	}

	buf.WriteString("\n")
	for _, e := range intersections(p) {
		fmt.Fprintf(&buf, "  %q -- %q [label=%q];\n", nodeID(e.a), nodeID(e.b), e.letter)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(w puzzle.PlacedWord) string {
	return fmt.Sprintf("%d-%s", w.Number, w.Direction)
}

func nodeLabel(w puzzle.PlacedWord) string {
	return fmt.Sprintf("%d %s\n%s", w.Number, w.Direction, w.Answer)
}

type edge struct {
	a, b   puzzle.PlacedWord
	letter string
}

// intersections lists each cell shared by two words, in reading order of
// the shared cell. Words in an edge keep their clue-number order.
func intersections(p *puzzle.Puzzle) []edge {
	occupant := make(map[puzzle.Coord]int)
	var edges []edge
	for i, w := range p.Words {
		for _, c := range w.Cells() {
			j, ok := occupant[c]
			if !ok {
				occupant[c] = i
				continue
			}
			edges = append(edges, edge{
				a:      p.Words[j],
				b:      p.Words[i],
				letter: string(p.At(c.Row, c.Col)),
			})
		}
	}
	return edges
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG header so the viewBox starts
// at the origin and the pixel size matches it. Graphviz emits point-based
// sizes that render at inconsistent scales across viewers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return ToPNG(svg, scale)
}
