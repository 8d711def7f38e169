// Package render produces human-facing output from a finished puzzle.
//
// Three renderers are provided:
//
//   - [Text] draws the grid with box characters and appends numbered
//     across/down clue lists, for terminal display.
//   - [SVG] produces a printable vector grid with clue numbers and optional
//     solution letters.
//   - [ToDOT] emits the puzzle's word-intersection graph (words as nodes;
//     an edge per shared cell) in Graphviz DOT format, with [RenderSVG] and
//     [RenderPNG] rasterizing it via Graphviz. The intersection graph is a
//     debugging view of the placement engine's connectivity.
package render
