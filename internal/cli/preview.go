package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gridwright/gridwright/pkg/puzzle"
	"github.com/gridwright/gridwright/pkg/puzzleio"
)

// newPreviewCmd creates the preview command for browsing a saved puzzle
// interactively in the terminal.
func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <puzzle.json>",
		Short: "Browse a puzzle interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(args[0])
		},
	}
}

func runPreview(input string) error {
	p, err := puzzleio.ImportJSON(input)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(newPreviewModel(p)).Run()
	return err
}

// Grid cell styles
var (
	previewBlockStyle  = lipgloss.NewStyle().Foreground(colorDim)
	previewLetterStyle = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	previewBlankStyle  = lipgloss.NewStyle().Foreground(colorGray)
	previewClueStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	previewCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// previewModel is the bubbletea model for the puzzle preview. It shows the
// grid beside the clue lists; the selected clue's word is revealed on the
// grid when solution mode is off.
type previewModel struct {
	puzzle   *puzzle.Puzzle
	cursor   int  // index into puzzle.Words
	solution bool // reveal all letters
}

func newPreviewModel(p *puzzle.Puzzle) previewModel {
	return previewModel{puzzle: p}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.puzzle.Words)-1 {
				m.cursor++
			}
		case "s":
			m.solution = !m.solution
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Puzzle Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ select clue  s toggle solution  q quit"))
	b.WriteString("\n\n")

	grid := m.renderGrid()
	clues := m.renderClues()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, grid, "   ", clues))
	b.WriteString("\n")

	return b.String()
}

// renderGrid draws the grid. In solution mode every letter shows; otherwise
// only the currently selected word is revealed.
func (m previewModel) renderGrid() string {
	revealed := make(map[puzzle.Coord]bool)
	if !m.solution && len(m.puzzle.Words) > 0 {
		for _, c := range m.puzzle.Words[m.cursor].Cells() {
			revealed[c] = true
		}
	}

	var b strings.Builder
	for row := range m.puzzle.Size {
		for col := range m.puzzle.Size {
			if col > 0 {
				b.WriteString(" ")
			}
			c := m.puzzle.At(row, col)
			switch {
			case c == puzzle.Empty:
				b.WriteString(previewBlockStyle.Render("·"))
			case m.solution:
				b.WriteString(previewLetterStyle.Render(string(c)))
			case revealed[puzzle.Coord{Row: row, Col: col}]:
				b.WriteString(previewCursorStyle.Render(string(c)))
			default:
				b.WriteString(previewBlankStyle.Render("_"))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m previewModel) renderClues() string {
	var b strings.Builder

	writeSection := func(heading string, words []puzzle.PlacedWord) {
		b.WriteString(StyleHighlight.Render(heading))
		b.WriteString("\n")
		for _, w := range words {
			line := fmt.Sprintf("%2d. %s (%d)", w.Number, w.Clue, len(w.Answer))
			if m.isSelected(w) {
				b.WriteString(previewCursorStyle.Render("▸ " + line))
			} else {
				b.WriteString(previewClueStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	writeSection("Across", m.puzzle.AcrossWords())
	b.WriteString("\n")
	writeSection("Down", m.puzzle.DownWords())

	return b.String()
}

func (m previewModel) isSelected(w puzzle.PlacedWord) bool {
	if len(m.puzzle.Words) == 0 {
		return false
	}
	sel := m.puzzle.Words[m.cursor]
	return sel.Number == w.Number && sel.Direction == w.Direction
}
