// Package statusbar renders the single status line under the editor:
// cursor position, title length, modified flag, and keybinding hints.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/mprpic/commit-editor/internal/textbuf"
	"github.com/mprpic/commit-editor/internal/ui/styles"
)

const defaultHints = "^S Save  ^Q Quit  ^O Sign-off"

// Model holds the status bar state.
type Model struct {
	width       int
	cursor      textbuf.Position
	titleLength int
	modified    bool
	hints       string
}

// New creates a status bar with the default hint text.
func New() Model {
	return Model{hints: defaultHints}
}

// SetWidth sets the bar width in terminal cells.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetCursor updates the displayed cursor position.
func (m *Model) SetCursor(pos textbuf.Position) {
	m.cursor = pos
}

// SetTitleLength updates the displayed title character count.
func (m *Model) SetTitleLength(n int) {
	m.titleLength = n
}

// SetModified toggles the unsaved-changes indicator.
func (m *Model) SetModified(modified bool) {
	m.modified = modified
}

// SetHints replaces the keybinding hint text.
func (m *Model) SetHints(hints string) {
	m.hints = hints
}

// View renders the status line. Hints are right-aligned and dropped first
// when the terminal is too narrow; the left side is then truncated.
func (m Model) View() string {
	count := fmt.Sprintf("%d", m.titleLength)
	if m.titleLength > textbuf.TitleMaxLength {
		count = styles.TitleCountWarningStyle.Render(count)
	}

	left := fmt.Sprintf("Ln %d, Col %d | Title: ", m.cursor.Row+1, m.cursor.Col+1) + count
	if m.modified {
		left += " [modified]"
	}

	// Inner width excludes the style's horizontal padding.
	inner := max(m.width-2, 0)

	hints := styles.HintStyle.Render(m.hints)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(hints)

	line := left
	if gap >= 2 {
		line = left + strings.Repeat(" ", gap) + hints
	} else if lipgloss.Width(left) > inner && inner > 0 {
		line = truncate.StringWithTail(left, uint(inner), "…")
	}

	return styles.StatusBarStyle.Render(line)
}
