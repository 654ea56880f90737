package editor

import (
	"fmt"
	"strings"

	"github.com/mprpic/commit-editor/internal/textbuf"
	"github.com/mprpic/commit-editor/internal/ui/styles"
)

// Cursor uses reverse video so it stays visible over any span style.
const (
	cursorOn  = "\x1b[7m"  // reverse video on
	cursorOff = "\x1b[27m" // reverse video off (not full reset)
)

// View renders the buffer with gutter, title overflow marker, and cursor.
// This implements the tea.Model View interface.
func (m Model) View() string {
	if m.isEmpty() {
		return m.renderEmpty()
	}

	gutterWidth := len(fmt.Sprintf("%d", len(m.doc)))

	last := len(m.doc)
	if m.height > 0 && m.scrollOffset+m.height < last {
		last = m.scrollOffset + m.height
	}

	lines := make([]string, 0, last-m.scrollOffset)
	for row := m.scrollOffset; row < last; row++ {
		lines = append(lines, m.renderRow(row, gutterWidth))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(row, gutterWidth int) string {
	// The gutter travels through the overflow marker as a decoration span;
	// the marker locates the title within the sequence by its text.
	var spans []Span
	cursorCol := m.cursor.Col
	if m.config.ShowLineNumbers {
		gutter := fmt.Sprintf("%*d ", gutterWidth, row+1)
		spans = append(spans, Span{Text: gutter, Style: styles.GutterStyle})
		cursorCol += GraphemeCount(gutter)
	}
	spans = append(spans, Span{Text: m.doc[row]})
	if row == 0 {
		spans = MarkTitleOverflow(spans, m.doc[0], textbuf.TitleMaxLength)
	}

	showCursor := m.focused && row == m.cursor.Row
	return renderSpans(spans, cursorCol, showCursor)
}

// renderSpans renders a row of spans, overlaying the reverse-video cursor on
// the grapheme at cursorCol. A cursor at or past the end of the row renders
// as a highlighted space.
func renderSpans(spans []Span, cursorCol int, showCursor bool) string {
	var b strings.Builder
	idx := 0
	for _, sp := range spans {
		if sp.Text == "" {
			continue
		}
		n := GraphemeCount(sp.Text)
		if !showCursor || cursorCol < idx || cursorCol >= idx+n {
			b.WriteString(sp.Style.Render(sp.Text))
			idx += n
			continue
		}

		// Cursor falls inside this span; split around the cluster under it.
		at := cursorCol - idx
		if before := SliceByGraphemes(sp.Text, 0, at); before != "" {
			b.WriteString(sp.Style.Render(before))
		}
		b.WriteString(cursorOn)
		b.WriteString(SliceByGraphemes(sp.Text, at, at+1))
		b.WriteString(cursorOff)
		if after := SliceByGraphemes(sp.Text, at+1, n); after != "" {
			b.WriteString(sp.Style.Render(after))
		}
		idx += n
	}

	if showCursor && cursorCol >= idx {
		b.WriteString(cursorOn + " " + cursorOff)
	}
	return b.String()
}

// renderEmpty renders the view when the buffer holds a single empty line.
func (m Model) renderEmpty() string {
	if m.focused {
		return cursorOn + " " + cursorOff
	}
	if m.config.Placeholder != "" {
		return styles.PlaceholderStyle.Render(m.config.Placeholder)
	}
	return ""
}

func (m Model) isEmpty() bool {
	return len(m.doc) == 1 && m.doc[0] == ""
}

// ensureCursorVisible adjusts scrollOffset so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	if m.height <= 0 {
		m.scrollOffset = 0
		return
	}

	m.scrollOffset = min(m.scrollOffset, m.cursor.Row)
	if m.cursor.Row >= m.scrollOffset+m.height {
		m.scrollOffset = m.cursor.Row - m.height + 1
	}

	maxOffset := max(len(m.doc)-m.height, 0)
	m.scrollOffset = min(m.scrollOffset, maxOffset)
	m.scrollOffset = max(m.scrollOffset, 0)
}

// ScrollOffset returns the first visible row.
func (m Model) ScrollOffset() int {
	return m.scrollOffset
}
