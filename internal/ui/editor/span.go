package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mprpic/commit-editor/internal/ui/styles"
)

// Span is a run of text rendered with a single style. A logical line is a
// sequence of spans; overlays like the title overflow marker split spans
// rather than re-rendering the whole line.
type Span struct {
	Text  string
	Style lipgloss.Style
}

// MarkTitleOverflow layers the overflow warning onto the spans of the title
// line: every title grapheme past limit keeps its span's attributes but gets
// the warning color on top. The span sequence may start with decoration such
// as a line number gutter, so the title's position is located by matching
// the known title text rather than assumed to start at the first span.
// Spans are split at the limit boundary when it falls inside one. Titles at
// or under the limit come back unchanged.
func MarkTitleOverflow(spans []Span, title string, limit int) []Span {
	if GraphemeCount(title) <= limit {
		return spans
	}

	boundary := titleStart(spans, title) + limit
	out := make([]Span, 0, len(spans)+1)
	idx := 0
	for _, sp := range spans {
		n := GraphemeCount(sp.Text)
		switch {
		case idx+n <= boundary:
			// Entirely before the boundary.
			out = append(out, sp)
		case idx >= boundary:
			// Entirely past the boundary.
			out = append(out, Span{Text: sp.Text, Style: styles.TitleOverflowStyle(sp.Style)})
		default:
			// Boundary falls inside this span; split it.
			cut := boundary - idx
			out = append(out,
				Span{Text: SliceByGraphemes(sp.Text, 0, cut), Style: sp.Style},
				Span{Text: SliceByGraphemes(sp.Text, cut, n), Style: styles.TitleOverflowStyle(sp.Style)},
			)
		}
		idx += n
	}
	return out
}

// titleStart returns the grapheme offset at which the title text begins
// within the concatenated span sequence. The title is the trailing content
// of the line, so the last occurrence wins when the decoration happens to
// contain the same text.
func titleStart(spans []Span, title string) int {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	joined := b.String()

	off := strings.LastIndex(joined, title)
	if off <= 0 {
		return 0
	}
	return GraphemeCount(joined[:off])
}
