// Package textbuf implements the commit message buffer model: an ordered
// line sequence with title/body/comment regions, word wrapping, body
// auto-wrap, and the Signed-off-by trailer transform.
//
// All column values are grapheme indices (the nth visible character), not
// byte offsets, so cursor math stays consistent with the editor component.
package textbuf

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Formatting limits for git commit messages.
const (
	// TitleMaxLength is the conventional maximum title length. Characters
	// beyond it are highlighted, never rejected.
	TitleMaxLength = 50

	// BodyMaxLength is the wrap width for body lines.
	BodyMaxLength = 72
)

// Document is an ordered sequence of text lines. Line 0 is the title,
// line 1 is by convention a blank separator, lines 2+ are the body, and a
// trailing run of lines starting with "#" is the git comment block.
// A Document always holds at least one line.
type Document []string

// FromString splits raw file content into a Document. Empty or missing
// content yields a single-line empty document.
func FromString(s string) Document {
	if s == "" {
		return Document{""}
	}
	return Document(strings.Split(s, "\n"))
}

// String joins the lines back into a single string with newline separators.
func (d Document) String() string {
	return strings.Join(d, "\n")
}

// SaveString returns the document in its persisted form: trailing
// whitespace stripped from every line and exactly one final newline, no
// matter how many blank lines the buffer ends with.
func (d Document) SaveString() string {
	lines := make([]string, len(d))
	for i, line := range d {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}

// Title returns the first line.
func (d Document) Title() string {
	if len(d) == 0 {
		return ""
	}
	return d[0]
}

// TitleLength returns the title length in graphemes.
func (d Document) TitleLength() int {
	return lineLength(d.Title())
}

// IsBodyRow reports whether row is a body line: at or below line index 2
// and within bounds. The title and the blank separator are never body.
func (d Document) IsBodyRow(row int) bool {
	return row >= 2 && row < len(d)
}

// CommentStart returns the index of the first line starting with "#".
// That line and everything after it is the comment block, even if
// non-comment content reappears further down; lines past the first match
// are not re-scanned. Returns len(d) when no comment line exists.
func (d Document) CommentStart() int {
	for i, line := range d {
		if strings.HasPrefix(line, "#") {
			return i
		}
	}
	return len(d)
}

// LineLength returns the grapheme length of the line at row, or 0 when
// row is out of bounds.
func (d Document) LineLength(row int) int {
	if row < 0 || row >= len(d) {
		return 0
	}
	return lineLength(d[row])
}

// lineLength measures a line in grapheme clusters.
func lineLength(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// trimTrailingBlank drops trailing lines that are empty after trimming
// whitespace. The input slice is not modified past the returned length.
func trimTrailingBlank(lines Document) Document {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
