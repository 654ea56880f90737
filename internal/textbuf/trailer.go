package textbuf

import (
	"errors"
	"strings"
)

// TrailerPrefix marks a Signed-off-by attribution line.
const TrailerPrefix = "Signed-off-by:"

// ErrNoIdentity indicates the trailer text is unavailable because git
// user.name or user.email is not configured. The document is never
// modified when this is returned.
var ErrNoIdentity = errors.New("git user not configured")

// ToggleTrailer inserts or removes the Signed-off-by trailer.
//
// The document is split at the comment block (see CommentStart). Within
// the content half, trailing blank lines are trimmed, then the lines are
// scanned bottom-up: a trailer found before any other non-blank content
// line is removed; otherwise the trailer is appended as the last content
// line, preceded by one blank line when the content doesn't already end
// blank. Reassembly joins content and comment block with exactly one
// blank line of separation, regardless of how many existed before.
//
// The operation is atomic: on error the input document is returned
// untouched, on success a fresh document replaces it wholesale. The
// cursor is clamped into the result rather than tracked exactly.
func ToggleTrailer(doc Document, pos Position, trailer string) (Document, Position, error) {
	if trailer == "" {
		return doc, pos, ErrNoIdentity
	}

	split := doc.CommentStart()
	content := append(Document(nil), doc[:split]...)
	comments := doc[split:]

	content = trimTrailingBlank(content)

	// Look for a removable trailer: scanning from the bottom, stop at the
	// first non-blank, non-comment line.
	trailerAt := -1
	for i := len(content) - 1; i >= 0; i-- {
		line := content[i]
		if strings.HasPrefix(line, TrailerPrefix) {
			trailerAt = i
			break
		}
		if strings.TrimSpace(line) != "" && !strings.HasPrefix(line, "#") {
			break
		}
	}

	if trailerAt >= 0 {
		content = append(content[:trailerAt], content[trailerAt+1:]...)
		content = trimTrailingBlank(content)
	} else {
		if len(content) > 0 && strings.TrimSpace(content[len(content)-1]) != "" {
			content = append(content, "")
		}
		content = append(content, trailer)
	}

	var out Document
	if len(comments) > 0 {
		out = make(Document, 0, len(content)+1+len(comments))
		out = append(out, content...)
		out = append(out, "")
		out = append(out, comments...)
	} else {
		out = content
	}
	if len(out) == 0 {
		out = Document{""}
	}

	return out, pos.Clamp(out), nil
}
