package textbuf

// AutoWrap rewraps the body line under the cursor when it exceeds
// BodyMaxLength, relocating the cursor across the split. Only the line at
// pos.Row is touched; wrapping never cascades onto following lines even
// when the split pushes content past the width again.
//
// Cursor relocation: a column within the first wrapped segment stays
// put. A column past it moves to the next row at
// col - len(first segment) - 1, the -1 accounting for the separator
// space that became a line break, clamped into the second segment.
//
// Returns the (possibly unchanged) document, the relocated cursor, and
// whether a rewrap happened.
func AutoWrap(doc Document, pos Position) (Document, Position, bool) {
	if !doc.IsBodyRow(pos.Row) {
		return doc, pos, false
	}
	line := doc[pos.Row]
	if lineLength(line) <= BodyMaxLength {
		return doc, pos, false
	}

	wrapped := WrapLine(line, BodyMaxLength)
	if len(wrapped) <= 1 {
		// A single overlong word wraps to itself; nothing to do.
		return doc, pos, false
	}

	out := make(Document, 0, len(doc)+len(wrapped)-1)
	out = append(out, doc[:pos.Row]...)
	out = append(out, wrapped...)
	out = append(out, doc[pos.Row+1:]...)

	cur := pos
	first := lineLength(wrapped[0])
	if pos.Col > first {
		col := pos.Col - first - 1
		col = min(max(col, 0), lineLength(wrapped[1]))
		cur = Position{Row: pos.Row + 1, Col: col}
	}
	return out, cur.Clamp(out), true
}
