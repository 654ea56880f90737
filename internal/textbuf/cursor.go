package textbuf

// Position is a cursor location in a Document. Row is the line index and
// Col is a grapheme index within that line; Col == line length means the
// cursor sits after the last character.
type Position struct {
	Row int
	Col int
}

// Clamp returns the nearest valid position within doc. Row is clamped to
// [0, len(doc)-1] and Col to [0, length of that line]. Every buffer
// transform runs its result through Clamp so the cursor can never escape
// document bounds.
func (p Position) Clamp(doc Document) Position {
	if len(doc) == 0 {
		return Position{}
	}
	row := min(max(p.Row, 0), len(doc)-1)
	col := min(max(p.Col, 0), lineLength(doc[row]))
	return Position{Row: row, Col: col}
}
