package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mprpic/commit-editor/internal/textbuf"
)

// Config defines editor configuration with optional callbacks.
type Config struct {
	// ShowLineNumbers enables the line number gutter.
	ShowLineNumbers bool

	// Placeholder is the text shown when the buffer is empty and unfocused.
	Placeholder string

	// DisableAutoWrap turns off reflowing of body lines while typing.
	DisableAutoWrap bool

	// OnChange produces a custom message whenever the buffer content changes.
	// If nil, no message is emitted on content change.
	OnChange func(content string) tea.Msg
}

// Model holds the editor state. Content lives in a textbuf.Document and the
// cursor column is a grapheme index into the current line.
type Model struct {
	config Config

	doc    textbuf.Document
	cursor textbuf.Position

	// preferredCol is the column vertical movement aims for, so the cursor
	// snaps back out after passing through short lines.
	preferredCol int

	width    int
	height   int
	focused  bool
	readOnly bool

	scrollOffset int
}

// New creates an editor with the given configuration.
func New(cfg Config) Model {
	return Model{
		config: cfg,
		doc:    textbuf.Document{""},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m, cmd := m.handleKeyMsg(key)
		m.ensureCursorVisible()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		if m.readOnly {
			return m, nil
		}
		return m.insertText(string(msg.Runes))
	case tea.KeySpace:
		if m.readOnly {
			return m, nil
		}
		return m.insertText(" ")
	case tea.KeyEnter:
		if m.readOnly {
			return m, nil
		}
		return m.splitLine()
	case tea.KeyBackspace:
		if m.readOnly {
			return m, nil
		}
		return m.deleteBackward()
	case tea.KeyDelete:
		if m.readOnly {
			return m, nil
		}
		return m.deleteForward()
	case tea.KeyLeft:
		m.moveLeft()
	case tea.KeyRight:
		m.moveRight()
	case tea.KeyUp:
		m.moveVertical(-1)
	case tea.KeyDown:
		m.moveVertical(1)
	case tea.KeyHome, tea.KeyCtrlA:
		m.cursor.Col = 0
		m.preferredCol = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		m.cursor.Col = m.doc.LineLength(m.cursor.Row)
		m.preferredCol = m.cursor.Col
	}
	return m, nil
}

// insertText inserts text at the cursor and reflows the edited body line.
func (m Model) insertText(text string) (Model, tea.Cmd) {
	line := m.doc[m.cursor.Row]
	m.doc = append(textbuf.Document(nil), m.doc...)
	m.doc[m.cursor.Row] = InsertAtGrapheme(line, m.cursor.Col, text)
	m.cursor.Col += GraphemeCount(text)
	if !m.config.DisableAutoWrap {
		m.doc, m.cursor, _ = textbuf.AutoWrap(m.doc, m.cursor)
	}
	m.preferredCol = m.cursor.Col
	return m, m.emitChange()
}

func (m Model) splitLine() (Model, tea.Cmd) {
	line := m.doc[m.cursor.Row]
	at := GraphemeToByteOffset(line, m.cursor.Col)

	out := make(textbuf.Document, 0, len(m.doc)+1)
	out = append(out, m.doc[:m.cursor.Row]...)
	out = append(out, line[:at], line[at:])
	out = append(out, m.doc[m.cursor.Row+1:]...)

	m.doc = out
	m.cursor = textbuf.Position{Row: m.cursor.Row + 1, Col: 0}
	m.preferredCol = 0
	return m, m.emitChange()
}

func (m Model) deleteBackward() (Model, tea.Cmd) {
	switch {
	case m.cursor.Col > 0:
		m.doc = append(textbuf.Document(nil), m.doc...)
		m.doc[m.cursor.Row] = DeleteGraphemeRange(m.doc[m.cursor.Row], m.cursor.Col-1, m.cursor.Col)
		m.cursor.Col--
	case m.cursor.Row > 0:
		// Join with the previous line; the cursor lands at the seam.
		prevLen := m.doc.LineLength(m.cursor.Row - 1)
		out := append(textbuf.Document(nil), m.doc[:m.cursor.Row-1]...)
		out = append(out, m.doc[m.cursor.Row-1]+m.doc[m.cursor.Row])
		out = append(out, m.doc[m.cursor.Row+1:]...)
		m.doc = out
		m.cursor = textbuf.Position{Row: m.cursor.Row - 1, Col: prevLen}
	default:
		return m, nil
	}
	m.preferredCol = m.cursor.Col
	return m, m.emitChange()
}

func (m Model) deleteForward() (Model, tea.Cmd) {
	switch {
	case m.cursor.Col < m.doc.LineLength(m.cursor.Row):
		m.doc = append(textbuf.Document(nil), m.doc...)
		m.doc[m.cursor.Row] = DeleteGraphemeRange(m.doc[m.cursor.Row], m.cursor.Col, m.cursor.Col+1)
	case m.cursor.Row < len(m.doc)-1:
		out := append(textbuf.Document(nil), m.doc[:m.cursor.Row]...)
		out = append(out, m.doc[m.cursor.Row]+m.doc[m.cursor.Row+1])
		out = append(out, m.doc[m.cursor.Row+2:]...)
		m.doc = out
	default:
		return m, nil
	}
	return m, m.emitChange()
}

func (m *Model) moveLeft() {
	if m.cursor.Col > 0 {
		m.cursor.Col--
	} else if m.cursor.Row > 0 {
		m.cursor.Row--
		m.cursor.Col = m.doc.LineLength(m.cursor.Row)
	}
	m.preferredCol = m.cursor.Col
}

func (m *Model) moveRight() {
	if m.cursor.Col < m.doc.LineLength(m.cursor.Row) {
		m.cursor.Col++
	} else if m.cursor.Row < len(m.doc)-1 {
		m.cursor.Row++
		m.cursor.Col = 0
	}
	m.preferredCol = m.cursor.Col
}

func (m *Model) moveVertical(delta int) {
	row := m.cursor.Row + delta
	if row < 0 || row >= len(m.doc) {
		return
	}
	m.cursor = textbuf.Position{Row: row, Col: m.preferredCol}.Clamp(m.doc)
}

// ToggleSignOff adds or removes the sign-off trailer for the given identity.
func (m *Model) ToggleSignOff(trailer string) (tea.Cmd, error) {
	doc, cur, err := textbuf.ToggleTrailer(m.doc, m.cursor, trailer)
	if err != nil {
		return nil, err
	}
	m.doc = doc
	m.cursor = cur
	m.preferredCol = cur.Col
	m.ensureCursorVisible()
	return m.emitChange(), nil
}

func (m Model) emitChange() tea.Cmd {
	if m.config.OnChange == nil {
		return nil
	}
	content := m.doc.String()
	return func() tea.Msg {
		return m.config.OnChange(content)
	}
}

// Value returns the buffer content as a single string.
func (m Model) Value() string {
	return m.doc.String()
}

// SaveValue returns the buffer content normalized for writing to disk.
func (m Model) SaveValue() string {
	return m.doc.SaveString()
}

// SetValue replaces the buffer content and clamps the cursor into it.
func (m *Model) SetValue(content string) {
	m.doc = textbuf.FromString(content)
	m.cursor = m.cursor.Clamp(m.doc)
	m.preferredCol = m.cursor.Col
	m.ensureCursorVisible()
}

// Document returns the underlying line buffer.
func (m Model) Document() textbuf.Document {
	return m.doc
}

// CursorPosition returns the current cursor position.
func (m Model) CursorPosition() textbuf.Position {
	return m.cursor
}

// SetCursor moves the cursor, clamping it to the buffer.
func (m *Model) SetCursor(pos textbuf.Position) {
	m.cursor = pos.Clamp(m.doc)
	m.preferredCol = m.cursor.Col
	m.ensureCursorVisible()
}

// TitleLength returns the grapheme length of the title line.
func (m Model) TitleLength() int {
	return m.doc.TitleLength()
}

// Focus enables key handling and cursor display.
func (m *Model) Focus() {
	m.focused = true
}

// Blur disables key handling and cursor display.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the editor has focus.
func (m Model) Focused() bool {
	return m.focused
}

// SetReadOnly toggles read-only mode: navigation works, editing is ignored.
func (m *Model) SetReadOnly(readOnly bool) {
	m.readOnly = readOnly
}

// SetSize sets the visible area in terminal cells.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}
