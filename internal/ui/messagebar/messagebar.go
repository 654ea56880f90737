// Package messagebar renders the transient message line at the bottom of
// the screen: save confirmations, errors, and the quit confirmation prompt.
package messagebar

import "github.com/mprpic/commit-editor/internal/ui/styles"

type kind int

const (
	kindNone kind = iota
	kindInfo
	kindError
	kindPrompt
)

// Model holds the message bar state.
type Model struct {
	kind kind
	text string
}

// New creates an empty message bar.
func New() Model {
	return Model{}
}

// ShowMessage displays an informational message.
func (m *Model) ShowMessage(text string) {
	m.kind = kindInfo
	m.text = text
}

// ShowError displays an error message.
func (m *Model) ShowError(text string) {
	m.kind = kindError
	m.text = text
}

// ShowPrompt displays a prompt awaiting a key response. Prompts stay up
// until answered; Clear is a no-op distinction left to the caller.
func (m *Model) ShowPrompt(text string) {
	m.kind = kindPrompt
	m.text = text
}

// Clear removes the current message.
func (m *Model) Clear() {
	m.kind = kindNone
	m.text = ""
}

// Showing reports whether anything is currently displayed.
func (m Model) Showing() bool {
	return m.kind != kindNone
}

// Prompting reports whether a prompt is awaiting a response.
func (m Model) Prompting() bool {
	return m.kind == kindPrompt
}

// View renders the message line, or "" when nothing is shown.
func (m Model) View() string {
	switch m.kind {
	case kindInfo:
		return styles.MessageInfoStyle.Render(m.text)
	case kindError:
		return styles.MessageErrorStyle.Render(m.text)
	case kindPrompt:
		return styles.PromptStyle.Render(m.text)
	default:
		return ""
	}
}
