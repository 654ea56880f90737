// Package app contains the root application model.
package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mprpic/commit-editor/internal/config"
	"github.com/mprpic/commit-editor/internal/keys"
	"github.com/mprpic/commit-editor/internal/log"
	"github.com/mprpic/commit-editor/internal/textbuf"
	"github.com/mprpic/commit-editor/internal/ui/editor"
	"github.com/mprpic/commit-editor/internal/ui/messagebar"
	"github.com/mprpic/commit-editor/internal/ui/statusbar"
	"github.com/mprpic/commit-editor/internal/watcher"
)

// state tracks which input mode the app is in.
type state int

const (
	stateEditing state = iota
	stateConfirmingQuit
)

// chrome rows below the editor: status bar and message bar.
const chromeHeight = 2

// editorChangedMsg is emitted by the editor whenever its content changes.
type editorChangedMsg struct {
	content string
}

// fileChangedMsg signals that the message file changed on disk.
type fileChangedMsg struct{}

// SignOffProvider resolves the Signed-off-by trailer for the current user.
type SignOffProvider interface {
	Trailer() string
}

// Config holds the dependencies for the root model.
type Config struct {
	// Path is the commit message file being edited.
	Path string

	// Content is the initial file content.
	Content string

	// Cfg is the loaded application configuration.
	Cfg config.Config

	// SignOff resolves the sign-off trailer. May be nil in tests.
	SignOff SignOffProvider
}

// Model is the root application state.
type Model struct {
	path    string
	cfg     config.Config
	signoff SignOffProvider

	editor     editor.Model
	statusbar  statusbar.Model
	messagebar messagebar.Model

	keymap       keys.KeyMap
	promptKeymap keys.PromptKeyMap
	state        state

	// original is the on-disk content in save-normalized form; the buffer
	// is dirty when its save form differs.
	original  string
	lastSave  time.Time
	width     int
	height    int

	watcherHandle *watcher.Watcher
	watchCh       <-chan struct{}
}

// New creates the root model. A file watcher is started when enabled in the
// configuration; watcher failures are ignored since the editor works fine
// without change notifications.
func New(cfg Config) Model {
	ed := editor.New(editor.Config{
		ShowLineNumbers: cfg.Cfg.UI.ShowLineNumbers,
		Placeholder:     cfg.Cfg.UI.Placeholder,
		DisableAutoWrap: !cfg.Cfg.UI.AutoWrap,
		OnChange:        func(content string) tea.Msg { return editorChangedMsg{content: content} },
	})
	ed.SetValue(cfg.Content)
	ed.Focus()

	var (
		watcherHandle *watcher.Watcher
		watchCh       <-chan struct{}
	)
	if cfg.Cfg.WatchFile && cfg.Path != "" {
		if w, err := watcher.New(watcher.DefaultConfig(cfg.Path)); err == nil {
			if ch, err := w.Start(); err == nil {
				watcherHandle = w
				watchCh = ch
			} else {
				_ = w.Stop()
			}
		}
	}

	m := Model{
		path:          cfg.Path,
		cfg:           cfg.Cfg,
		signoff:       cfg.SignOff,
		editor:        ed,
		statusbar:     statusbar.New(),
		messagebar:    messagebar.New(),
		keymap:        keys.DefaultKeyMap(),
		promptKeymap:  keys.DefaultPromptKeyMap(),
		original:      ed.SaveValue(),
		watcherHandle: watcherHandle,
		watchCh:       watchCh,
	}
	m.syncStatus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForFileChange()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetSize(msg.Width, max(msg.Height-chromeHeight, 1))
		m.statusbar.SetWidth(msg.Width)
		return m, nil

	case editorChangedMsg:
		log.Debug(log.CatBuffer, "content changed", "bytes", len(msg.content))
		m.syncStatus()
		return m, nil

	case fileChangedMsg:
		// Our own saves trip the watcher too; only warn about foreign writes.
		if time.Since(m.lastSave) > time.Second {
			log.Warn(log.CatWatcher, "message file changed on disk", "path", m.path)
			if !m.messagebar.Prompting() {
				m.messagebar.ShowError("Warning: file changed on disk")
			}
		}
		return m, m.waitForFileChange()

	case tea.KeyMsg:
		if m.state == stateConfirmingQuit {
			return m.updateConfirmingQuit(msg)
		}
		return m.updateEditing(msg)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.syncStatus()
	return m, cmd
}

// updateEditing handles keys in the normal editing state.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Transient messages clear on the next keypress.
	if m.messagebar.Showing() {
		m.messagebar.Clear()
	}

	switch {
	case key.Matches(msg, m.keymap.Save):
		m.save()
		return m, nil

	case key.Matches(msg, m.keymap.Quit), msg.Type == tea.KeyCtrlC:
		if !m.dirty() {
			return m, tea.Quit
		}
		m.state = stateConfirmingQuit
		m.editor.Blur()
		m.messagebar.ShowPrompt("Save changes? (y/n/esc)")
		m.statusbar.SetHints("y Save  n Discard  esc Cancel")
		return m, nil

	case key.Matches(msg, m.keymap.SignOff):
		return m.toggleSignOff()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.syncStatus()
	return m, cmd
}

// updateConfirmingQuit handles keys while the quit prompt is showing.
func (m Model) updateConfirmingQuit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.promptKeymap.Confirm):
		if m.save() {
			return m, tea.Quit
		}
		// Save failed; the error is showing, fall back to editing.
		m.exitPrompt()
		return m, nil

	case key.Matches(msg, m.promptKeymap.Discard):
		log.Info(log.CatUI, "quit without saving", "path", m.path)
		return m, tea.Quit

	case key.Matches(msg, m.promptKeymap.Cancel):
		m.exitPrompt()
		m.messagebar.Clear()
		return m, nil
	}

	// Any other key is ignored while the prompt is up.
	return m, nil
}

func (m *Model) exitPrompt() {
	m.state = stateEditing
	m.editor.Focus()
	m.statusbar.SetHints("^S Save  ^Q Quit  ^O Sign-off")
}

// save writes the normalized buffer to disk. Reports success.
func (m *Model) save() bool {
	content := m.editor.SaveValue()
	if err := os.WriteFile(m.path, []byte(content), 0644); err != nil {
		log.ErrorErr(log.CatUI, "save failed", err, "path", m.path)
		m.messagebar.ShowError(fmt.Sprintf("Error saving: %v", err))
		return false
	}

	m.original = content
	m.lastSave = time.Now()
	m.messagebar.ShowMessage("Saved " + m.path)
	m.syncStatus()
	log.Info(log.CatUI, "saved", "path", m.path, "bytes", len(content))
	return true
}

func (m Model) toggleSignOff() (tea.Model, tea.Cmd) {
	var trailer string
	if m.signoff != nil {
		trailer = m.signoff.Trailer()
	}

	cmd, err := m.editor.ToggleSignOff(trailer)
	if err != nil {
		if errors.Is(err, textbuf.ErrNoIdentity) {
			m.messagebar.ShowError("Git user not configured")
			return m, nil
		}
		m.messagebar.ShowError(err.Error())
		return m, nil
	}
	m.syncStatus()
	return m, cmd
}

// dirty reports whether the buffer differs from the file in save form.
func (m Model) dirty() bool {
	return m.editor.SaveValue() != m.original
}

// syncStatus pushes editor state into the status bar.
func (m *Model) syncStatus() {
	m.statusbar.SetCursor(m.editor.CursorPosition())
	m.statusbar.SetTitleLength(m.editor.TitleLength())
	m.statusbar.SetModified(m.dirty())
}

// waitForFileChange returns a command that blocks on the watcher channel.
func (m Model) waitForFileChange() tea.Cmd {
	ch := m.watchCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	body := m.editor.View()

	// Pin the status and message bars to the bottom of the screen.
	if m.height > 0 {
		rows := strings.Count(body, "\n") + 1
		if pad := m.height - chromeHeight - rows; pad > 0 {
			body += strings.Repeat("\n", pad)
		}
	}

	return body + "\n" + m.statusbar.View() + "\n" + m.messagebar.View()
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}
