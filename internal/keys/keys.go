// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the editing screen.
type KeyMap struct {
	Save    key.Binding
	Quit    key.Binding
	SignOff key.Binding
}

// DefaultKeyMap returns the default editing keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^S", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("^Q", "quit"),
		),
		SignOff: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("^O", "sign-off"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Quit, k.SignOff}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Save, k.Quit, k.SignOff}}
}

// PromptKeyMap defines the keybindings while the quit confirmation prompt
// is showing.
type PromptKeyMap struct {
	Confirm key.Binding
	Discard key.Binding
	Cancel  key.Binding
}

// DefaultPromptKeyMap returns the default prompt keybindings.
func DefaultPromptKeyMap() PromptKeyMap {
	return PromptKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "save and quit"),
		),
		Discard: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "discard and quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "keep editing"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k PromptKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Discard, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k PromptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Discard, k.Cancel}}
}
