package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Matches(t *testing.T) {
	k := DefaultKeyMap()

	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, k.Save))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlQ}, k.Quit))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlO}, k.SignOff))
	require.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, k.Quit))
}

func TestDefaultPromptKeyMap_Matches(t *testing.T) {
	k := DefaultPromptKeyMap()

	yes := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}
	yesUpper := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Y'}}
	no := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}
	esc := tea.KeyMsg{Type: tea.KeyEscape}

	require.True(t, key.Matches(yes, k.Confirm))
	require.True(t, key.Matches(yesUpper, k.Confirm))
	require.True(t, key.Matches(no, k.Discard))
	require.True(t, key.Matches(esc, k.Cancel))
}

func TestKeyMap_Help(t *testing.T) {
	k := DefaultKeyMap()

	require.Len(t, k.ShortHelp(), 3)
	require.Len(t, k.FullHelp(), 1)
	require.Equal(t, "^S", k.Save.Help().Key)
}
