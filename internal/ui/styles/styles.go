// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Main/primary text
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Empty-buffer placeholder

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Saved confirmation
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors, title overflow

	// Title overflow: characters past the 50-column guideline
	TitleOverflowColor = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"}

	// Line-number gutter
	GutterColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#585858"}

	// Status bar background
	StatusBarBgColor = lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#3A3A3A"}
)

var (
	// GutterStyle renders line numbers in the editor margin.
	GutterStyle = lipgloss.NewStyle().Foreground(GutterColor)

	// StatusBarStyle is the base style for the status line.
	StatusBarStyle = lipgloss.NewStyle().
			Background(StatusBarBgColor).
			Foreground(TextPrimaryColor).
			Padding(0, 1)

	// TitleCountWarningStyle highlights the title character count in the
	// status bar once it exceeds the guideline.
	TitleCountWarningStyle = lipgloss.NewStyle().Bold(true).Foreground(StatusErrorColor)

	// HintStyle renders the keybinding hints on the right of the status bar.
	HintStyle = lipgloss.NewStyle().Faint(true)

	// MessageInfoStyle and MessageErrorStyle render the message bar.
	MessageInfoStyle  = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	MessageErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)

	// PromptStyle renders the quit confirmation prompt.
	PromptStyle = lipgloss.NewStyle().Bold(true).Foreground(StatusWarningColor)

	// PlaceholderStyle renders placeholder text in an empty editor.
	PlaceholderStyle = lipgloss.NewStyle().Foreground(TextPlaceholderColor)
)

// TitleOverflowStyle layers the warning look on top of an existing span
// style: the original attributes are kept and the overflow color plus
// bold are applied over them.
func TitleOverflowStyle(base lipgloss.Style) lipgloss.Style {
	return base.Foreground(TitleOverflowColor).Bold(true)
}
