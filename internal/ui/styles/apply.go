package styles

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorToken names a themeable color in the palette.
type ColorToken string

const (
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"
	TokenStatusSuccess   ColorToken = "status.success"
	TokenStatusWarning   ColorToken = "status.warning"
	TokenStatusError     ColorToken = "status.error"
	TokenTitleOverflow   ColorToken = "title.overflow"
	TokenGutter          ColorToken = "gutter"
	TokenStatusBarBg     ColorToken = "statusbar.bg"
)

// AllTokens returns every valid color token.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextMuted,
		TokenTextPlaceholder,
		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,
		TokenTitleOverflow,
		TokenGutter,
		TokenStatusBarBg,
	}
}

// ApplyTheme overrides palette colors from configuration and rebuilds the
// derived styles. Unknown tokens and malformed hex values are errors; an
// empty map is a no-op.
func ApplyTheme(colors map[string]string) error {
	for name, value := range colors {
		token := ColorToken(name)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", name)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", name, value)
		}
		applyColor(token, value)
	}

	rebuildStyles()
	return nil
}

func applyColor(token ColorToken, hex string) {
	// Overrides use the same color in both light and dark mode.
	c := lipgloss.AdaptiveColor{Light: hex, Dark: hex}

	switch token {
	case TokenTextPrimary:
		TextPrimaryColor = c
	case TokenTextMuted:
		TextMutedColor = c
	case TokenTextPlaceholder:
		TextPlaceholderColor = c
	case TokenStatusSuccess:
		StatusSuccessColor = c
	case TokenStatusWarning:
		StatusWarningColor = c
	case TokenStatusError:
		StatusErrorColor = c
	case TokenTitleOverflow:
		TitleOverflowColor = c
	case TokenGutter:
		GutterColor = c
	case TokenStatusBarBg:
		StatusBarBgColor = c
	}
}

// rebuildStyles recreates the Style objects with updated colors, since
// lipgloss.Style captures colors at creation time.
func rebuildStyles() {
	GutterStyle = lipgloss.NewStyle().Foreground(GutterColor)

	StatusBarStyle = lipgloss.NewStyle().
		Background(StatusBarBgColor).
		Foreground(TextPrimaryColor).
		Padding(0, 1)

	TitleCountWarningStyle = lipgloss.NewStyle().Bold(true).Foreground(StatusErrorColor)

	MessageInfoStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	MessageErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)

	PromptStyle = lipgloss.NewStyle().Bold(true).Foreground(StatusWarningColor)

	PlaceholderStyle = lipgloss.NewStyle().Foreground(TextPlaceholderColor)
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
