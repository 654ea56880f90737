package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyTheme_Empty(t *testing.T) {
	require.NoError(t, ApplyTheme(nil))
	require.NoError(t, ApplyTheme(map[string]string{}))
}

func TestApplyTheme_ColorOverride(t *testing.T) {
	orig := StatusWarningColor
	defer func() {
		StatusWarningColor = orig
		rebuildStyles()
	}()

	require.NoError(t, ApplyTheme(map[string]string{
		"status.warning": "#FFAA00",
	}))

	require.Equal(t, "#FFAA00", StatusWarningColor.Light)
	require.Equal(t, "#FFAA00", StatusWarningColor.Dark)
}

func TestApplyTheme_RebuildsDerivedStyles(t *testing.T) {
	orig := StatusErrorColor
	defer func() {
		StatusErrorColor = orig
		rebuildStyles()
	}()

	require.NoError(t, ApplyTheme(map[string]string{
		"status.error": "#123456",
	}))

	require.Equal(t, StatusErrorColor, TitleCountWarningStyle.GetForeground())
	require.Equal(t, StatusErrorColor, MessageErrorStyle.GetForeground())
}

func TestApplyTheme_UnknownToken(t *testing.T) {
	err := ApplyTheme(map[string]string{"board.highlight": "#FFFFFF"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown color token")
}

func TestApplyTheme_InvalidHexColor(t *testing.T) {
	tests := []string{"FFAA00", "#FFAA0", "#GGGGGG", "", "#"}
	for _, c := range tests {
		err := ApplyTheme(map[string]string{"status.warning": c})
		require.Error(t, err, "color %q", c)
		require.Contains(t, err.Error(), "invalid hex color")
	}
}

func TestAllTokens_Valid(t *testing.T) {
	for _, token := range AllTokens() {
		require.True(t, isValidToken(token))
	}
}
