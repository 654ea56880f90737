package textbuf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestWrapLine_ShortLineNoWrap(t *testing.T) {
	result := WrapLine("This is a short line", 72)
	require.Equal(t, []string{"This is a short line"}, result)
}

func TestWrapLine_EmptyInput(t *testing.T) {
	require.Equal(t, []string{""}, WrapLine("", 72))
}

func TestWrapLine_ExactLength(t *testing.T) {
	line := strings.Repeat("a", 72)
	require.Equal(t, []string{line}, WrapLine(line, 72))
}

func TestWrapLine_WrapAtWordBoundary(t *testing.T) {
	line := "The quick brown fox jumps over the lazy dog and continues running"
	result := WrapLine(line, 40)

	require.Equal(t, []string{
		"The quick brown fox jumps over the lazy",
		"dog and continues running",
	}, result)
}

func TestWrapLine_VeryLongWordUnbroken(t *testing.T) {
	line := strings.Repeat("a", 100)
	require.Equal(t, []string{line}, WrapLine(line, 72))
}

func TestWrapLine_LongWordWithSurroundingText(t *testing.T) {
	url := "https://example.com/" + strings.Repeat("a", 80)
	result := WrapLine("See "+url+" for details", 72)
	require.Equal(t, []string{"See", url, "for details"}, result)
}

func TestWrapLine_MultipleWraps(t *testing.T) {
	line := strings.TrimSpace(strings.Repeat("word ", 30))
	result := WrapLine(line, 20)

	require.Greater(t, len(result), 1)
	for _, seg := range result {
		require.LessOrEqual(t, len(seg), 20)
	}
}

func TestWrapLine_ConsecutiveSpacesCollapse(t *testing.T) {
	line := "alpha   beta  " + strings.Repeat("c", 70)
	result := WrapLine(line, 20)
	require.Equal(t, []string{"alpha beta", strings.Repeat("c", 70)}, result)
}

func TestWrapLine_OnlySpaces(t *testing.T) {
	result := WrapLine(strings.Repeat(" ", 80), 72)
	require.Equal(t, []string{""}, result)
}

// ============================================================================
// Properties
// ============================================================================

func wrappableLine(t *rapid.T) (string, int) {
	words := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,10}`), 1, 30).Draw(t, "words")
	width := rapid.IntRange(10, 80).Draw(t, "width")
	return strings.Join(words, " "), width
}

func TestWrapLine_SegmentsWithinWidth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line, width := wrappableLine(t)
		for _, seg := range WrapLine(line, width) {
			// No generated word exceeds the width, so every segment fits.
			require.LessOrEqual(t, lineLength(seg), width)
		}
	})
}

func TestWrapLine_NeverBreaksWords(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line, width := wrappableLine(t)
		original := map[string]bool{}
		for _, w := range strings.Fields(line) {
			original[w] = true
		}
		for _, seg := range WrapLine(line, width) {
			for _, w := range strings.Fields(seg) {
				require.True(t, original[w], "word %q not in input", w)
			}
		}
	})
}

func TestWrapLine_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line, width := wrappableLine(t)
		once := WrapLine(line, width)
		again := WrapLine(strings.Join(once, " "), width)
		require.Equal(t, once, again)
	})
}

func TestWrapLine_AlwaysNonEmptyResult(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := rapid.StringMatching(`[a-z ]{0,120}`).Draw(t, "line")
		width := rapid.IntRange(1, 80).Draw(t, "width")
		require.NotEmpty(t, WrapLine(line, width))
	})
}
