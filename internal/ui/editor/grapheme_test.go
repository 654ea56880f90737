package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGraphemeCount(t *testing.T) {
	require.Equal(t, 0, GraphemeCount(""))
	require.Equal(t, 5, GraphemeCount("hello"))
	require.Equal(t, 5, GraphemeCount("héllo"))
	require.Equal(t, 1, GraphemeCount("👨‍👩‍👧‍👦"))
}

func TestGraphemeToByteOffset(t *testing.T) {
	require.Equal(t, 0, GraphemeToByteOffset("hello", 0))
	require.Equal(t, 0, GraphemeToByteOffset("hello", -1))
	require.Equal(t, 3, GraphemeToByteOffset("hello", 3))
	require.Equal(t, 5, GraphemeToByteOffset("hello", 99))
	// "é" as e + combining accent is one grapheme, three bytes.
	require.Equal(t, 3, GraphemeToByteOffset("éx", 1))
}

func TestSliceByGraphemes(t *testing.T) {
	require.Equal(t, "ell", SliceByGraphemes("hello", 1, 4))
	require.Equal(t, "", SliceByGraphemes("hello", 3, 2))
	require.Equal(t, "hello", SliceByGraphemes("hello", 0, 99))
	require.Equal(t, "", SliceByGraphemes("hello", 9, 12))
	require.Equal(t, "👍", SliceByGraphemes("a👍b", 1, 2))
}

func TestInsertAtGrapheme(t *testing.T) {
	require.Equal(t, "heXllo", InsertAtGrapheme("hello", 2, "X"))
	require.Equal(t, "Xhello", InsertAtGrapheme("hello", 0, "X"))
	require.Equal(t, "helloX", InsertAtGrapheme("hello", 9, "X"))
	require.Equal(t, "👍X👎", InsertAtGrapheme("👍👎", 1, "X"))
}

func TestDeleteGraphemeRange(t *testing.T) {
	require.Equal(t, "hlo", DeleteGraphemeRange("hello", 1, 3))
	require.Equal(t, "hello", DeleteGraphemeRange("hello", 3, 3))
	require.Equal(t, "ab", DeleteGraphemeRange("a👍b", 1, 2))
}

func TestGraphemeIterator(t *testing.T) {
	iter := NewGraphemeIterator("a👍b")

	require.Equal(t, -1, iter.Index())
	require.True(t, iter.Next())
	require.Equal(t, "a", iter.Cluster())
	require.Equal(t, 0, iter.Index())
	require.True(t, iter.Next())
	require.Equal(t, "👍", iter.Cluster())
	require.True(t, iter.Next())
	require.Equal(t, "b", iter.Cluster())
	require.Equal(t, 2, iter.Index())
	require.False(t, iter.Next())
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-zé👍 ]{0,20}`).Draw(t, "s")
		n := GraphemeCount(s)
		idx := rapid.IntRange(0, n).Draw(t, "idx")
		text := rapid.StringMatching(`[a-z]{1,5}`).Draw(t, "text")

		inserted := InsertAtGrapheme(s, idx, text)
		restored := DeleteGraphemeRange(inserted, idx, idx+GraphemeCount(text))
		require.Equal(t, s, restored)
	})
}
