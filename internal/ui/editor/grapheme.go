// Package editor provides the commit message editing component.
//
// Cursor columns are grapheme indices, not byte offsets: a combining
// sequence or emoji counts as one column even when it spans many bytes.
// Display width (terminal cells) is a third unit and only matters for
// rendering; the helpers in this file translate between all three.
package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// GraphemeCount returns the number of grapheme clusters in a string.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// GraphemeToByteOffset converts a grapheme index to a byte offset.
// Indexes at or past the end map to len(s); negative indexes map to 0.
func GraphemeToByteOffset(s string, graphemeIdx int) int {
	if graphemeIdx <= 0 {
		return 0
	}

	idx := 0
	state := -1
	original := s
	for len(s) > 0 {
		_, rest, _, newState := uniseg.StepString(s, state)
		idx++
		if idx == graphemeIdx {
			return len(original) - len(rest)
		}
		s = rest
		state = newState
	}
	return len(original)
}

// SliceByGraphemes returns the substring from grapheme index start to end
// (exclusive), like s[start:end] but grapheme-aware.
func SliceByGraphemes(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		return ""
	}

	startByte := GraphemeToByteOffset(s, start)
	endByte := GraphemeToByteOffset(s, end)
	if startByte >= len(s) {
		return ""
	}
	if endByte > len(s) {
		endByte = len(s)
	}
	return s[startByte:endByte]
}

// InsertAtGrapheme inserts text at the given grapheme index.
func InsertAtGrapheme(s string, graphemeIdx int, insert string) string {
	byteOffset := GraphemeToByteOffset(s, graphemeIdx)
	return s[:byteOffset] + insert + s[byteOffset:]
}

// DeleteGraphemeRange deletes grapheme clusters from start to end (exclusive).
func DeleteGraphemeRange(s string, start, end int) string {
	startByte := GraphemeToByteOffset(s, start)
	endByte := GraphemeToByteOffset(s, end)
	return s[:startByte] + s[endByte:]
}

// StringDisplayWidth returns the width of a string in terminal cells.
func StringDisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// GraphemeIterator iterates over the grapheme clusters of a string.
//
//	iter := NewGraphemeIterator(line)
//	for iter.Next() {
//	    _ = iter.Cluster()
//	}
type GraphemeIterator struct {
	original string
	rest     string
	state    int
	cluster  string
	index    int
	started  bool
}

// NewGraphemeIterator creates an iterator over the grapheme clusters in s.
func NewGraphemeIterator(s string) *GraphemeIterator {
	return &GraphemeIterator{
		original: s,
		rest:     s,
		state:    -1,
		index:    -1,
	}
}

// Next advances to the next grapheme cluster. Returns false when exhausted.
func (g *GraphemeIterator) Next() bool {
	if len(g.rest) == 0 {
		return false
	}

	if g.started {
		g.index++
	} else {
		g.index = 0
		g.started = true
	}

	cluster, rest, _, newState := uniseg.StepString(g.rest, g.state)
	g.cluster = cluster
	g.rest = rest
	g.state = newState
	return true
}

// Cluster returns the current grapheme cluster, or "" before the first Next.
func (g *GraphemeIterator) Cluster() string {
	return g.cluster
}

// Index returns the grapheme index of the current cluster (0-indexed),
// or -1 before the first Next.
func (g *GraphemeIterator) Index() int {
	return g.index
}
