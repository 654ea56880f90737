package textbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp_WithinBounds(t *testing.T) {
	doc := FromString("Title\n\nBody")
	require.Equal(t, Position{Row: 2, Col: 4}, Position{Row: 2, Col: 4}.Clamp(doc))
}

func TestClamp_RowPastEnd(t *testing.T) {
	doc := FromString("Title\n\nBody")
	require.Equal(t, Position{Row: 2, Col: 4}, Position{Row: 9, Col: 4}.Clamp(doc))
}

func TestClamp_ColPastLineEnd(t *testing.T) {
	doc := FromString("Title\n\nBody")
	require.Equal(t, Position{Row: 0, Col: 5}, Position{Row: 0, Col: 50}.Clamp(doc))
}

func TestClamp_Negative(t *testing.T) {
	doc := FromString("Title")
	require.Equal(t, Position{}, Position{Row: -3, Col: -1}.Clamp(doc))
}

func TestClamp_ColAtLineEndIsValid(t *testing.T) {
	// Col == line length is the insert position after the last character.
	doc := FromString("Title")
	require.Equal(t, Position{Row: 0, Col: 5}, Position{Row: 0, Col: 5}.Clamp(doc))
}

func TestClamp_EmptyDocument(t *testing.T) {
	require.Equal(t, Position{}, Position{Row: 4, Col: 4}.Clamp(Document{}))
}
