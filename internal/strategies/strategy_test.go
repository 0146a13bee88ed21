package strategies

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnippet_WholeTextWhenShort(t *testing.T) {
	text := "We need Python here"
	got := Snippet(text, 8, 14, 80)
	assert.Equal(t, text, got)
}

func TestSnippet_EllipsisWhenTruncated(t *testing.T) {
	text := strings.Repeat("a", 50) + " Python " + strings.Repeat("b", 50)
	got := Snippet(text, 51, 57, 10)

	assert.True(t, strings.HasPrefix(got, "..."))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Contains(t, got, "Python")
}

func TestSnippet_RespectsRuneBoundaries(t *testing.T) {
	text := "ééééé Python ééééé"
	got := Snippet(text, strings.Index(text, "Python"), strings.Index(text, "Python")+6, 3)
	assert.Contains(t, got, "Python")
	// Must still be valid UTF-8 after boundary adjustment.
	assert.True(t, strings.ToValidUTF8(got, "") == got)
}

func TestSnippetFor_CaseInsensitiveLookup(t *testing.T) {
	got := snippetFor("we write PYTHON all day", "Python", 80)
	assert.Contains(t, got, "PYTHON")
}

func TestSnippetFor_MissingSpanReturnsSpan(t *testing.T) {
	assert.Equal(t, "Haskell", snippetFor("nothing here", "Haskell", 80))
}
