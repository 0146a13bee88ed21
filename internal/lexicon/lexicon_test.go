package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

func testEntries() []types.LexiconEntry {
	return []types.LexiconEntry{
		{Category: types.CategoryProgrammingLanguages, Skills: []string{"Python", "Go", "Java", "JavaScript"}},
		{Category: types.CategoryDevOpsTools, Skills: []string{"Docker", "Kubernetes"}},
		{Category: types.CategoryDataTools, Skills: []string{"machine learning"}},
	}
}

func TestNewIndex_EmptyLexiconRejected(t *testing.T) {
	_, err := NewIndex(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lexicon is empty")

	_, err = NewIndex([]types.LexiconEntry{{Category: "x", Skills: []string{" "}}})
	assert.Error(t, err)
}

func TestIndex_FindAll(t *testing.T) {
	ix, err := NewIndex(testEntries())
	require.NoError(t, err)

	matches := ix.FindAll("Strong Python and Docker experience.")
	require.Len(t, matches, 2)

	assert.Equal(t, "Python", matches[0].CanonicalName)
	assert.Equal(t, types.CategoryProgrammingLanguages, matches[0].Category)
	assert.Equal(t, "Python", matches[0].Surface)
	assert.Equal(t, "Docker", matches[1].CanonicalName)
}

func TestIndex_FindAllCaseInsensitive(t *testing.T) {
	ix, err := NewIndex(testEntries())
	require.NoError(t, err)

	matches := ix.FindAll("we love PYTHON and kubernetes")
	require.Len(t, matches, 2)
	assert.Equal(t, "Python", matches[0].CanonicalName)
	assert.Equal(t, "PYTHON", matches[0].Surface)
	assert.Equal(t, "Kubernetes", matches[1].CanonicalName)
}

func TestIndex_FindAllWordBoundaries(t *testing.T) {
	ix, err := NewIndex(testEntries())
	require.NoError(t, err)

	// "Go" inside "Google" and "Java" inside "JavaScript" must not match.
	matches := ix.FindAll("Google engineers write JavaScript")
	require.Len(t, matches, 1)
	assert.Equal(t, "JavaScript", matches[0].CanonicalName)
}

func TestIndex_FindAllMultiWordPhrase(t *testing.T) {
	ix, err := NewIndex(testEntries())
	require.NoError(t, err)

	matches := ix.FindAll("Background in machine learning required")
	require.Len(t, matches, 1)
	assert.Equal(t, "machine learning", matches[0].CanonicalName)
	assert.Equal(t, types.CategoryDataTools, matches[0].Category)
}

func TestIndex_Lookup(t *testing.T) {
	ix, err := NewIndex(testEntries())
	require.NoError(t, err)

	canonical, category, ok := ix.Lookup("  python ")
	require.True(t, ok)
	assert.Equal(t, "Python", canonical)
	assert.Equal(t, types.CategoryProgrammingLanguages, category)

	_, _, ok = ix.Lookup("COBOL")
	assert.False(t, ok)
}

func TestIndex_NamesSorted(t *testing.T) {
	ix, err := NewIndex(testEntries())
	require.NoError(t, err)

	names := ix.Names()
	assert.Len(t, names, ix.Size())
	assert.IsIncreasing(t, names)
}

func TestAliasIndex_Resolve(t *testing.T) {
	ai := NewAliasIndex([]types.AliasEntry{
		{Alias: "K8s", CanonicalName: "Kubernetes", Category: types.CategoryDevOpsTools},
		{Alias: "JS", CanonicalName: "JavaScript", Category: types.CategoryProgrammingLanguages},
	})

	canonical, category, ok := ai.Resolve("k8s")
	require.True(t, ok)
	assert.Equal(t, "Kubernetes", canonical)
	assert.Equal(t, types.CategoryDevOpsTools, category)

	_, _, ok = ai.Resolve("Rust")
	assert.False(t, ok)
}

func TestAliasIndex_FindAll(t *testing.T) {
	ai := NewAliasIndex([]types.AliasEntry{
		{Alias: "K8s", CanonicalName: "Kubernetes", Category: types.CategoryDevOpsTools},
	})

	matches := ai.FindAll("Deploy with K8s daily")
	require.Len(t, matches, 1)
	assert.Equal(t, "Kubernetes", matches[0].CanonicalName)
	assert.Equal(t, "K8s", matches[0].Surface)
}

func TestAliasIndex_EmptyAllowed(t *testing.T) {
	ai := NewAliasIndex(nil)
	assert.Zero(t, ai.Size())
	assert.Nil(t, ai.FindAll("anything with K8s in it"))

	_, _, ok := ai.Resolve("K8s")
	assert.False(t, ok)
}

func TestIndex_FindAllMultibyteCaseFolding(t *testing.T) {
	ix, err := NewIndex(testEntries())
	require.NoError(t, err)

	// U+0130 shrinks from two bytes to one when lowercased, shifting every
	// offset after it.
	text := "İstanbul team ships Python services"
	matches := ix.FindAll(text)
	require.Len(t, matches, 1)

	assert.Equal(t, "Python", matches[0].Surface)
	assert.Equal(t, "Python", text[matches[0].Start:matches[0].End])
}

func TestMatch_Offsets(t *testing.T) {
	ix, err := NewIndex(testEntries())
	require.NoError(t, err)

	text := "We need Python here"
	matches := ix.FindAll(text)
	require.Len(t, matches, 1)
	assert.Equal(t, "Python", text[matches[0].Start:matches[0].End])
}
