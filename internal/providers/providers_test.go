package providers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

func TestStatic_Defaults(t *testing.T) {
	s := NewStatic()

	lex, err := s.Lexicon()
	require.NoError(t, err)
	assert.NotEmpty(t, lex)

	aliases, err := s.Aliases()
	require.NoError(t, err)
	assert.NotEmpty(t, aliases)

	ner, err := s.NER()
	require.NoError(t, err)
	assert.NotNil(t, ner)
}

func TestStatic_EmbeddingUnavailable(t *testing.T) {
	s := NewStatic()

	_, err := s.Embedding()
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestDefaultAliases_PointAtLexiconSkills(t *testing.T) {
	known := make(map[string]struct{})
	for _, le := range DefaultLexicon() {
		for _, skill := range le.Skills {
			known[skill] = struct{}{}
		}
	}

	for _, ae := range DefaultAliases() {
		_, ok := known[ae.CanonicalName]
		assert.True(t, ok, "alias %q points at unknown skill %q", ae.Alias, ae.CanonicalName)
	}
}

func TestFileProvider_DefaultsWhenPathsEmpty(t *testing.T) {
	p := NewFileProvider("", "")

	lex, err := p.Lexicon()
	require.NoError(t, err)
	assert.Equal(t, DefaultLexicon(), lex)

	aliases, err := p.Aliases()
	require.NoError(t, err)
	assert.Equal(t, DefaultAliases(), aliases)
}

func TestFileProvider_LoadsJSON(t *testing.T) {
	dir := t.TempDir()

	lexPath := filepath.Join(dir, "lexicon.json")
	lexJSON := `[{"category":"programming_languages","skills":["Python","COBOL"]}]`
	require.NoError(t, os.WriteFile(lexPath, []byte(lexJSON), 0o600))

	aliasPath := filepath.Join(dir, "aliases.json")
	aliasJSON := `[{"alias":"Py","canonical_name":"Python","category":"programming_languages"}]`
	require.NoError(t, os.WriteFile(aliasPath, []byte(aliasJSON), 0o600))

	p := NewFileProvider(lexPath, aliasPath)

	lex, err := p.Lexicon()
	require.NoError(t, err)
	require.Len(t, lex, 1)
	assert.Equal(t, []string{"Python", "COBOL"}, lex[0].Skills)
	assert.Equal(t, types.CategoryProgrammingLanguages, lex[0].Category)

	aliases, err := p.Aliases()
	require.NoError(t, err)
	require.Len(t, aliases, 1)
	assert.Equal(t, "Py", aliases[0].Alias)
	assert.Equal(t, "Python", aliases[0].CanonicalName)
}

func TestFileProvider_MissingFile(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "nope.json"), "")

	_, err := p.Lexicon()
	assert.Error(t, err)
}

func TestFileProvider_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	p := NewFileProvider("", path)
	_, err := p.Aliases()
	assert.Error(t, err)
}
