package providers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// FileProvider loads the lexicon and alias table from JSON files, so curated
// tables can be deployed without recompiling. Model access is delegated to an
// inner provider (usually Static).
type FileProvider struct {
	LexiconPath string
	AliasPath   string
	Models      ModelProvider
}

// NewFileProvider creates a provider reading the given JSON files. Either
// path may be empty, in which case the built-in table is used.
func NewFileProvider(lexiconPath, aliasPath string) *FileProvider {
	return &FileProvider{
		LexiconPath: lexiconPath,
		AliasPath:   aliasPath,
		Models:      NewStatic(),
	}
}

// Lexicon implements LexiconProvider.
func (p *FileProvider) Lexicon() ([]types.LexiconEntry, error) {
	if p.LexiconPath == "" {
		return DefaultLexicon(), nil
	}
	var entries []types.LexiconEntry
	if err := readJSON(p.LexiconPath, &entries); err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	return entries, nil
}

// Aliases implements AliasProvider.
func (p *FileProvider) Aliases() ([]types.AliasEntry, error) {
	if p.AliasPath == "" {
		return DefaultAliases(), nil
	}
	var entries []types.AliasEntry
	if err := readJSON(p.AliasPath, &entries); err != nil {
		return nil, fmt.Errorf("failed to load aliases: %w", err)
	}
	return entries, nil
}

// NER implements ModelProvider.
func (p *FileProvider) NER() (NERModel, error) {
	return p.Models.NER()
}

// Embedding implements ModelProvider.
func (p *FileProvider) Embedding() (EmbeddingModel, error) {
	return p.Models.Embedding()
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
