package providers

import (
	"context"
	"errors"
	"fmt"

	prose "github.com/jdkato/prose/v2"
)

// ErrModelUnavailable signals that an optional model is not configured.
// The engine disables the dependent strategy instead of failing.
var ErrModelUnavailable = errors.New("model unavailable")

// Entity is a named-entity span found by the NER model.
type Entity struct {
	Text  string
	Label string
}

// Token is a single token with its part-of-speech tag (Penn Treebank).
type Token struct {
	Text string
	Tag  string
}

// NERModel is the port for named-entity recognition and POS tagging. The
// model must be safe for concurrent use after construction.
type NERModel interface {
	Entities(text string) ([]Entity, error)
	Tokens(text string) ([]Token, error)
}

// EmbeddingModel is the port for text embeddings used by the semantic
// matcher. Vectors should be comparable by cosine similarity.
type EmbeddingModel interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ProseModel implements NERModel on top of prose. The underlying model data
// loads lazily inside prose on first use and is shared afterwards.
type ProseModel struct{}

// NewProseModel returns the prose-backed NER model.
func NewProseModel() *ProseModel {
	return &ProseModel{}
}

// Entities runs the full prose pipeline and returns named-entity spans.
func (m *ProseModel) Entities(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("prose entity extraction failed: %w", err)
	}
	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}

// Tokens tokenizes and POS-tags the text without entity extraction.
func (m *ProseModel) Tokens(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("prose tokenization failed: %w", err)
	}
	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	for _, t := range toks {
		out = append(out, Token{Text: t.Text, Tag: t.Tag})
	}
	return out, nil
}
