package strategies

import (
	"context"
	"fmt"
	"strings"

	"github.com/doylet/CapacityReset-sub000/internal/providers"
	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// maxProperNounRun caps the length of proper-noun token runs promoted to
// candidate spans.
const maxProperNounRun = 4

// EntityStrategy uses the NER model to find entity-typed spans, then filters
// them with the shared inclusion heuristics. The model only labels a subset
// of what job postings mention, so proper-noun token runs are promoted too.
type EntityStrategy struct {
	model  providers.NERModel
	window int
}

// NewEntity creates the entity-recognition strategy.
func NewEntity(model providers.NERModel, window int) *EntityStrategy {
	return &EntityStrategy{model: model, window: window}
}

// Name implements Strategy.
func (s *EntityStrategy) Name() string { return types.MethodNER }

// Extract collects entity spans and proper-noun runs, deduplicated per
// section, and keeps the ones passing the inclusion heuristics.
func (s *EntityStrategy) Extract(_ context.Context, section types.Section) ([]types.SkillCandidate, error) {
	entities, err := s.model.Entities(section.Text)
	if err != nil {
		return nil, fmt.Errorf("entity extraction failed: %w", err)
	}
	tokens, err := s.model.Tokens(section.Text)
	if err != nil {
		return nil, fmt.Errorf("tokenization failed: %w", err)
	}

	seen := make(map[string]struct{})
	var spans []string
	add := func(span string) {
		span = strings.TrimSpace(span)
		key := strings.ToLower(span)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		if Acceptable(span) {
			spans = append(spans, span)
		}
	}

	for _, e := range entities {
		add(e.Text)
	}
	for _, run := range properNounRuns(tokens) {
		add(run)
	}

	out := make([]types.SkillCandidate, 0, len(spans))
	for _, span := range spans {
		out = append(out, types.SkillCandidate{
			RawText:          span,
			NormalizedName:   Normalize(span),
			Category:         types.CategoryUncategorized,
			ContextSnippet:   snippetFor(section.Text, span, s.window),
			SourceField:      section.Type,
			ExtractionMethod: types.MethodNER,
		})
	}
	return out, nil
}

// properNounRuns joins consecutive NNP/NNPS tokens into spans of at most
// maxProperNounRun tokens.
func properNounRuns(tokens []providers.Token) []string {
	var runs []string
	var current []string
	flush := func() {
		if len(current) == 0 {
			return
		}
		if len(current) <= maxProperNounRun {
			runs = append(runs, strings.Join(current, " "))
		}
		current = nil
	}
	for _, tok := range tokens {
		if strings.HasPrefix(tok.Tag, "NNP") {
			current = append(current, tok.Text)
			continue
		}
		flush()
	}
	flush()
	return runs
}
