package strategies

import (
	"context"

	"github.com/doylet/CapacityReset-sub000/internal/lexicon"
	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// AliasStrategy matches curated surface-form variants ("K8s", "JS") directly
// in text. Aliases are hand-maintained, so this signal carries a weight equal
// to lexicon matches.
type AliasStrategy struct {
	index  *lexicon.AliasIndex
	window int
}

// NewAlias creates the alias matching strategy.
func NewAlias(index *lexicon.AliasIndex, window int) *AliasStrategy {
	return &AliasStrategy{index: index, window: window}
}

// Name implements Strategy.
func (s *AliasStrategy) Name() string { return types.MethodAlias }

// Extract emits one candidate per alias occurrence, already canonicalized.
func (s *AliasStrategy) Extract(_ context.Context, section types.Section) ([]types.SkillCandidate, error) {
	var out []types.SkillCandidate
	for _, m := range s.index.FindAll(section.Text) {
		out = append(out, types.SkillCandidate{
			RawText:          m.Surface,
			NormalizedName:   m.CanonicalName,
			Category:         m.Category,
			ContextSnippet:   Snippet(section.Text, m.Start, m.End, s.window),
			SourceField:      section.Type,
			ExtractionMethod: types.MethodAlias,
		})
	}
	return out, nil
}
