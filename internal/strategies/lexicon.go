package strategies

import (
	"context"

	"github.com/doylet/CapacityReset-sub000/internal/lexicon"
	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// LexiconStrategy phrase-matches section text against the canonical skill
// lexicon. The highest-precision signal in the ensemble.
type LexiconStrategy struct {
	index  *lexicon.Index
	window int
}

// NewLexicon creates the lexicon matching strategy.
func NewLexicon(index *lexicon.Index, window int) *LexiconStrategy {
	return &LexiconStrategy{index: index, window: window}
}

// Name implements Strategy.
func (s *LexiconStrategy) Name() string { return types.MethodLexicon }

// Extract emits one candidate per word-bounded lexicon match span.
func (s *LexiconStrategy) Extract(_ context.Context, section types.Section) ([]types.SkillCandidate, error) {
	var out []types.SkillCandidate
	for _, m := range s.index.FindAll(section.Text) {
		out = append(out, types.SkillCandidate{
			RawText:          m.Surface,
			NormalizedName:   m.CanonicalName,
			Category:         m.Category,
			ContextSnippet:   Snippet(section.Text, m.Start, m.End, s.window),
			SourceField:      section.Type,
			ExtractionMethod: types.MethodLexicon,
		})
	}
	return out, nil
}
