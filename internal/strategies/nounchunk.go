package strategies

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/doylet/CapacityReset-sub000/internal/providers"
	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// Noun phrase window bounds.
const (
	minChunkTokens = 2
	maxChunkTokens = 4
)

// skillNouns are noun lemmas that mark a phrase as skill-bearing even without
// any technical-looking token ("stakeholder management", "data analysis").
var skillNouns = map[string]struct{}{
	"management": {}, "analysis": {}, "analytics": {}, "architecture": {},
	"design": {}, "development": {}, "engineering": {}, "testing": {},
	"optimization": {}, "modeling": {}, "automation": {}, "migration": {},
	"integration": {}, "security": {}, "administration": {}, "deployment": {},
	"pipelines": {}, "infrastructure": {}, "visualization": {},
}

// NounChunkStrategy considers 2-4 token noun phrases and accepts the ones
// showing a skill signal: a verb or gerund, a known skill-bearing noun, or a
// capitalized technical-looking token.
type NounChunkStrategy struct {
	model  providers.NERModel
	window int
}

// NewNounChunk creates the noun-phrase heuristic strategy.
func NewNounChunk(model providers.NERModel, window int) *NounChunkStrategy {
	return &NounChunkStrategy{model: model, window: window}
}

// Name implements Strategy.
func (s *NounChunkStrategy) Name() string { return types.MethodNounChunk }

// Extract slides over POS-tagged tokens looking for acceptable noun phrases.
// Accepted windows do not overlap; the scan resumes past each accepted span.
func (s *NounChunkStrategy) Extract(_ context.Context, section types.Section) ([]types.SkillCandidate, error) {
	tokens, err := s.model.Tokens(section.Text)
	if err != nil {
		return nil, fmt.Errorf("tokenization failed: %w", err)
	}

	seen := make(map[string]struct{})
	var out []types.SkillCandidate

	for i := 0; i < len(tokens); {
		span, width := s.bestChunkAt(tokens, i)
		if width == 0 {
			i++
			continue
		}
		i += width

		key := strings.ToLower(span)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		out = append(out, types.SkillCandidate{
			RawText:          span,
			NormalizedName:   Normalize(span),
			Category:         types.CategoryUncategorized,
			ContextSnippet:   snippetFor(section.Text, span, s.window),
			SourceField:      section.Type,
			ExtractionMethod: types.MethodNounChunk,
		})
	}
	return out, nil
}

// bestChunkAt returns the longest acceptable phrase starting at index i, and
// its width in tokens. Width 0 means no acceptable phrase starts here.
func (s *NounChunkStrategy) bestChunkAt(tokens []providers.Token, i int) (string, int) {
	for width := maxChunkTokens; width >= minChunkTokens; width-- {
		if i+width > len(tokens) {
			continue
		}
		window := tokens[i : i+width]
		if !chunkShaped(window) || !hasSkillSignal(window) {
			continue
		}
		span := joinTokens(window)
		if !Acceptable(span) {
			continue
		}
		return span, width
	}
	return "", 0
}

// chunkShaped requires every token to be noun-ish: nouns, adjectives,
// gerunds, or technical symbols. Edge tokens must not be stopwords.
func chunkShaped(window []providers.Token) bool {
	for _, tok := range window {
		switch {
		case strings.HasPrefix(tok.Tag, "NN"),
			strings.HasPrefix(tok.Tag, "JJ"),
			tok.Tag == "VBG":
		case techLooking(tok.Text):
		default:
			return false
		}
	}
	if isStopword(window[0].Text) || isStopword(window[len(window)-1].Text) {
		return false
	}
	return true
}

// hasSkillSignal accepts a phrase containing a gerund, a known skill-bearing
// noun, or a capitalized technical-looking token.
func hasSkillSignal(window []providers.Token) bool {
	for _, tok := range window {
		if tok.Tag == "VBG" {
			return true
		}
		if _, ok := skillNouns[strings.ToLower(tok.Text)]; ok {
			return true
		}
		if techLooking(tok.Text) {
			return true
		}
	}
	return false
}

// techLooking reports whether a token is capitalized and shaped like a
// technology name: inner uppercase, a digit, or joining punctuation.
func techLooking(tok string) bool {
	runes := []rune(tok)
	if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) || unicode.IsDigit(r) || r == '.' || r == '+' || r == '#' || r == '-' {
			return true
		}
	}
	return false
}

func isStopword(tok string) bool {
	_, ok := stopwords[strings.ToLower(tok)]
	return ok
}

func joinTokens(window []providers.Token) string {
	parts := make([]string, len(window))
	for i, tok := range window {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}
