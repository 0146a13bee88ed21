// Package scoring computes bounded confidence scores for skill candidates
// from contextual and structural features, weighted by extraction method.
package scoring

import (
	"strings"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// Scoring constants. The method weight is applied after clipping, so it acts
// as an upper bound: a low-precision strategy can never reach full confidence
// regardless of contextual signal strength.
const (
	baseConfidence     = 0.5
	perMentionBonus    = 0.1
	maxFrequencyBonus  = 0.3
	strongContextBonus = 0.2
	mediumContextBonus = 0.1
)

// defaultWeight applies to methods without a configured weight.
const defaultWeight = 0.5

// Scorer scores candidates against the document text they came from.
// Immutable after construction and shared across concurrent extractions.
type Scorer struct {
	weights map[string]float64
	strong  []string
	medium  []string
}

// New creates a Scorer from the configured method weights and context
// keyword lists. Keyword matching is case-insensitive.
func New(weights map[string]float64, strong, medium []string) *Scorer {
	return &Scorer{
		weights: weights,
		strong:  lowerAll(strong),
		medium:  lowerAll(medium),
	}
}

// Score returns a confidence in [0, 1]: base 0.5, plus up to +0.3 for repeat
// mentions anywhere in the document, plus +0.2 for a strong context keyword
// (else +0.1 for a medium one), clipped to 1.0 and multiplied by the method
// weight.
func (s *Scorer) Score(candidate types.SkillCandidate, docText string) float64 {
	score := baseConfidence

	if mentions := countMentions(docText, candidate.RawText); mentions > 1 {
		bonus := float64(mentions-1) * perMentionBonus
		if bonus > maxFrequencyBonus {
			bonus = maxFrequencyBonus
		}
		score += bonus
	}

	snippet := strings.ToLower(candidate.ContextSnippet)
	if containsAny(snippet, s.strong) {
		score += strongContextBonus
	} else if containsAny(snippet, s.medium) {
		score += mediumContextBonus
	}

	if score > 1.0 {
		score = 1.0
	}

	weight, ok := s.weights[candidate.ExtractionMethod]
	if !ok {
		weight = defaultWeight
	}
	return score * weight
}

// countMentions counts case-insensitive occurrences of the raw span in the
// document text.
func countMentions(docText, raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	return strings.Count(strings.ToLower(docText), strings.ToLower(raw))
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
