package strategies

import (
	"context"
	"regexp"
	"strings"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// PatternRule is one compiled extraction regex. Group selects the submatch
// used as the skill span; 0 takes the whole match.
type PatternRule struct {
	Name     string
	Regex    *regexp.Regexp
	Group    int
	Category string
}

// DefaultPatternRules covers versioned and structured skill mentions that
// plain phrase matching misses.
func DefaultPatternRules() []PatternRule {
	return []PatternRule{
		{
			// "React 18", "Python 3.11", "Terraform v1.6"
			Name:  "versioned_technology",
			Regex: regexp.MustCompile(`\b([A-Z][A-Za-z+#.]{1,15})\s+v?\d+(?:\.\d+)*\b`),
			Group: 1,
		},
		{
			// "AWS Certified Solutions Architect", "Azure Certified"
			Name:     "certification",
			Regex:    regexp.MustCompile(`\b(?:AWS|Azure|GCP|Google Cloud|Kubernetes)\s+Certified(?:\s+[A-Z][A-Za-z-]*)*`),
			Group:    0,
			Category: types.CategoryCertifications,
		},
		{
			// "Express.js", "Nest.js" style suffixed frameworks
			Name:     "dotjs_framework",
			Regex:    regexp.MustCompile(`\b([A-Z][A-Za-z]+\.js)\b`),
			Group:    1,
			Category: types.CategoryFrameworks,
		},
	}
}

// PatternStrategy extracts versioned and structured mentions with a fixed
// set of compiled regexes.
type PatternStrategy struct {
	rules  []PatternRule
	window int
}

// NewPattern creates the regex pattern strategy. Passing no rules uses the
// default rule set.
func NewPattern(rules []PatternRule, window int) *PatternStrategy {
	if len(rules) == 0 {
		rules = DefaultPatternRules()
	}
	return &PatternStrategy{rules: rules, window: window}
}

// Name implements Strategy.
func (s *PatternStrategy) Name() string { return types.MethodPattern }

// Extract runs every rule over the section, deduplicating spans per section.
func (s *PatternStrategy) Extract(_ context.Context, section types.Section) ([]types.SkillCandidate, error) {
	seen := make(map[string]struct{})
	var out []types.SkillCandidate

	for _, rule := range s.rules {
		for _, loc := range rule.Regex.FindAllStringSubmatchIndex(section.Text, -1) {
			gi := rule.Group * 2
			if gi+1 >= len(loc) || loc[gi] < 0 {
				continue
			}
			start, end := loc[gi], loc[gi+1]
			span := section.Text[start:end]
			if !Acceptable(span) {
				continue
			}
			key := strings.ToLower(span)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			category := rule.Category
			if category == "" {
				category = types.CategoryUncategorized
			}
			out = append(out, types.SkillCandidate{
				RawText:          span,
				NormalizedName:   Normalize(span),
				Category:         category,
				ContextSnippet:   Snippet(section.Text, start, end, s.window),
				SourceField:      section.Type,
				ExtractionMethod: types.MethodPattern,
			})
		}
	}
	return out, nil
}
