// Package config provides the typed, validated configuration for the
// extraction engine. Invalid configuration is rejected at load time, before
// any document is processed.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// Config holds every tunable of the extraction engine. The zero value is not
// usable; start from Default() and override.
type Config struct {
	// ConfidenceThreshold drops merged records scoring below it. This is the
	// single precision/recall knob exposed to operators.
	ConfidenceThreshold float64 `koanf:"confidence_threshold" validate:"gte=0,lte=1"`

	// StrategyWeights maps extraction method names to reliability weights.
	// A weight acts as an upper bound on the confidence a strategy can reach.
	StrategyWeights map[string]float64 `koanf:"strategy_weights" validate:"required"`

	// SemanticSimilarityThreshold is the minimum cosine similarity for the
	// semantic matcher to emit a candidate.
	SemanticSimilarityThreshold float64 `koanf:"semantic_similarity_threshold" validate:"gte=0,lte=1"`

	// EnableSemantic turns on the embedding-based matcher. It additionally
	// requires an embedding model from the model provider.
	EnableSemantic bool `koanf:"enable_semantic"`

	// EnablePattern turns on the regex pattern matcher.
	EnablePattern bool `koanf:"enable_pattern"`

	// RelevantHeadings and ExcludedHeadings drive section classification.
	RelevantHeadings []string `koanf:"relevant_headings" validate:"min=1"`
	ExcludedHeadings []string `koanf:"excluded_headings" validate:"min=1"`

	// MinSectionLength discards shorter sections as noise.
	MinSectionLength int `koanf:"min_section_length" validate:"gt=0"`

	// RescueSectionLength is the minimum length for an excluded section to be
	// promoted when too few relevant sections were found.
	RescueSectionLength int `koanf:"rescue_section_length" validate:"gt=0"`

	// ContextWindow is the number of bytes captured on each side of a match
	// for the context snippet.
	ContextWindow int `koanf:"context_window" validate:"gt=0"`

	// StrongContextKeywords and MediumContextKeywords boost confidence when
	// found in a candidate's context snippet.
	StrongContextKeywords []string `koanf:"strong_context_keywords" validate:"min=1"`
	MediumContextKeywords []string `koanf:"medium_context_keywords" validate:"min=1"`

	// VersionPrefix is the human-readable prefix of the extractor version.
	VersionPrefix string `koanf:"version_prefix" validate:"required"`
}

// Default returns the configuration the engine ships with.
func Default() Config {
	return Config{
		ConfidenceThreshold: 0.5,
		StrategyWeights: map[string]float64{
			types.MethodLexicon:   1.0,
			types.MethodAlias:     1.0,
			types.MethodNER:       0.7,
			types.MethodNounChunk: 0.6,
			types.MethodSemantic:  0.5,
			types.MethodPattern:   0.8,
		},
		SemanticSimilarityThreshold: 0.72,
		EnableSemantic:              false,
		EnablePattern:               true,
		RelevantHeadings: []string{
			"responsibilities", "requirements", "qualifications", "what you'll do",
			"what you will do", "what we're looking for", "skills", "must have",
			"nice to have", "your profile", "about the role", "the role",
			"technical skills", "preferred qualifications",
		},
		ExcludedHeadings: []string{
			"benefits", "about us", "about the company", "perks", "compensation",
			"equal opportunity", "how to apply", "our values", "why join",
			"what we offer", "diversity",
		},
		MinSectionLength:    30,
		RescueSectionLength: 40,
		ContextWindow:       80,
		StrongContextKeywords: []string{
			"required", "requirement", "must have", "must-have", "essential",
			"proficient", "proficiency", "expert", "mandatory",
		},
		MediumContextKeywords: []string{
			"experience", "knowledge", "familiar", "understanding", "working with",
		},
		VersionPrefix: "v1",
	}
}

var validate = validator.New()

// Validate checks structural constraints and rejects unknown or out-of-range
// strategy weights. The engine calls it before any extraction runs.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	known := map[string]bool{
		types.MethodLexicon:   true,
		types.MethodAlias:     true,
		types.MethodNER:       true,
		types.MethodNounChunk: true,
		types.MethodSemantic:  true,
		types.MethodPattern:   true,
	}
	for method, weight := range c.StrategyWeights {
		if !known[method] {
			return fmt.Errorf("config error: unknown strategy %q in strategy_weights", method)
		}
		if weight <= 0 || weight > 1 {
			return fmt.Errorf("config error: weight for %q must be in (0, 1], got %v", method, weight)
		}
	}
	for _, method := range []string{types.MethodLexicon, types.MethodAlias, types.MethodNER, types.MethodNounChunk} {
		if _, ok := c.StrategyWeights[method]; !ok {
			return fmt.Errorf("config error: missing weight for strategy %q", method)
		}
	}
	return nil
}

// Weight returns the configured weight for an extraction method. Unknown
// methods get a conservative default so an injected custom strategy can never
// reach full confidence without an explicit weight.
func (c Config) Weight(method string) float64 {
	if w, ok := c.StrategyWeights[method]; ok {
		return w
	}
	return 0.5
}
