// Package engine wires segmentation, the extraction strategies, scoring, and
// deduplication into a single extraction pipeline.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/doylet/CapacityReset-sub000/internal/config"
	"github.com/doylet/CapacityReset-sub000/internal/dedupe"
	"github.com/doylet/CapacityReset-sub000/internal/lexicon"
	"github.com/doylet/CapacityReset-sub000/internal/providers"
	"github.com/doylet/CapacityReset-sub000/internal/scoring"
	"github.com/doylet/CapacityReset-sub000/internal/segment"
	"github.com/doylet/CapacityReset-sub000/internal/strategies"
	"github.com/doylet/CapacityReset-sub000/internal/types"
	"github.com/doylet/CapacityReset-sub000/internal/version"
)

// ConfigError reports a construction-time failure. The engine refuses to
// start with an unusable configuration rather than degrading at extraction
// time.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("engine config: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("engine config: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Dependencies are the injectable collaborators of the engine. Lexicon,
// Aliases, and Models default to the static provider when nil.
// ExtraStrategies are appended to the built-in ensemble and participate in
// scoring and merging like any other strategy.
type Dependencies struct {
	Lexicon         providers.LexiconProvider
	Aliases         providers.AliasProvider
	Models          providers.ModelProvider
	Logger          *zap.Logger
	ExtraStrategies []strategies.Strategy
}

// Engine extracts skill records from job posting text. Safe for concurrent
// use after construction.
type Engine struct {
	cfg        config.Config
	segmenter  *segment.Segmenter
	index      *lexicon.Index
	aliases    *lexicon.AliasIndex
	strategies []strategies.Strategy
	scorer     *scoring.Scorer
	version    string
	logger     *zap.Logger
}

// New validates the configuration, builds the lexicon indexes and the
// strategy ensemble, and computes the extractor version. Any failure is a
// *ConfigError.
func New(ctx context.Context, cfg config.Config, deps Dependencies) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Message: "invalid configuration", Cause: err}
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	static := providers.NewStatic()
	lexiconProvider := deps.Lexicon
	if lexiconProvider == nil {
		lexiconProvider = static
	}
	aliasProvider := deps.Aliases
	if aliasProvider == nil {
		aliasProvider = static
	}
	modelProvider := deps.Models
	if modelProvider == nil {
		modelProvider = static
	}

	entries, err := lexiconProvider.Lexicon()
	if err != nil {
		return nil, &ConfigError{Message: "loading lexicon", Cause: err}
	}
	index, err := lexicon.NewIndex(entries)
	if err != nil {
		return nil, &ConfigError{Message: "building lexicon index", Cause: err}
	}

	aliasEntries, err := aliasProvider.Aliases()
	if err != nil {
		return nil, &ConfigError{Message: "loading aliases", Cause: err}
	}
	aliases := lexicon.NewAliasIndex(aliasEntries)

	nerModel, err := modelProvider.NER()
	if err != nil {
		return nil, &ConfigError{Message: "loading NER model", Cause: err}
	}

	ensemble := []strategies.Strategy{
		strategies.NewLexicon(index, cfg.ContextWindow),
		strategies.NewAlias(aliases, cfg.ContextWindow),
		strategies.NewEntity(nerModel, cfg.ContextWindow),
		strategies.NewNounChunk(nerModel, cfg.ContextWindow),
	}
	if cfg.EnablePattern {
		ensemble = append(ensemble, strategies.NewPattern(nil, cfg.ContextWindow))
	}
	if cfg.EnableSemantic {
		embedding, err := modelProvider.Embedding()
		switch {
		case errors.Is(err, providers.ErrModelUnavailable):
			logger.Warn("semantic matching enabled but no embedding model is available, skipping strategy")
		case err != nil:
			return nil, &ConfigError{Message: "loading embedding model", Cause: err}
		default:
			semantic, err := strategies.NewSemantic(ctx, embedding, index, cfg.SemanticSimilarityThreshold, cfg.ContextWindow)
			if err != nil {
				return nil, &ConfigError{Message: "building semantic index", Cause: err}
			}
			ensemble = append(ensemble, semantic)
		}
	}
	ensemble = append(ensemble, deps.ExtraStrategies...)

	names := make([]string, len(ensemble))
	for i, s := range ensemble {
		names[i] = s.Name()
	}

	return &Engine{
		cfg:        cfg,
		segmenter:  segment.New(cfg.RelevantHeadings, cfg.ExcludedHeadings, cfg.MinSectionLength, cfg.RescueSectionLength),
		index:      index,
		aliases:    aliases,
		strategies: ensemble,
		scorer:     scoring.New(cfg.StrategyWeights, cfg.StrongContextKeywords, cfg.MediumContextKeywords),
		version:    version.Compute(cfg.VersionPrefix, names, cfg.StrategyWeights, cfg.ConfidenceThreshold, cfg.SemanticSimilarityThreshold),
		logger:     logger,
	}, nil
}

// Version returns the extractor version string shared by every record this
// engine emits.
func (e *Engine) Version() string {
	return e.version
}

// Canonicalize resolves a free-form skill name through the alias table and
// the lexicon. Used by the evaluation harness to compare expected skills on
// the same footing as extracted ones.
func (e *Engine) Canonicalize(name string) (canonical, category string, ok bool) {
	if canonical, category, ok = e.aliases.Resolve(name); ok {
		return canonical, category, true
	}
	return e.index.Lookup(name)
}

// Extract runs the full pipeline over one document. Empty or whitespace-only
// input yields an empty result without error. Individual strategy failures
// are logged and counted but never abort the extraction; only a failure of
// every stage would surface as an empty record set.
func (e *Engine) Extract(ctx context.Context, text, documentID string) (types.ExtractionResult, error) {
	result := types.ExtractionResult{
		DocumentID:       documentID,
		Records:          []types.SkillRecord{},
		ExtractorVersion: e.version,
	}
	if strings.TrimSpace(text) == "" {
		return result, nil
	}

	start := time.Now()
	plain := segment.NormalizeHTML(text)
	sections := e.segmenter.Segment(plain)

	var relevant []types.Section
	for _, sec := range sections {
		if sec.Relevant {
			relevant = append(relevant, sec)
		}
	}

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		candidates []types.SkillCandidate
	)
	for _, strat := range e.strategies {
		wg.Add(1)
		go func(strat strategies.Strategy) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					strategyFailures.WithLabelValues(strat.Name()).Inc()
					e.logger.Warn("extraction strategy panicked",
						zap.String("strategy", strat.Name()),
						zap.String("document_id", documentID),
						zap.Any("panic", r))
				}
			}()

			var found []types.SkillCandidate
			for _, sec := range relevant {
				got, err := strat.Extract(ctx, sec)
				if err != nil {
					strategyFailures.WithLabelValues(strat.Name()).Inc()
					e.logger.Warn("extraction strategy failed",
						zap.String("strategy", strat.Name()),
						zap.String("document_id", documentID),
						zap.Error(err))
					continue
				}
				for i := range got {
					got[i].ConfidenceRaw = e.scorer.Score(got[i], plain)
				}
				found = append(found, got...)
			}

			candidatesTotal.WithLabelValues(strat.Name()).Add(float64(len(found)))
			mu.Lock()
			candidates = append(candidates, found...)
			mu.Unlock()
		}(strat)
	}
	wg.Wait()

	for i := range candidates {
		e.canonicalize(&candidates[i])
	}

	records := dedupe.Merge(candidates, e.version)
	records = dedupe.ApplyThreshold(records, e.cfg.ConfidenceThreshold)
	result.Records = records

	extractionsTotal.Inc()
	extractionSeconds.Observe(time.Since(start).Seconds())
	recordsEmitted.Add(float64(len(records)))

	e.logger.Debug("extraction complete",
		zap.String("document_id", documentID),
		zap.Int("sections", len(relevant)),
		zap.Int("candidates", len(candidates)),
		zap.Int("records", len(records)))
	return result, nil
}

// canonicalize rewrites a candidate's normalized name and category through
// the alias table and lexicon. Candidates unknown to both keep their
// normalized form and fall into the uncategorized bucket.
func (e *Engine) canonicalize(c *types.SkillCandidate) {
	if canonical, category, ok := e.aliases.Resolve(c.RawText); ok {
		c.NormalizedName = canonical
		c.Category = category
		return
	}
	if canonical, category, ok := e.aliases.Resolve(c.NormalizedName); ok {
		c.NormalizedName = canonical
		c.Category = category
		return
	}
	if canonical, category, ok := e.index.Lookup(c.NormalizedName); ok {
		c.NormalizedName = canonical
		c.Category = category
		return
	}
	if c.Category == "" {
		c.Category = types.CategoryUncategorized
	}
}
