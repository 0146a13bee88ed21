package strategies

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"unicode"

	chromem "github.com/philippgille/chromem-go"

	"github.com/doylet/CapacityReset-sub000/internal/lexicon"
	"github.com/doylet/CapacityReset-sub000/internal/providers"
	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// maxSemanticQueries bounds the number of vector queries per section so a
// long document cannot stall the ensemble.
const maxSemanticQueries = 32

// SemanticStrategy matches n-grams from the section against known skill
// embeddings held in an in-process vector collection. The collection is built
// once at engine construction and shared read-only afterwards.
type SemanticStrategy struct {
	collection *chromem.Collection
	threshold  float32
	window     int
}

// NewSemantic embeds every lexicon skill into a chromem collection. Called
// only when an embedding model is available; a missing model disables the
// strategy upstream instead of reaching this constructor.
func NewSemantic(ctx context.Context, model providers.EmbeddingModel, index *lexicon.Index, threshold float64, window int) (*SemanticStrategy, error) {
	db := chromem.NewDB()
	embed := chromem.EmbeddingFunc(func(ctx context.Context, text string) ([]float32, error) {
		return model.Embed(ctx, text)
	})
	collection, err := db.CreateCollection("skills", nil, embed)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill collection: %w", err)
	}

	names := index.Names()
	docs := make([]chromem.Document, 0, len(names))
	for i, name := range names {
		category := types.CategoryUncategorized
		if _, cat, ok := index.Lookup(name); ok {
			category = cat
		}
		docs = append(docs, chromem.Document{
			ID:       fmt.Sprintf("skill-%d", i),
			Content:  name,
			Metadata: map[string]string{"category": category},
		})
	}
	if err := collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return nil, fmt.Errorf("failed to embed skill lexicon: %w", err)
	}

	return &SemanticStrategy{
		collection: collection,
		threshold:  float32(threshold),
		window:     window,
	}, nil
}

// Name implements Strategy.
func (s *SemanticStrategy) Name() string { return types.MethodSemantic }

// Extract queries the nearest known skill for each candidate n-gram and
// emits the match when similarity clears the configured threshold.
func (s *SemanticStrategy) Extract(ctx context.Context, section types.Section) ([]types.SkillCandidate, error) {
	grams := candidateNGrams(section.Text, maxSemanticQueries)

	var out []types.SkillCandidate
	for _, gram := range grams {
		results, err := s.collection.Query(ctx, gram, 1, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("vector query for %q failed: %w", gram, err)
		}
		if len(results) == 0 || results[0].Similarity < s.threshold {
			continue
		}
		best := results[0]
		category := best.Metadata["category"]
		if category == "" {
			category = types.CategoryUncategorized
		}
		out = append(out, types.SkillCandidate{
			RawText:          gram,
			NormalizedName:   best.Content,
			Category:         category,
			ContextSnippet:   snippetFor(section.Text, gram, s.window),
			SourceField:      section.Type,
			ExtractionMethod: types.MethodSemantic,
		})
	}
	return out, nil
}

// candidateNGrams picks unigrams and bigrams worth embedding: spans that are
// capitalized or technical-looking, pre-filtered by the shared heuristics.
func candidateNGrams(text string, limit int) []string {
	words := strings.Fields(text)
	seen := make(map[string]struct{})
	var grams []string

	add := func(span string) {
		if len(grams) >= limit {
			return
		}
		span = strings.Trim(span, edgePunct)
		key := strings.ToLower(span)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		if Acceptable(span) {
			grams = append(grams, span)
		}
	}

	for i, w := range words {
		trimmed := strings.Trim(w, edgePunct)
		if !startsUpper(trimmed) && !techLooking(trimmed) {
			continue
		}
		add(trimmed)
		if i+1 < len(words) {
			add(trimmed + " " + strings.Trim(words[i+1], edgePunct))
		}
	}
	return grams
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
