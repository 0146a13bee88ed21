// Package evaluation measures extraction quality against labeled documents.
package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// LabeledDocument is one evaluation example: raw posting text plus the
// skills a human annotator expects back.
type LabeledDocument struct {
	DocumentID     string   `json:"document_id"`
	Text           string   `json:"text"`
	ExpectedSkills []string `json:"expected_skills"`
}

// CategoryMetrics holds per-category recall counts.
type CategoryMetrics struct {
	Expected int     `json:"expected"`
	Found    int     `json:"found"`
	Recall   float64 `json:"recall"`
}

// Report is the outcome of one evaluation run.
type Report struct {
	RunID            string                     `json:"run_id"`
	ExtractorVersion string                     `json:"extractor_version"`
	Documents        int                        `json:"documents"`
	Precision        float64                    `json:"precision"`
	Recall           float64                    `json:"recall"`
	F1               float64                    `json:"f1"`
	PerCategory      map[string]CategoryMetrics `json:"per_category"`
}

// Extractor is the engine surface the harness needs. Canonicalize puts
// expected skill labels on the same footing as extracted names.
type Extractor interface {
	Extract(ctx context.Context, text, documentID string) (types.ExtractionResult, error)
	Canonicalize(name string) (canonical, category string, ok bool)
	Version() string
}

// LoadDataset reads a JSON array of labeled documents from disk.
func LoadDataset(path string) ([]LabeledDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	var docs []LabeledDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("dataset %s contains no documents", path)
	}
	return docs, nil
}

type docTally struct {
	truePositives  int
	falsePositives int
	falseNegatives int
	perCategory    map[string]CategoryMetrics
}

// Evaluate extracts every document with bounded concurrency and aggregates
// micro-averaged precision, recall, and F1, plus per-category recall.
// Expected skills unknown to the lexicon and aliases count against recall in
// the uncategorized bucket.
func Evaluate(ctx context.Context, ex Extractor, docs []LabeledDocument, concurrency int) (Report, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		mu      sync.Mutex
		tallies []docTally
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, doc := range docs {
		g.Go(func() error {
			result, err := ex.Extract(ctx, doc.Text, doc.DocumentID)
			if err != nil {
				return fmt.Errorf("extracting %s: %w", doc.DocumentID, err)
			}
			tally := scoreDocument(ex, doc, result)
			mu.Lock()
			tallies = append(tallies, tally)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{
		RunID:            uuid.New().String(),
		ExtractorVersion: ex.Version(),
		Documents:        len(docs),
		PerCategory:      make(map[string]CategoryMetrics),
	}

	var tp, fp, fn int
	for _, t := range tallies {
		tp += t.truePositives
		fp += t.falsePositives
		fn += t.falseNegatives
		for cat, m := range t.perCategory {
			agg := report.PerCategory[cat]
			agg.Expected += m.Expected
			agg.Found += m.Found
			report.PerCategory[cat] = agg
		}
	}
	for cat, m := range report.PerCategory {
		if m.Expected > 0 {
			m.Recall = float64(m.Found) / float64(m.Expected)
		}
		report.PerCategory[cat] = m
	}

	if tp+fp > 0 {
		report.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		report.Recall = float64(tp) / float64(tp+fn)
	}
	if report.Precision+report.Recall > 0 {
		report.F1 = 2 * report.Precision * report.Recall / (report.Precision + report.Recall)
	}
	return report, nil
}

// scoreDocument compares extracted records against the expected skill set on
// lowercased canonical names.
func scoreDocument(ex Extractor, doc LabeledDocument, result types.ExtractionResult) docTally {
	tally := docTally{perCategory: make(map[string]CategoryMetrics)}

	expected := make(map[string]string)
	for _, raw := range doc.ExpectedSkills {
		name, category := raw, types.CategoryUncategorized
		if canonical, cat, ok := ex.Canonicalize(raw); ok {
			name, category = canonical, cat
		}
		expected[strings.ToLower(name)] = category
	}

	got := make(map[string]struct{})
	for _, r := range result.Records {
		got[strings.ToLower(r.CanonicalName)] = struct{}{}
	}

	for name, category := range expected {
		m := tally.perCategory[category]
		m.Expected++
		if _, ok := got[name]; ok {
			m.Found++
			tally.truePositives++
		} else {
			tally.falseNegatives++
		}
		tally.perCategory[category] = m
	}
	for name := range got {
		if _, ok := expected[name]; !ok {
			tally.falsePositives++
		}
	}
	return tally
}

// Categories returns the per-category keys of a report in sorted order.
func (r Report) Categories() []string {
	cats := make([]string, 0, len(r.PerCategory))
	for cat := range r.PerCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
