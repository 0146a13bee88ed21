// Package dedupe collapses scored candidates into unique skill records.
package dedupe

import (
	"sort"
	"strings"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

type key struct {
	name     string
	category string
}

type bucket struct {
	best    types.SkillCandidate
	methods map[string]struct{}
}

// Merge collapses candidates to one record per (lower(normalized name),
// category), keeping the highest-scoring variant and unioning the source
// strategies of every colliding candidate. Records are sorted by confidence
// descending for readability; ordering carries no semantics.
func Merge(candidates []types.SkillCandidate, extractorVersion string) []types.SkillRecord {
	buckets := make(map[key]*bucket)

	for _, c := range candidates {
		if strings.TrimSpace(c.NormalizedName) == "" {
			continue
		}
		k := key{name: strings.ToLower(c.NormalizedName), category: c.Category}
		b, ok := buckets[k]
		if !ok {
			b = &bucket{best: c, methods: make(map[string]struct{})}
			buckets[k] = b
		} else if c.ConfidenceRaw > b.best.ConfidenceRaw {
			b.best = c
		}
		b.methods[c.ExtractionMethod] = struct{}{}
	}

	records := make([]types.SkillRecord, 0, len(buckets))
	for _, b := range buckets {
		methods := make([]string, 0, len(b.methods))
		for m := range b.methods {
			methods = append(methods, m)
		}
		sort.Strings(methods)

		records = append(records, types.SkillRecord{
			CanonicalName:    b.best.NormalizedName,
			Category:         b.best.Category,
			Confidence:       b.best.ConfidenceRaw,
			ContextSnippet:   b.best.ContextSnippet,
			SourceStrategies: methods,
			ExtractorVersion: extractorVersion,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Confidence != records[j].Confidence {
			return records[i].Confidence > records[j].Confidence
		}
		return records[i].CanonicalName < records[j].CanonicalName
	})
	return records
}

// ApplyThreshold drops records whose confidence is below min. This is the
// single precision/recall knob exposed to operators: raising it never
// increases the number of returned records.
func ApplyThreshold(records []types.SkillRecord, min float64) []types.SkillRecord {
	kept := make([]types.SkillRecord, 0, len(records))
	for _, r := range records {
		if r.Confidence >= min {
			kept = append(kept, r)
		}
	}
	return kept
}
