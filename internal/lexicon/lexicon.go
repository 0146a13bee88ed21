// Package lexicon builds the in-memory phrase indexes used for canonical
// skill and alias matching. Indexes are immutable after construction and safe
// to share across concurrent extractions; updates happen by building a new
// index and swapping the reference.
package lexicon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// Match is one phrase occurrence found in a text. Start and End are byte
// offsets into the original text.
type Match struct {
	Surface       string
	CanonicalName string
	Category      string
	Start         int
	End           int
}

// Index is the canonical skill lexicon: phrase matching over every skill name
// plus exact lookup by name.
type Index struct {
	matcher *phraseMatcher
	byName  map[string]entry // lowercase name -> canonical entry
}

type entry struct {
	canonical string
	category  string
}

// NewIndex builds a lexicon index. The lexicon is a required input: an empty
// one is a configuration error, not a degraded mode.
func NewIndex(entries []types.LexiconEntry) (*Index, error) {
	byName := make(map[string]entry)
	var patterns []string
	var targets []entry

	for _, le := range entries {
		for _, name := range le.Skills {
			name = strings.TrimSpace(name)
			if len(name) < 2 {
				continue
			}
			lower := strings.ToLower(name)
			if _, seen := byName[lower]; seen {
				continue
			}
			byName[lower] = entry{canonical: name, category: le.Category}
			patterns = append(patterns, lower)
			targets = append(targets, entry{canonical: name, category: le.Category})
		}
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("lexicon is empty: at least one skill entry is required")
	}

	return &Index{matcher: newPhraseMatcher(patterns, targets), byName: byName}, nil
}

// FindAll returns every word-bounded lexicon match in the text.
func (ix *Index) FindAll(text string) []Match {
	return ix.matcher.findAll(text)
}

// Lookup resolves a skill name to its canonical casing and category.
func (ix *Index) Lookup(name string) (canonical, category string, ok bool) {
	e, ok := ix.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", "", false
	}
	return e.canonical, e.category, true
}

// Names returns all canonical skill names, sorted. Used to seed the semantic
// matcher's vector collection.
func (ix *Index) Names() []string {
	names := make([]string, 0, len(ix.byName))
	for _, e := range ix.byName {
		names = append(names, e.canonical)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of distinct skills in the index.
func (ix *Index) Size() int {
	return len(ix.byName)
}

// AliasIndex maps surface-form variants ("K8s", "JS") to canonical skills.
// It serves both as a canonicalization step for other strategies' candidates
// and as a first-class extraction signal.
type AliasIndex struct {
	matcher *phraseMatcher
	byAlias map[string]types.AliasEntry
}

// NewAliasIndex builds an alias index. An empty alias table is allowed; the
// resulting index simply never matches.
func NewAliasIndex(entries []types.AliasEntry) *AliasIndex {
	byAlias := make(map[string]types.AliasEntry)
	var patterns []string
	var targets []entry

	for _, ae := range entries {
		alias := strings.TrimSpace(ae.Alias)
		if len(alias) < 2 || ae.CanonicalName == "" {
			continue
		}
		lower := strings.ToLower(alias)
		if _, seen := byAlias[lower]; seen {
			continue
		}
		byAlias[lower] = ae
		patterns = append(patterns, lower)
		targets = append(targets, entry{canonical: ae.CanonicalName, category: ae.Category})
	}

	var m *phraseMatcher
	if len(patterns) > 0 {
		m = newPhraseMatcher(patterns, targets)
	}
	return &AliasIndex{matcher: m, byAlias: byAlias}
}

// Resolve maps a term to its canonical name and category, case-insensitively.
func (ai *AliasIndex) Resolve(term string) (canonical, category string, ok bool) {
	ae, ok := ai.byAlias[strings.ToLower(strings.TrimSpace(term))]
	if !ok {
		return "", "", false
	}
	return ae.CanonicalName, ae.Category, true
}

// FindAll returns every word-bounded alias match in the text.
func (ai *AliasIndex) FindAll(text string) []Match {
	if ai.matcher == nil {
		return nil
	}
	return ai.matcher.findAll(text)
}

// Size returns the number of distinct aliases in the index.
func (ai *AliasIndex) Size() int {
	return len(ai.byAlias)
}
