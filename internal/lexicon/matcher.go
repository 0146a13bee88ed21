package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"

	ahocorasick "github.com/BobuSumisu/aho-corasick"
)

// phraseMatcher finds all occurrences of a fixed pattern set in a single pass
// using an Aho-Corasick automaton. Patterns are stored lowercased; input is
// lowercased before matching, and raw matches are filtered to word boundaries
// so "Go" never matches inside "Google".
type phraseMatcher struct {
	trie    *ahocorasick.Trie
	targets []entry // indexed by pattern id, insertion order
}

func newPhraseMatcher(patterns []string, targets []entry) *phraseMatcher {
	builder := ahocorasick.NewTrieBuilder()
	builder.AddStrings(patterns)
	return &phraseMatcher{trie: builder.Build(), targets: targets}
}

func (m *phraseMatcher) findAll(text string) []Match {
	lower := strings.ToLower(text)

	// Lowercasing can change byte length for a handful of runes (U+0130 and
	// friends), which would shift every offset after the first such rune.
	// Only then is the offset map built; ASCII-heavy text takes the fast path.
	var offsets []int
	if len(lower) != len(text) {
		lower, offsets = lowerWithOffsets(text)
	}

	var out []Match
	for _, hit := range m.trie.MatchString(lower) {
		start := int(hit.Pos())
		end := start + len(hit.MatchString())
		if !wordBounded(lower, start, end) {
			continue
		}
		if offsets != nil {
			start, end = offsets[start], offsets[end]
		}
		t := m.targets[hit.Pattern()]
		out = append(out, Match{
			Surface:       text[start:end],
			CanonicalName: t.canonical,
			Category:      t.category,
			Start:         start,
			End:           end,
		})
	}
	return out
}

// lowerWithOffsets lowercases rune by rune, recording for every byte of the
// lowered string the starting byte offset of the original rune it came from.
// The extra trailing entry maps the end-of-string position.
func lowerWithOffsets(text string) (string, []int) {
	var b strings.Builder
	b.Grow(len(text))
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		lr := unicode.ToLower(r)
		for j := 0; j < utf8.RuneLen(lr); j++ {
			offsets = append(offsets, i)
		}
		b.WriteRune(lr)
	}
	offsets = append(offsets, len(text))
	return b.String(), offsets
}

// wordBounded reports whether text[start:end] is not embedded in a larger
// alphanumeric token.
func wordBounded(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
