// Package strategies implements the individual skill extraction strategies.
// Every strategy is a pure function over a section plus shared immutable
// inputs (the lexicon/alias indexes and loaded model handles); strategies
// write only local candidate lists and are safe to run concurrently.
package strategies

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// Strategy is the contract every extraction strategy implements. The engine
// holds a list of this interface, so new strategies can be added without
// touching the merge or scoring logic.
type Strategy interface {
	// Name returns the extraction method identifier stamped on candidates.
	Name() string

	// Extract produces raw skill candidates from one section. Errors are
	// isolated by the engine: a failing strategy is logged and skipped for
	// the document, never aborting the other strategies.
	Extract(ctx context.Context, section types.Section) ([]types.SkillCandidate, error)
}

// Snippet returns a window of text around [start, end), with ellipsis markers
// when truncated. Used both for scoring and for human review.
func Snippet(text string, start, end, window int) string {
	from := start - window
	if from < 0 {
		from = 0
	}
	to := end + window
	if to > len(text) {
		to = len(text)
	}
	// Stay on rune boundaries.
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}

	out := strings.TrimSpace(text[from:to])
	if from > 0 {
		out = "..." + out
	}
	if to < len(text) {
		out += "..."
	}
	return out
}

// snippetFor locates span in text and builds its context snippet. Returns the
// span itself when not found (a strategy may have transformed it).
func snippetFor(text, span string, window int) string {
	idx := strings.Index(text, span)
	if idx < 0 {
		idx = strings.Index(strings.ToLower(text), strings.ToLower(span))
	}
	if idx < 0 {
		return span
	}
	return Snippet(text, idx, idx+len(span), window)
}
