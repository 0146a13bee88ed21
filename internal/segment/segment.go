// Package segment normalizes job posting text and partitions it into labeled
// sections for the extraction strategies.
package segment

import (
	"sort"
	"strings"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

// Section type used when no headings are recognized and the full text is
// returned as a single relevant section.
const fullTextSection = "full_text"

// preambleSection labels the content before the first recognized heading.
const preambleSection = "preamble"

// Segmenter partitions plain or HTML text into sections using configured
// heading keyword lists.
type Segmenter struct {
	relevant  []string
	excluded  []string
	minLen    int
	rescueLen int
}

// New creates a Segmenter. Heading keywords are matched case-insensitively at
// any position in the text.
func New(relevant, excluded []string, minLen, rescueLen int) *Segmenter {
	return &Segmenter{
		relevant:  lowerAll(relevant),
		excluded:  lowerAll(excluded),
		minLen:    minLen,
		rescueLen: rescueLen,
	}
}

type headingMatch struct {
	pos      int
	keyword  string
	relevant bool
}

// Segment slices already-normalized plain text into sections. Inputs that may
// contain HTML go through NormalizeHTML first; Segment itself never parses
// markup. The fallback policy trades precision for recall when structure is
// weak: it must never silently drop all content.
func (s *Segmenter) Segment(plain string) []types.Section {
	if strings.TrimSpace(plain) == "" {
		return nil
	}

	matches := s.findHeadings(strings.ToLower(plain))

	// Fallback (a): no headings at all, treat the whole text as relevant.
	if len(matches) == 0 {
		return []types.Section{{Type: fullTextSection, Text: plain, Relevant: true}}
	}

	sections := s.slice(plain, matches)

	// A heading can match in a document so short that every sliced section
	// falls under the length floor. Dropping everything would make a
	// heading-bearing document extract worse than a headingless one, so the
	// full text is returned instead.
	if len(sections) == 0 {
		return []types.Section{{Type: fullTextSection, Text: plain, Relevant: true}}
	}

	// Fallback (b): with weak structure, rescue long excluded sections that
	// likely mix real content with boilerplate.
	if countRelevant(sections) < 3 {
		for i := range sections {
			if !sections[i].Relevant && len(sections[i].Text) >= s.rescueLen {
				sections[i].Relevant = true
			}
		}
	}

	// Fallback (c): if nothing is relevant, everything is.
	if countRelevant(sections) == 0 {
		for i := range sections {
			sections[i].Relevant = true
		}
	}

	return sections
}

// findHeadings locates every occurrence of each heading keyword, keeping the
// earliest non-overlapping positions sorted by offset.
func (s *Segmenter) findHeadings(lower string) []headingMatch {
	var matches []headingMatch
	add := func(keyword string, relevant bool) {
		from := 0
		for {
			idx := strings.Index(lower[from:], keyword)
			if idx < 0 {
				return
			}
			matches = append(matches, headingMatch{pos: from + idx, keyword: keyword, relevant: relevant})
			from += idx + len(keyword)
		}
	}
	for _, kw := range s.relevant {
		add(kw, true)
	}
	for _, kw := range s.excluded {
		add(kw, false)
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].pos < matches[j].pos })

	// Overlapping keywords ("requirements" vs "preferred qualifications")
	// can match at nearly the same offset; keep the first at each position.
	deduped := matches[:0]
	lastEnd := -1
	for _, m := range matches {
		if m.pos <= lastEnd {
			continue
		}
		deduped = append(deduped, m)
		lastEnd = m.pos + len(m.keyword)
	}
	return deduped
}

// slice cuts the text between consecutive heading matches into sections and
// discards sections shorter than the minimum length.
func (s *Segmenter) slice(plain string, matches []headingMatch) []types.Section {
	var sections []types.Section

	if matches[0].pos > 0 {
		head := strings.TrimSpace(plain[:matches[0].pos])
		if len(head) >= s.minLen {
			sections = append(sections, types.Section{Type: preambleSection, Text: head, Relevant: false})
		}
	}

	for i, m := range matches {
		end := len(plain)
		if i+1 < len(matches) {
			end = matches[i+1].pos
		}
		body := strings.TrimSpace(plain[m.pos:end])
		if len(body) < s.minLen {
			continue
		}
		sections = append(sections, types.Section{Type: m.keyword, Text: body, Relevant: m.relevant})
	}

	return sections
}

func countRelevant(sections []types.Section) int {
	n := 0
	for _, sec := range sections {
		if sec.Relevant {
			n++
		}
	}
	return n
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
