package strategies

import (
	"regexp"
	"strings"
)

// Inclusion heuristics shared by the entity and noun-chunk strategies. They
// exist to keep low-precision sources from flooding the ensemble with
// locations, employment boilerplate, and culture phrases.

const (
	minSpanLength = 3
	maxSpanLength = 30
)

var (
	timePeriodRe = regexp.MustCompile(`(?i)^\d+\s*\+?\s*(years?|yrs?|months?)\b`)
	regionCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)
)

// genericPhrases collects spans that look like entities but never denote a
// skill: locations, employment-type boilerplate, culture phrases, and
// call-to-action phrases.
var genericPhrases = map[string]struct{}{
	"remote":               {},
	"hybrid":               {},
	"on-site":              {},
	"onsite":               {},
	"united states":        {},
	"united kingdom":       {},
	"new york":             {},
	"san francisco":        {},
	"london":               {},
	"full time":            {},
	"full-time":            {},
	"part time":            {},
	"part-time":            {},
	"contract":             {},
	"permanent":            {},
	"equal opportunity":    {},
	"competitive salary":   {},
	"cover letter":         {},
	"apply now":            {},
	"apply today":          {},
	"join us":              {},
	"join our team":        {},
	"our team":             {},
	"the team":             {},
	"work-life balance":    {},
	"work life balance":    {},
	"fast-paced":           {},
	"fast paced":           {},
	"great culture":        {},
	"company culture":      {},
	"health insurance":     {},
	"dental":               {},
	"bachelor":             {},
	"bachelor's degree":    {},
	"degree":               {},
	"salary":               {},
	"benefits":             {},
}

// openerPrefixes reject spans that begin with conversational openers.
var openerPrefixes = []string{
	"we are", "we're", "we offer", "you will", "you'll", "you are",
	"our ", "the ideal candidate", "as a ", "this is",
}

// Acceptable reports whether a raw span passes the shared inclusion
// heuristics: length 3-30 characters, not a time period, not a 2-letter
// region code, not a known generic phrase, not a conversational opener.
func Acceptable(span string) bool {
	s := strings.TrimSpace(span)
	if len(s) < minSpanLength || len(s) > maxSpanLength {
		return false
	}
	if timePeriodRe.MatchString(s) {
		return false
	}
	if regionCodeRe.MatchString(s) {
		return false
	}
	lower := strings.ToLower(s)
	if _, deny := genericPhrases[lower]; deny {
		return false
	}
	for _, prefix := range openerPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	return true
}
