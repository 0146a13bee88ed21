package strategies

import (
	"strings"
	"unicode"
)

// stopwords dropped during normalization. Determiners and glue words never
// belong in a canonical skill name.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "of": {}, "and": {}, "or": {},
	"with": {}, "in": {}, "for": {}, "to": {}, "on": {}, "at": {},
	"using": {}, "via": {}, "such": {}, "as": {}, "is": {}, "are": {},
}

// edgePunct is trimmed from token edges. Inner punctuation survives so names
// like "Node.js" and "CI/CD" stay intact.
const edgePunct = ",;:()[]{}\"'!?*"

// Normalize cleans a raw candidate span into a presentable skill name: edge
// punctuation stripped, determiners and stopwords dropped, lowercase tokens
// title-cased. All-caps and internally mixed-case tokens ("AWS", "JavaScript")
// are preserved verbatim.
func Normalize(raw string) string {
	var kept []string
	for _, tok := range strings.Fields(raw) {
		tok = strings.Trim(tok, edgePunct)
		tok = strings.TrimSuffix(tok, ".")
		if tok == "" {
			continue
		}
		if _, stop := stopwords[strings.ToLower(tok)]; stop {
			continue
		}
		kept = append(kept, titleToken(tok))
	}
	return strings.Join(kept, " ")
}

// titleToken title-cases a fully lowercase token and leaves anything with
// existing uppercase (acronyms, camel case) untouched.
func titleToken(tok string) string {
	if tok != strings.ToLower(tok) {
		return tok
	}
	runes := []rune(tok)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
