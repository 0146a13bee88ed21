package segment

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	multiSpaceRe = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n\n\n+`)
)

// NormalizeHTML converts possibly-HTML input into plain text: tags stripped,
// entities decoded, block elements separated by line breaks. Malformed markup
// falls back to a tag-stripping regex rather than failing.
func NormalizeHTML(raw string) string {
	if !strings.Contains(raw, "<") {
		return cleanText(raw)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return cleanText(html.UnescapeString(tagRe.ReplaceAllString(raw, " ")))
	}

	doc.Find("script, style, noscript").Remove()
	// Block elements would otherwise collapse into one run of text.
	doc.Find("p, div, li, ul, ol, h1, h2, h3, h4, h5, h6, tr, section, article").Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml("\n")
	})
	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithHtml("\n")
	})

	return cleanText(doc.Text())
}

// cleanText normalizes line endings and whitespace while preserving line
// structure, so heading detection still sees headings on their own lines.
func cleanText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = multiSpaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = blankLinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
