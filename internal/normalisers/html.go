package normalisers

import (
	"html"
	"regexp"
	"strings"
)

// HTML extracts visible text from an HTML page.
type HTML struct{}

func (HTML) Name() string { return "html" }

func (HTML) Extensions() []string { return []string{".html", ".htm"} }

var (
	htmlHidden     = hiddenElements("script", "style", "noscript", "head", "svg")
	htmlComment    = regexp.MustCompile(`(?s)<!--.*?-->`)
	htmlBlockOpen  = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)[^>]*>`)
	htmlBlockClose = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)>`)
	htmlBreak      = regexp.MustCompile(`(?i)<(br|hr)\s*/?>`)
	htmlTag        = regexp.MustCompile(`<[^>]+>`)
	htmlSpaces     = regexp.MustCompile(`[ \t\x{00A0}]+`)
)

func hiddenElements(tags ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(tags))
	for i, tag := range tags {
		res[i] = regexp.MustCompile(`(?is)<` + tag + `[^>]*>.*?</` + tag + `>`)
	}
	return res
}

// Normalise drops hidden elements and tags, decodes entities and keeps one
// line per block element.
func (HTML) Normalise(content string) string {
	for _, re := range htmlHidden {
		content = re.ReplaceAllString(content, "")
	}
	content = htmlComment.ReplaceAllString(content, "")
	content = htmlBlockOpen.ReplaceAllString(content, "\n")
	content = htmlBlockClose.ReplaceAllString(content, "\n")
	content = htmlBreak.ReplaceAllString(content, "\n")
	content = htmlTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = htmlSpaces.ReplaceAllString(content, " ")

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
