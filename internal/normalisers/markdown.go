package normalisers

import (
	"regexp"
	"strings"
)

// Markdown strips common Markdown syntax, keeping the prose.
type Markdown struct{}

func (Markdown) Name() string { return "markdown" }

func (Markdown) Extensions() []string { return []string{".md", ".markdown"} }

var (
	mdCodeBlock    = regexp.MustCompile("(?s)```.*?```")
	mdInlineCode   = regexp.MustCompile("`([^`]+)`")
	mdImage        = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	mdLink         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	mdHeading      = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdEmphasis     = regexp.MustCompile(`(\*\*|__|\*|_)([^*_\n]+)(\*\*|__|\*|_)`)
	mdBlockquote   = regexp.MustCompile(`(?m)^>\s?`)
	mdRule         = regexp.MustCompile(`(?m)^\s*[-*_]{3,}\s*$`)
	mdBullet       = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	mdNumbered     = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	mdManyNewlines = regexp.MustCompile(`\n{3,}`)
)

// Normalise removes code blocks and images, unwraps links, emphasis and
// inline code, and drops heading, quote and list markers.
func (Markdown) Normalise(content string) string {
	content = mdCodeBlock.ReplaceAllString(content, "")
	content = mdImage.ReplaceAllString(content, "")
	content = mdLink.ReplaceAllString(content, "$1")
	content = mdInlineCode.ReplaceAllString(content, "$1")
	content = mdRule.ReplaceAllString(content, "")
	content = mdHeading.ReplaceAllString(content, "")
	content = mdBlockquote.ReplaceAllString(content, "")
	content = mdBullet.ReplaceAllString(content, "")
	content = mdNumbered.ReplaceAllString(content, "")
	content = mdEmphasis.ReplaceAllString(content, "$2")
	content = mdManyNewlines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
