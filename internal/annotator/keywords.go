package annotator

import (
	"fmt"
	"regexp"
)

const (
	// DefaultMaxKeywords bounds the keyword facet.
	DefaultMaxKeywords = 50

	// DefaultMinKeywordLength is the shortest token kept.
	DefaultMinKeywordLength = 4
)

// Keywords extracts distinct lowercase tokens that start with a letter and
// continue with letters, digits, hyphens or periods.
type Keywords struct {
	max     int
	pattern *regexp.Regexp
}

// KeywordsOption configures the keywords stage.
type KeywordsOption func(*Keywords)

// WithMaxKeywords sets the maximum number of keywords kept.
func WithMaxKeywords(n int) KeywordsOption {
	return func(k *Keywords) {
		if n > 0 {
			k.max = n
		}
	}
}

// WithMinLength sets the minimum token length (at least 1).
func WithMinLength(n int) KeywordsOption {
	return func(k *Keywords) {
		if n > 0 {
			k.pattern = keywordPattern(n)
		}
	}
}

// NewKeywords creates a keywords stage.
func NewKeywords(opts ...KeywordsOption) *Keywords {
	k := &Keywords{
		max:     DefaultMaxKeywords,
		pattern: keywordPattern(DefaultMinKeywordLength),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func keywordPattern(minLen int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`[a-z][a-z0-9\-\.]{%d,}`, minLen-1))
}

// Name returns the stage name.
func (k *Keywords) Name() string {
	return "keywords"
}

// Apply fills Facets.Keywords in first-seen order.
func (k *Keywords) Apply(a *Annotation) {
	seen := make(map[string]bool)
	keywords := []string{}
	for _, tok := range k.pattern.FindAllString(a.Normalized, -1) {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
		if len(keywords) == k.max {
			break
		}
	}
	a.Facets.Keywords = keywords
}
