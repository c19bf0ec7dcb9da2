// Package query parses the Ripple query mini-language.
//
//	query := token*
//	token := "topic:" VALUE | "metaphor:" VALUE | "hasStrategy:true" | FREEWORD
//
// Tokens are whitespace-delimited. Prefixes match case-insensitively and,
// when a prefix repeats, the last occurrence wins. Tokens that are not one
// of the structured forms are rejoined in order as free text.
package query

import (
	"strings"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

const (
	prefixTopic    = "topic:"
	prefixMetaphor = "metaphor:"
	tokenStrategy  = "hasstrategy:true"
)

// Parse splits a query string into its structured form. It never fails.
func Parse(s string) domain.StructuredQuery {
	var q domain.StructuredQuery
	var free []string

	for _, tok := range strings.Fields(s) {
		if v, ok := cutPrefixFold(tok, prefixTopic); ok {
			if v != "" {
				q.Topic = v
			}
			continue
		}
		if v, ok := cutPrefixFold(tok, prefixMetaphor); ok {
			if v != "" {
				q.Metaphor = v
			}
			continue
		}
		if strings.EqualFold(tok, tokenStrategy) {
			q.HasStrategy = true
			continue
		}
		free = append(free, tok)
	}

	q.FreeText = strings.Join(free, " ")
	return q
}

// cutPrefixFold is strings.CutPrefix with a case-insensitive prefix.
// The remainder is sliced from tok itself, so its bytes are untouched.
func cutPrefixFold(tok, prefix string) (string, bool) {
	if len(tok) < len(prefix) || !strings.EqualFold(tok[:len(prefix)], prefix) {
		return "", false
	}
	return tok[len(prefix):], true
}

// Compile turns a structured query into conjunctive predicates.
// An empty query compiles to no predicates, which matches everything.
func Compile(q domain.StructuredQuery) []domain.Predicate {
	var preds []domain.Predicate
	if q.FreeText != "" {
		preds = append(preds, domain.FreeTextPredicate{Text: q.FreeText})
	}
	if q.Topic != "" {
		preds = append(preds, domain.TopicPredicate{Topic: q.Topic})
	}
	if q.Metaphor != "" {
		preds = append(preds, domain.MetaphorPredicate{Term: q.Metaphor})
	}
	if q.HasStrategy {
		preds = append(preds, domain.HasStrategyPredicate{})
	}
	return preds
}

// ParseAndCompile parses s and compiles the result.
func ParseAndCompile(s string) []domain.Predicate {
	return Compile(Parse(s))
}

// Format renders a structured query in canonical query-language form.
func Format(q domain.StructuredQuery) string {
	var parts []string
	if q.Topic != "" {
		parts = append(parts, prefixTopic+q.Topic)
	}
	if q.Metaphor != "" {
		parts = append(parts, prefixMetaphor+q.Metaphor)
	}
	if q.HasStrategy {
		parts = append(parts, "hasStrategy:true")
	}
	if q.FreeText != "" {
		parts = append(parts, q.FreeText)
	}
	return strings.Join(parts, " ")
}
