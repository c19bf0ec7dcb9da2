package domain

import "strings"

// StructuredQuery is the parsed form of a query-language string.
// Empty strings and a false HasStrategy mean the clause is absent.
type StructuredQuery struct {
	FreeText    string `json:"free_text,omitempty"`
	Topic       string `json:"topic,omitempty"`
	Metaphor    string `json:"metaphor,omitempty"`
	HasStrategy bool   `json:"has_strategy,omitempty"`
}

// IsEmpty reports whether the query has no clauses and so matches all assets.
func (q StructuredQuery) IsEmpty() bool {
	return q.FreeText == "" && q.Topic == "" && q.Metaphor == "" && !q.HasStrategy
}

// PredicateKind identifies a predicate type.
type PredicateKind string

const (
	PredicateFreeText    PredicateKind = "free_text"
	PredicateTopic       PredicateKind = "topic"
	PredicateMetaphor    PredicateKind = "metaphor"
	PredicateHasStrategy PredicateKind = "has_strategy"
)

// Predicate is one conjunctive clause of a compiled query.
// Stores translate predicates into their own query form; Match evaluates
// the clause directly against an asset.
type Predicate interface {
	Kind() PredicateKind
	Match(rawText string, facets Facets) bool
}

// FreeTextPredicate is a case-sensitive substring match on raw text.
type FreeTextPredicate struct {
	Text string
}

func (p FreeTextPredicate) Kind() PredicateKind { return PredicateFreeText }

func (p FreeTextPredicate) Match(rawText string, _ Facets) bool {
	return strings.Contains(rawText, p.Text)
}

// TopicPredicate matches when a structure section contains Topic,
// ignoring case.
type TopicPredicate struct {
	Topic string
}

func (p TopicPredicate) Kind() PredicateKind { return PredicateTopic }

func (p TopicPredicate) Match(_ string, facets Facets) bool {
	needle := strings.ToLower(p.Topic)
	for _, section := range facets.Structure {
		if strings.Contains(strings.ToLower(section), needle) {
			return true
		}
	}
	return false
}

// MetaphorPredicate matches when either side of a metaphor pair contains
// Term, ignoring case.
type MetaphorPredicate struct {
	Term string
}

func (p MetaphorPredicate) Kind() PredicateKind { return PredicateMetaphor }

func (p MetaphorPredicate) Match(_ string, facets Facets) bool {
	needle := strings.ToLower(p.Term)
	for _, pair := range facets.Metaphors {
		if strings.Contains(strings.ToLower(pair.Trigger), needle) ||
			strings.Contains(strings.ToLower(pair.Concept), needle) {
			return true
		}
	}
	return false
}

// HasStrategyPredicate matches assets with at least one strategy record.
type HasStrategyPredicate struct{}

func (HasStrategyPredicate) Kind() PredicateKind { return PredicateHasStrategy }

func (HasStrategyPredicate) Match(_ string, facets Facets) bool {
	return len(facets.Strategy) > 0
}

// MatchAll reports whether every predicate matches.
func MatchAll(preds []Predicate, rawText string, facets Facets) bool {
	for _, p := range preds {
		if !p.Match(rawText, facets) {
			return false
		}
	}
	return true
}
