package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredQuery_IsEmpty(t *testing.T) {
	assert.True(t, StructuredQuery{}.IsEmpty())
	assert.False(t, StructuredQuery{Topic: "loop"}.IsEmpty())
	assert.False(t, StructuredQuery{HasStrategy: true}.IsEmpty())
}

func TestPredicates_Match(t *testing.T) {
	facets := Facets{
		Metaphors: []MetaphorPair{{Trigger: "dirty", Concept: "impurity"}},
		Structure: []string{"Impurity control", "Chelation"},
		Strategy:  []StrategyRecord{{Control: "chelation", Actions: []string{"dialogue"}}},
	}
	raw := "I feel Dirty all the time"

	tests := []struct {
		name     string
		pred     Predicate
		facets   Facets
		expected bool
	}{
		{"free text exact case", FreeTextPredicate{Text: "Dirty"}, facets, true},
		{"free text is case sensitive", FreeTextPredicate{Text: "dirty"}, facets, false},
		{"topic substring any case", TopicPredicate{Topic: "IMPURITY"}, facets, true},
		{"topic partial", TopicPredicate{Topic: "chela"}, facets, true},
		{"topic miss", TopicPredicate{Topic: "radical"}, facets, false},
		{"metaphor trigger side", MetaphorPredicate{Term: "DIR"}, facets, true},
		{"metaphor concept side", MetaphorPredicate{Term: "purity"}, facets, true},
		{"metaphor miss", MetaphorPredicate{Term: "scavenger"}, facets, false},
		{"has strategy", HasStrategyPredicate{}, facets, true},
		{"no strategy", HasStrategyPredicate{}, Facets{}, false},
		{"topic on absent structure", TopicPredicate{Topic: "x"}, Facets{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pred.Match(raw, tt.facets))
		})
	}
}

func TestMatchAll(t *testing.T) {
	facets := Facets{Structure: []string{"Radical control"}}

	assert.True(t, MatchAll(nil, "anything", facets))
	assert.True(t, MatchAll([]Predicate{TopicPredicate{Topic: "radical"}, FreeTextPredicate{Text: "loop"}}, "a loop", facets))
	assert.False(t, MatchAll([]Predicate{TopicPredicate{Topic: "radical"}, HasStrategyPredicate{}}, "a loop", facets))
}
