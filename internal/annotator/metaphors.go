package annotator

import "github.com/darnYOURsocks/Ripplewin/internal/core/domain"

// Metaphors emits one (trigger, concept) pair per fired trigger.
type Metaphors struct{}

// Name returns the stage name.
func (Metaphors) Name() string {
	return "metaphors"
}

// Apply fills Facets.Metaphors in vocabulary order.
func (Metaphors) Apply(a *Annotation) {
	pairs := make([]domain.MetaphorPair, 0, len(a.Matches))
	for _, m := range a.Matches {
		pairs = append(pairs, domain.MetaphorPair{
			Trigger: m.Trigger.Word,
			Concept: m.Trigger.Concept,
		})
	}
	a.Facets.Metaphors = pairs
}
