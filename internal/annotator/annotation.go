package annotator

import (
	"strings"
	"unicode/utf8"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// Match is a trigger found in the normalized text.
type Match struct {
	// Group is the index of the trigger's group in the vocabulary.
	Group int

	// Trigger is the matched vocabulary entry.
	Trigger domain.Trigger

	// Offset is the rune offset of the first occurrence.
	Offset int
}

// Annotation is the state shared by pipeline stages.
type Annotation struct {
	// Raw is the input text as given.
	Raw string

	// Normalized is the lowercased input.
	Normalized string

	// Vocabulary is the vocabulary the matches were computed against.
	Vocabulary *domain.Vocabulary

	// Matches holds fired triggers in vocabulary order, one per trigger word.
	Matches []Match

	// Facets and Expansion are filled in by stages.
	Facets    domain.Facets
	Expansion domain.Expansion
}

// newAnnotation lowercases raw and matches it against the vocabulary.
func newAnnotation(raw string, vocab *domain.Vocabulary) *Annotation {
	a := &Annotation{
		Raw:        raw,
		Normalized: strings.ToLower(raw),
		Vocabulary: vocab,
	}

	seen := make(map[string]bool)
	for gi, group := range vocab.Groups {
		for _, trig := range group.Triggers {
			word := strings.ToLower(trig.Word)
			if word == "" || seen[word] {
				continue
			}
			idx := strings.Index(a.Normalized, word)
			if idx < 0 {
				continue
			}
			seen[word] = true
			a.Matches = append(a.Matches, Match{
				Group:   gi,
				Trigger: trig,
				Offset:  utf8.RuneCountInString(a.Normalized[:idx]),
			})
		}
	}

	return a
}

// FiredGroups returns the fired groups in definition order.
func (a *Annotation) FiredGroups() []domain.TriggerGroup {
	fired := make([]bool, len(a.Vocabulary.Groups))
	for _, m := range a.Matches {
		fired[m.Group] = true
	}

	var groups []domain.TriggerGroup
	for i, ok := range fired {
		if ok {
			groups = append(groups, a.Vocabulary.Groups[i])
		}
	}
	return groups
}
