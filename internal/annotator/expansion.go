package annotator

import (
	"strings"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

const (
	// maxSentenceRunes is the longest sentence used as a context window.
	maxSentenceRunes = 160

	// windowRadius is the runes kept either side of a match when the
	// containing sentence is too long.
	windowRadius = 60
)

// Expansion builds framed terms, context windows and the humanized text.
type Expansion struct{}

// Name returns the stage name.
func (Expansion) Name() string {
	return "expansion"
}

// Apply fills the annotation's Expansion.
func (Expansion) Apply(a *Annotation) {
	runes := []rune(a.Raw)

	framed := make([]domain.FramedTerm, 0, len(a.Matches))
	windows := make([]domain.ContextWindow, 0, len(a.Matches))
	for _, m := range a.Matches {
		framed = append(framed, domain.FramedTerm{
			Term: m.Trigger.Word,
			Note: domain.FrameNote{
				Chem:  m.Trigger.Concept,
				Frame: frameFor(a.Vocabulary, m.Trigger),
			},
		})
		windows = append(windows, domain.ContextWindow{
			Term:     m.Trigger.Word,
			Window:   contextWindow(runes, m.Offset, len([]rune(m.Trigger.Word))),
			Position: m.Offset,
		})
	}

	a.Expansion = domain.Expansion{
		FramedTerms: framed,
		Windows:     windows,
		HumanizedSummary: joinFragments(a.FiredGroups(), func(g domain.TriggerGroup) string {
			return g.Humanized
		}),
	}
}

// frameFor returns the trigger's frame, falling back to the concept's
// dictionary strategy.
func frameFor(vocab *domain.Vocabulary, t domain.Trigger) string {
	if t.Frame != "" {
		return t.Frame
	}
	if term, ok := vocab.Term(t.Concept); ok {
		return term.HumanContextStrategy
	}
	return ""
}

// contextWindow returns the sentence containing the match at offset, or a
// fixed window around it when that sentence is longer than maxSentenceRunes.
func contextWindow(runes []rune, offset, length int) string {
	if offset < 0 || offset > len(runes) {
		return ""
	}

	start := offset
	for start > 0 && !isSentenceEnd(runes[start-1]) {
		start--
	}
	end := offset + length
	if end > len(runes) {
		end = len(runes)
	}
	for end < len(runes) && !isSentenceEnd(runes[end-1]) {
		end++
	}

	if end-start > maxSentenceRunes {
		start = max(offset-windowRadius, 0)
		end = min(offset+length+windowRadius, len(runes))
	}

	return strings.TrimSpace(string(runes[start:end]))
}

func isSentenceEnd(r rune) bool {
	switch r {
	case '.', '!', '?', '\n':
		return true
	}
	return false
}
