package driving

import (
	"context"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// DictionaryService exposes the domain dictionary and active vocabulary.
type DictionaryService interface {
	// List returns the stored dictionary terms.
	List(ctx context.Context) ([]domain.DomainTerm, error)

	// Vocabulary returns the trigger groups the annotator matches against.
	Vocabulary() domain.Vocabulary
}
