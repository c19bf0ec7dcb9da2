package driven

import (
	"context"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// DictionaryStore persists the domain dictionary reference table.
type DictionaryStore interface {
	// List returns all dictionary terms in insertion order.
	List(ctx context.Context) ([]domain.DomainTerm, error)

	// Count returns the number of terms.
	Count(ctx context.Context) (int, error)

	// Seed inserts terms if and only if the dictionary is empty.
	// Returns the number of rows inserted.
	Seed(ctx context.Context, terms []domain.DomainTerm) (int, error)
}
