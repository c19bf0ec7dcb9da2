package services

import (
	"context"
	"fmt"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driven"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driving"
	"github.com/darnYOURsocks/Ripplewin/internal/logger"
)

// Ensure DictionaryService implements the interface.
var _ driving.DictionaryService = (*DictionaryService)(nil)

// DictionaryService exposes the reference dictionary and the active vocabulary.
type DictionaryService struct {
	store driven.DictionaryStore
	vocab domain.Vocabulary
}

// NewDictionaryService creates a new dictionary service.
func NewDictionaryService(store driven.DictionaryStore, vocab domain.Vocabulary) *DictionaryService {
	return &DictionaryService{
		store: store,
		vocab: vocab,
	}
}

// EnsureSeeded writes the vocabulary's terms to an empty dictionary.
// Returns the number of rows inserted (zero when already seeded).
func (s *DictionaryService) EnsureSeeded(ctx context.Context) (int, error) {
	n, err := s.store.Seed(ctx, s.vocab.Terms)
	if err != nil {
		return 0, fmt.Errorf("seeding dictionary: %w", err)
	}
	if n > 0 {
		logger.Debug("Seeded %d dictionary terms (version %s)", n, s.vocab.Version)
	}
	return n, nil
}

// List returns the stored dictionary terms.
func (s *DictionaryService) List(ctx context.Context) ([]domain.DomainTerm, error) {
	terms, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing dictionary: %w", err)
	}
	return terms, nil
}

// Vocabulary returns the trigger groups the annotator matches against.
func (s *DictionaryService) Vocabulary() domain.Vocabulary {
	return s.vocab
}
