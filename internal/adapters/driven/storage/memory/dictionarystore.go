package memory

import (
	"context"
	"sync"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driven"
)

// Ensure DictionaryStore implements the interface.
var _ driven.DictionaryStore = (*DictionaryStore)(nil)

// DictionaryStore is an in-memory implementation of driven.DictionaryStore.
type DictionaryStore struct {
	mu    sync.RWMutex
	terms []domain.DomainTerm
}

// NewDictionaryStore creates a new in-memory dictionary store.
func NewDictionaryStore() *DictionaryStore {
	return &DictionaryStore{}
}

// List returns all terms in insertion order.
func (s *DictionaryStore) List(_ context.Context) ([]domain.DomainTerm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.DomainTerm, len(s.terms))
	copy(result, s.terms)
	return result, nil
}

// Count returns the number of terms.
func (s *DictionaryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.terms), nil
}

// Seed inserts terms only when the dictionary is empty.
func (s *DictionaryStore) Seed(_ context.Context, terms []domain.DomainTerm) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.terms) > 0 {
		return 0, nil
	}
	for i, t := range terms {
		t.ID = int64(i + 1)
		if t.Version == "" {
			t.Version = "v1"
		}
		s.terms = append(s.terms, t)
	}
	return len(terms), nil
}
