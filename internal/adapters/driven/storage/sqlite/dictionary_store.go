package sqlite

import (
	"context"
	"fmt"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driven"
)

// dictionaryStore implements driven.DictionaryStore.
type dictionaryStore struct {
	store *Store
}

var _ driven.DictionaryStore = (*dictionaryStore)(nil)

// List returns all dictionary terms in insertion order.
func (s *dictionaryStore) List(ctx context.Context) ([]domain.DomainTerm, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, term, domain, science_definition, human_analogy, human_context_strategy, version
		FROM x_domain_dict ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying dictionary: %w", err)
	}
	defer rows.Close()

	terms := []domain.DomainTerm{}
	for rows.Next() {
		var t domain.DomainTerm
		if err := rows.Scan(&t.ID, &t.Term, &t.Domain, &t.ScienceDefinition,
			&t.HumanAnalogy, &t.HumanContextStrategy, &t.Version); err != nil {
			return nil, fmt.Errorf("scanning dictionary term: %w", err)
		}
		terms = append(terms, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dictionary: %w", err)
	}
	return terms, nil
}

// Count returns the number of dictionary terms.
func (s *dictionaryStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM x_domain_dict").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting dictionary: %w", err)
	}
	return n, nil
}

// Seed inserts terms only when the table is empty. The emptiness check and
// the inserts share one write transaction so concurrent opens seed once.
func (s *dictionaryStore) Seed(ctx context.Context, terms []domain.DomainTerm) (int, error) {
	s.store.writeMu.Lock()
	defer s.store.writeMu.Unlock()

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, unavailable("beginning transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	var existing int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM x_domain_dict").Scan(&existing); err != nil {
		return 0, fmt.Errorf("counting dictionary: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO x_domain_dict (term, domain, science_definition, human_analogy, human_context_strategy, version)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing dictionary insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range terms {
		version := t.Version
		if version == "" {
			version = "v1"
		}
		if _, err := stmt.ExecContext(ctx, t.Term, t.Domain, t.ScienceDefinition,
			t.HumanAnalogy, t.HumanContextStrategy, version); err != nil {
			return 0, unavailable("inserting dictionary term", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, unavailable("committing dictionary", err)
	}
	return len(terms), nil
}
