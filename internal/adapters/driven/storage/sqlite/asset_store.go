package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driven"
	"github.com/darnYOURsocks/Ripplewin/internal/logger"
)

// assetStore implements driven.AssetStore.
type assetStore struct {
	store *Store
}

var _ driven.AssetStore = (*assetStore)(nil)

const assetSummaryColumns = `id, raw_text, summary_text, keywords_json, metaphors_json, structure_json, strategy_json`

// Create persists the asset and its expansion in one IMMEDIATE transaction.
func (s *assetStore) Create(ctx context.Context, asset domain.Asset, expansion domain.Expansion) (int64, error) {
	enc, err := domain.EncodeFacets(asset.Facets)
	if err != nil {
		return 0, fmt.Errorf("encoding facets: %w", err)
	}
	framed, windows, err := encodeExpansion(expansion)
	if err != nil {
		return 0, err
	}

	if asset.Type == "" {
		asset.Type = domain.DefaultAssetType
	}
	if asset.CreatedAt == 0 {
		asset.CreatedAt = time.Now().Unix()
	}

	s.store.writeMu.Lock()
	defer s.store.writeMu.Unlock()

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, unavailable("beginning transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	res, err := tx.ExecContext(ctx, `
		INSERT INTO assets (type, source, created_at, raw_text,
			keywords_json, metaphors_json, structure_json, strategy_json, summary_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, asset.Type, asset.Source, asset.CreatedAt, asset.RawText,
		enc.Keywords, enc.Metaphors, enc.Structure, enc.Strategy, enc.Summary)
	if err != nil {
		return 0, unavailable("inserting asset", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, unavailable("reading asset id", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO expansions (asset_id, framed_terms_json, raw_filter_json, humanized_summary_text, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, framed, windows, expansion.HumanizedSummary, asset.CreatedAt)
	if err != nil {
		return 0, unavailable("inserting expansion", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, unavailable("committing asset", err)
	}
	return id, nil
}

// Find returns every asset matching all predicates, ascending by id.
func (s *assetStore) Find(ctx context.Context, preds []domain.Predicate) ([]domain.AssetSummary, error) {
	where, args, err := compilePredicates(preds)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.db.QueryContext(ctx,
		"SELECT "+assetSummaryColumns+" FROM assets"+where+" ORDER BY id ASC", args...)
	if err != nil {
		return nil, fmt.Errorf("querying assets: %w", err)
	}
	defer rows.Close()

	results := []domain.AssetSummary{}
	for rows.Next() {
		var a domain.AssetSummary
		var summary, keywords, metaphors, structure, strat sql.NullString
		if err := rows.Scan(&a.ID, &a.RawText, &summary, &keywords, &metaphors, &structure, &strat); err != nil {
			return nil, fmt.Errorf("scanning asset: %w", err)
		}
		a.Summary = summary.String
		a.Keywords = domain.FacetBlob{Name: domain.FacetKeywords, Raw: keywords.String}
		a.Metaphors = domain.FacetBlob{Name: domain.FacetMetaphors, Raw: metaphors.String}
		a.Structure = domain.FacetBlob{Name: domain.FacetStructure, Raw: structure.String}
		a.Strategy = domain.FacetBlob{Name: domain.FacetStrategy, Raw: strat.String}
		results = append(results, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assets: %w", err)
	}
	return results, nil
}

// Get retrieves an asset with the humanized text of its latest expansion.
func (s *assetStore) Get(ctx context.Context, id int64) (*domain.AssetDetail, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT a.id, a.type, a.source, a.created_at, a.raw_text, a.summary_text,
			a.keywords_json, a.metaphors_json, a.structure_json, a.strategy_json,
			(SELECT e.humanized_summary_text FROM expansions e
				WHERE e.asset_id = a.id ORDER BY e.id DESC LIMIT 1)
		FROM assets a WHERE a.id = ?
	`, id)

	var d domain.AssetDetail
	var summary, humanized, keywords, metaphors, structure, strat sql.NullString
	err := row.Scan(&d.ID, &d.Type, &d.Source, &d.CreatedAt, &d.RawText, &summary,
		&keywords, &metaphors, &structure, &strat, &humanized)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning asset: %w", err)
	}

	d.Summary = summary.String
	d.Humanized = humanized.String
	d.Keywords = domain.FacetBlob{Name: domain.FacetKeywords, Raw: keywords.String}
	d.Metaphors = domain.FacetBlob{Name: domain.FacetMetaphors, Raw: metaphors.String}
	d.Structure = domain.FacetBlob{Name: domain.FacetStructure, Raw: structure.String}
	d.Strategy = domain.FacetBlob{Name: domain.FacetStrategy, Raw: strat.String}
	return &d, nil
}

// LatestExpansion returns the newest expansion for an asset.
func (s *assetStore) LatestExpansion(ctx context.Context, assetID int64) (*domain.Expansion, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, asset_id, framed_terms_json, raw_filter_json, humanized_summary_text, created_at
		FROM expansions WHERE asset_id = ? ORDER BY id DESC LIMIT 1
	`, assetID)
	if err != nil {
		return nil, fmt.Errorf("querying expansion: %w", err)
	}
	defer rows.Close()

	expansions, err := scanExpansions(rows)
	if err != nil {
		return nil, err
	}
	if len(expansions) == 0 {
		return nil, domain.ErrNotFound
	}
	return &expansions[0], nil
}

// ListExpansions returns all expansions for an asset, newest first.
func (s *assetStore) ListExpansions(ctx context.Context, assetID int64) ([]domain.Expansion, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, asset_id, framed_terms_json, raw_filter_json, humanized_summary_text, created_at
		FROM expansions WHERE asset_id = ? ORDER BY id DESC
	`, assetID)
	if err != nil {
		return nil, fmt.Errorf("querying expansions: %w", err)
	}
	defer rows.Close()

	return scanExpansions(rows)
}

// Count returns the number of stored assets.
func (s *assetStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM assets").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting assets: %w", err)
	}
	return n, nil
}

func scanExpansions(rows *sql.Rows) ([]domain.Expansion, error) {
	expansions := []domain.Expansion{}
	for rows.Next() {
		var e domain.Expansion
		var framed, windows string
		if err := rows.Scan(&e.ID, &e.AssetID, &framed, &windows, &e.HumanizedSummary, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning expansion: %w", err)
		}
		if err := json.Unmarshal([]byte(framed), &e.FramedTerms); err != nil {
			e.FramedTerms = nil
			e.Malformed = append(e.Malformed, malformedList(e, domain.ExpansionFramedTerms, framed, err))
		}
		if e.FramedTerms == nil {
			e.FramedTerms = []domain.FramedTerm{}
		}
		if err := json.Unmarshal([]byte(windows), &e.Windows); err != nil {
			e.Windows = nil
			e.Malformed = append(e.Malformed, malformedList(e, domain.ExpansionWindows, windows, err))
		}
		if e.Windows == nil {
			e.Windows = []domain.ContextWindow{}
		}
		expansions = append(expansions, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expansions: %w", err)
	}
	return expansions, nil
}

// malformedList keeps an undecodable expansion list as stored.
func malformedList(e domain.Expansion, name, raw string, err error) domain.FacetBlob {
	logger.Warn("expansion %d: %s is malformed: %v", e.ID, name, err)
	return domain.FacetBlob{Name: name, Raw: raw}
}

// encodeExpansion serialises the expansion lists, writing [] for nil.
func encodeExpansion(e domain.Expansion) (framed, windows string, err error) {
	terms := e.FramedTerms
	if terms == nil {
		terms = []domain.FramedTerm{}
	}
	wins := e.Windows
	if wins == nil {
		wins = []domain.ContextWindow{}
	}

	f, err := json.Marshal(terms)
	if err != nil {
		return "", "", fmt.Errorf("marshalling framed terms: %w", err)
	}
	w, err := json.Marshal(wins)
	if err != nil {
		return "", "", fmt.Errorf("marshalling context windows: %w", err)
	}
	return string(f), string(w), nil
}

// unavailable wraps a write failure as domain.ErrStoreUnavailable.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
}
