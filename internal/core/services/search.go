package services

import (
	"context"
	"fmt"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driven"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driving"
	"github.com/darnYOURsocks/Ripplewin/internal/logger"
	"github.com/darnYOURsocks/Ripplewin/internal/query"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs faceted queries against the asset store.
type SearchService struct {
	store   driven.AssetStore
	metrics driving.MetricsService
}

// NewSearchService creates a new search service.
// The metrics parameter is optional (can be nil).
func NewSearchService(store driven.AssetStore, metrics driving.MetricsService) *SearchService {
	return &SearchService{
		store:   store,
		metrics: metrics,
	}
}

// Search parses q and returns every matching asset in ascending id order.
func (s *SearchService) Search(ctx context.Context, q string) ([]domain.AssetSummary, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", q)

	structured := query.Parse(q)
	preds := query.Compile(structured)
	logger.Debug("Parsed: free=%q topic=%q metaphor=%q hasStrategy=%v (%d predicates)",
		structured.FreeText, structured.Topic, structured.Metaphor, structured.HasStrategy, len(preds))

	var results []domain.AssetSummary
	err := track(ctx, s.metrics, domain.PhaseSearch, "search", func() error {
		var err error
		results, err = s.store.Find(ctx, preds)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("searching assets: %w", err)
	}

	logger.Debug("Results: %d", len(results))
	return results, nil
}

// Explain returns the structured form of q without running it.
func (s *SearchService) Explain(q string) domain.StructuredQuery {
	return query.Parse(q)
}
