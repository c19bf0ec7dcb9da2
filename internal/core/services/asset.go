package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driven"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driving"
	"github.com/darnYOURsocks/Ripplewin/internal/logger"
)

// Ensure AssetService implements the interface.
var _ driving.AssetService = (*AssetService)(nil)

// AssetService annotates and stores text, and looks assets up by id.
type AssetService struct {
	store     driven.AssetStore
	annotator driven.Annotator
	metrics   driving.MetricsService
}

// NewAssetService creates a new asset service.
// The metrics parameter is optional (can be nil).
func NewAssetService(store driven.AssetStore, annotator driven.Annotator, metrics driving.MetricsService) *AssetService {
	return &AssetService{
		store:     store,
		annotator: annotator,
		metrics:   metrics,
	}
}

// Ingest annotates rawText and persists it with its expansion in one
// transaction. Blank text is rejected before annotation runs.
func (s *AssetService) Ingest(ctx context.Context, rawText string, opts domain.IngestOptions) (int64, error) {
	logger.Section("Ingest")

	if strings.TrimSpace(rawText) == "" {
		return 0, track(ctx, s.metrics, domain.PhaseValidate, "empty_input", func() error {
			return domain.ErrEmptyInput
		})
	}

	var id int64
	err := track(ctx, s.metrics, domain.PhaseIngest, "ingest", func() error {
		facets, expansion := s.annotator.Annotate(rawText)
		logger.Debug("Keywords: %d, metaphors: %d, sections: %v",
			len(facets.Keywords), len(facets.Metaphors), facets.Structure)

		asset := domain.Asset{
			Type:    opts.Type,
			Source:  opts.Source,
			RawText: rawText,
			Facets:  facets,
		}
		if asset.Type == "" {
			asset.Type = domain.DefaultAssetType
		}

		var err error
		id, err = s.store.Create(ctx, asset, expansion)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("ingesting asset: %w", err)
	}

	logger.Debug("Stored asset %d", id)
	logger.L().Info("asset ingested", zap.Int64("id", id), zap.String("source", opts.Source))
	return id, nil
}

// Get retrieves an asset. A missing asset is reported as found=false.
func (s *AssetService) Get(ctx context.Context, id int64) (*domain.AssetDetail, bool, error) {
	detail, err := s.store.Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("getting asset %d: %w", id, err)
	}
	return detail, true, nil
}

// Expansions returns every expansion recorded for an asset, newest first.
func (s *AssetService) Expansions(ctx context.Context, id int64) ([]domain.Expansion, error) {
	expansions, err := s.store.ListExpansions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing expansions for %d: %w", id, err)
	}
	return expansions, nil
}
