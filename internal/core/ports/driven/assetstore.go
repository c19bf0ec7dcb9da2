package driven

import (
	"context"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// AssetStore persists assets with their expansions and answers faceted queries.
type AssetStore interface {
	// Create atomically persists the asset and its expansion and returns the
	// new asset identifier. No partial write is visible on failure.
	Create(ctx context.Context, asset domain.Asset, expansion domain.Expansion) (int64, error)

	// Find returns every asset matching all predicates in ascending id order.
	// An empty predicate list matches all assets.
	Find(ctx context.Context, preds []domain.Predicate) ([]domain.AssetSummary, error)

	// Get retrieves an asset by identifier with its latest humanized summary.
	// Returns domain.ErrNotFound if no row exists.
	Get(ctx context.Context, id int64) (*domain.AssetDetail, error)

	// LatestExpansion returns the most recently created expansion for an asset.
	// Returns domain.ErrNotFound if the asset has none.
	LatestExpansion(ctx context.Context, assetID int64) (*domain.Expansion, error)

	// ListExpansions returns all expansions for an asset, newest first.
	ListExpansions(ctx context.Context, assetID int64) ([]domain.Expansion, error)

	// Count returns the number of stored assets.
	Count(ctx context.Context) (int, error)
}
