package driving

import (
	"context"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// AssetService ingests text and retrieves stored assets.
type AssetService interface {
	// Ingest annotates rawText and stores it with its expansion.
	// Returns domain.ErrEmptyInput if rawText is blank.
	Ingest(ctx context.Context, rawText string, opts domain.IngestOptions) (int64, error)

	// Get retrieves an asset by identifier. found is false when no asset
	// exists; that is not an error.
	Get(ctx context.Context, id int64) (detail *domain.AssetDetail, found bool, err error)

	// Expansions returns every expansion recorded for an asset, newest first.
	Expansions(ctx context.Context, id int64) ([]domain.Expansion, error)
}
