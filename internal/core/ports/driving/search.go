package driving

import (
	"context"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// SearchService provides faceted search to external actors.
type SearchService interface {
	// Search parses the query mini-language and returns matching assets in
	// ascending id order. Query content never causes an error; an empty
	// query matches every asset.
	Search(ctx context.Context, query string) ([]domain.AssetSummary, error)

	// Explain returns the structured form of a query without running it.
	Explain(query string) domain.StructuredQuery
}
