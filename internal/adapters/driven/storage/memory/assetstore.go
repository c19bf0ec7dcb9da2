package memory

import (
	"context"
	"sync"
	"time"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driven"
)

// Ensure AssetStore implements the interface.
var _ driven.AssetStore = (*AssetStore)(nil)

// AssetStore is an in-memory implementation of driven.AssetStore.
// Predicates are evaluated with their Match method.
type AssetStore struct {
	mu         sync.RWMutex
	assets     []storedAsset
	expansions []domain.Expansion
	nextAsset  int64
	nextExp    int64
}

type storedAsset struct {
	asset   domain.Asset
	encoded domain.EncodedFacets
}

// NewAssetStore creates a new in-memory asset store.
func NewAssetStore() *AssetStore {
	return &AssetStore{}
}

// Create stores an asset and its expansion under one lock.
func (s *AssetStore) Create(ctx context.Context, asset domain.Asset, expansion domain.Expansion) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	asset.Facets = asset.Facets.Normalize()
	encoded, err := domain.EncodeFacets(asset.Facets)
	if err != nil {
		return 0, err
	}
	if asset.Type == "" {
		asset.Type = domain.DefaultAssetType
	}
	if asset.CreatedAt == 0 {
		asset.CreatedAt = time.Now().Unix()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAsset++
	asset.ID = s.nextAsset
	s.assets = append(s.assets, storedAsset{asset: asset, encoded: encoded})

	s.nextExp++
	expansion.ID = s.nextExp
	expansion.AssetID = asset.ID
	expansion.CreatedAt = asset.CreatedAt
	if expansion.FramedTerms == nil {
		expansion.FramedTerms = []domain.FramedTerm{}
	}
	if expansion.Windows == nil {
		expansion.Windows = []domain.ContextWindow{}
	}
	s.expansions = append(s.expansions, expansion)

	return asset.ID, nil
}

// Find returns matching assets in ascending id order.
func (s *AssetStore) Find(_ context.Context, preds []domain.Predicate) ([]domain.AssetSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []domain.AssetSummary{}
	for _, a := range s.assets {
		if !domain.MatchAll(preds, a.asset.RawText, a.asset.Facets) {
			continue
		}
		results = append(results, domain.AssetSummary{
			ID:        a.asset.ID,
			RawText:   a.asset.RawText,
			Summary:   a.encoded.Summary,
			Keywords:  domain.FacetBlob{Name: domain.FacetKeywords, Raw: a.encoded.Keywords},
			Metaphors: domain.FacetBlob{Name: domain.FacetMetaphors, Raw: a.encoded.Metaphors},
			Structure: domain.FacetBlob{Name: domain.FacetStructure, Raw: a.encoded.Structure},
			Strategy:  domain.FacetBlob{Name: domain.FacetStrategy, Raw: a.encoded.Strategy},
		})
	}
	return results, nil
}

// Get retrieves an asset by ID.
func (s *AssetStore) Get(_ context.Context, id int64) (*domain.AssetDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.assets {
		if a.asset.ID != id {
			continue
		}
		detail := &domain.AssetDetail{
			ID:        a.asset.ID,
			Type:      a.asset.Type,
			Source:    a.asset.Source,
			CreatedAt: a.asset.CreatedAt,
			RawText:   a.asset.RawText,
			Summary:   a.encoded.Summary,
			Keywords:  domain.FacetBlob{Name: domain.FacetKeywords, Raw: a.encoded.Keywords},
			Metaphors: domain.FacetBlob{Name: domain.FacetMetaphors, Raw: a.encoded.Metaphors},
			Structure: domain.FacetBlob{Name: domain.FacetStructure, Raw: a.encoded.Structure},
			Strategy:  domain.FacetBlob{Name: domain.FacetStrategy, Raw: a.encoded.Strategy},
		}
		if exp := s.latestLocked(id); exp != nil {
			detail.Humanized = exp.HumanizedSummary
		}
		return detail, nil
	}
	return nil, domain.ErrNotFound
}

// LatestExpansion returns the newest expansion for an asset.
func (s *AssetStore) LatestExpansion(_ context.Context, assetID int64) (*domain.Expansion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp := s.latestLocked(assetID)
	if exp == nil {
		return nil, domain.ErrNotFound
	}
	return exp, nil
}

// ListExpansions returns all expansions for an asset, newest first.
func (s *AssetStore) ListExpansions(_ context.Context, assetID int64) ([]domain.Expansion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.Expansion{}
	for i := len(s.expansions) - 1; i >= 0; i-- {
		if s.expansions[i].AssetID == assetID {
			result = append(result, s.expansions[i])
		}
	}
	return result, nil
}

// Count returns the number of stored assets.
func (s *AssetStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.assets), nil
}

func (s *AssetStore) latestLocked(assetID int64) *domain.Expansion {
	for i := len(s.expansions) - 1; i >= 0; i-- {
		if s.expansions[i].AssetID == assetID {
			exp := s.expansions[i]
			return &exp
		}
	}
	return nil
}
