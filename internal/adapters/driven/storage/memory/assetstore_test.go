package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

func sampleFacets() domain.Facets {
	return domain.Facets{
		Keywords:  []string{"feel", "dirty"},
		Metaphors: []domain.MetaphorPair{{Trigger: "dirty", Concept: "impurity"}},
		Structure: []string{"Impurity control", "Chelation"},
		Strategy:  []domain.StrategyRecord{{Control: "solvent change", Actions: []string{"sunlight"}}},
		Summary:   "dirtiness",
	}
}

func TestAssetStore_CreateGet(t *testing.T) {
	store := NewAssetStore()
	ctx := context.Background()

	id, err := store.Create(ctx, domain.Asset{RawText: "I feel dirty", Facets: sampleFacets()},
		domain.Expansion{HumanizedSummary: "be kind"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	detail, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAssetType, detail.Type)
	assert.Equal(t, "be kind", detail.Humanized)
	assert.JSONEq(t, `{"pairs":[["dirty","impurity"]]}`, detail.Metaphors.Raw)

	_, err = store.Get(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	exp, err := store.LatestExpansion(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, exp.AssetID)
	assert.NotNil(t, exp.FramedTerms)

	_, err = store.LatestExpansion(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssetStore_Find(t *testing.T) {
	store := NewAssetStore()
	ctx := context.Background()

	first, err := store.Create(ctx, domain.Asset{RawText: "I feel dirty", Facets: sampleFacets()}, domain.Expansion{})
	require.NoError(t, err)
	second, err := store.Create(ctx, domain.Asset{RawText: "nothing"}, domain.Expansion{})
	require.NoError(t, err)

	all, err := store.Find(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first, all[0].ID)
	assert.Equal(t, second, all[1].ID)
	assert.Equal(t, "[]", all[1].Keywords.Raw)

	found, err := store.Find(ctx, []domain.Predicate{domain.TopicPredicate{Topic: "chelation"}, domain.HasStrategyPredicate{}})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, first, found[0].ID)

	none, err := store.Find(ctx, []domain.Predicate{domain.FreeTextPredicate{Text: "DIRTY"}})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestAssetStore_CountAndExpansions(t *testing.T) {
	store := NewAssetStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Create(ctx, domain.Asset{RawText: "text"}, domain.Expansion{})
		require.NoError(t, err)
	}

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	exps, err := store.ListExpansions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, int64(2), exps[0].AssetID)
}

func TestAssetStore_Create_CancelledContext(t *testing.T) {
	store := NewAssetStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Create(ctx, domain.Asset{RawText: "text"}, domain.Expansion{})
	assert.Error(t, err)

	n, _ := store.Count(context.Background())
	assert.Zero(t, n)
}
