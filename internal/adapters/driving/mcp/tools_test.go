package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

func TestServer_handleIngest(t *testing.T) {
	ctx := context.Background()

	t.Run("stores text and returns id", func(t *testing.T) {
		assets := &mockAssetService{id: 42}
		server := newTestServer(t, &Ports{Search: &mockSearchService{}, Asset: assets})

		_, out, err := server.handleIngest(ctx, nil, IngestInput{Text: "a catalyst", Type: "note"})

		require.NoError(t, err)
		assert.Equal(t, int64(42), out.ID)
		assert.Equal(t, "a catalyst", assets.gotText)
		assert.Equal(t, "note", assets.gotOpts.Type)
		assert.Equal(t, "mcp", assets.gotOpts.Source)
	})

	t.Run("keeps explicit source", func(t *testing.T) {
		assets := &mockAssetService{id: 1}
		server := newTestServer(t, &Ports{Search: &mockSearchService{}, Asset: assets})

		_, _, err := server.handleIngest(ctx, nil, IngestInput{Text: "x", Source: "notes.txt"})

		require.NoError(t, err)
		assert.Equal(t, "notes.txt", assets.gotOpts.Source)
	})

	t.Run("propagates empty input", func(t *testing.T) {
		assets := &mockAssetService{err: domain.ErrEmptyInput}
		server := newTestServer(t, &Ports{Search: &mockSearchService{}, Asset: assets})

		_, _, err := server.handleIngest(ctx, nil, IngestInput{Text: "  "})

		assert.ErrorIs(t, err, domain.ErrEmptyInput)
	})
}

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns search results", func(t *testing.T) {
		search := &mockSearchService{
			results: []domain.AssetSummary{{
				ID:        3,
				RawText:   "bonding over coffee",
				Summary:   "Connection is forming.",
				Keywords:  domain.FacetBlob{Name: "keywords", Raw: `["bonding"]`},
				Metaphors: domain.FacetBlob{Name: "metaphors", Raw: `{"pairs":[]}`},
				Structure: domain.FacetBlob{Name: "structure", Raw: `{"sections":[]}`},
				Strategy:  domain.FacetBlob{Name: "strategy", Raw: `{broken`},
			}},
		}
		server := newTestServer(t, &Ports{Search: search, Asset: &mockAssetService{}})

		_, out, err := server.handleSearch(ctx, nil, SearchInput{Query: "topic:bond"})

		require.NoError(t, err)
		assert.Equal(t, "topic:bond", search.query)
		require.Equal(t, 1, out.Count)
		assert.Equal(t, int64(3), out.Results[0].ID)
		assert.Equal(t, "Connection is forming.", out.Results[0].Summary)
		assert.Equal(t, json.RawMessage(`["bonding"]`), out.Results[0].Facets["keywords"])
		assert.Equal(t, "{broken", out.Results[0].Facets["strategy"])
	})

	t.Run("no results", func(t *testing.T) {
		server := newTestServer(t, &Ports{Search: &mockSearchService{}, Asset: &mockAssetService{}})

		_, out, err := server.handleSearch(ctx, nil, SearchInput{})

		require.NoError(t, err)
		assert.Equal(t, 0, out.Count)
		assert.Empty(t, out.Results)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		search := &mockSearchService{err: errors.New("search failed")}
		server := newTestServer(t, &Ports{Search: search, Asset: &mockAssetService{}})

		_, _, err := server.handleSearch(ctx, nil, SearchInput{Query: "x"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}

func TestServer_handleGetAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("returns detail", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Search: &mockSearchService{},
			Asset:  &mockAssetService{detail: testDetail()},
		})

		_, out, err := server.handleGetAsset(ctx, nil, GetAssetInput{ID: 7})

		require.NoError(t, err)
		assert.Equal(t, int64(7), out.ID)
		assert.Equal(t, "mcp", out.Source)
		assert.Equal(t, "Someone helped things move faster.", out.Humanized)
		assert.Len(t, out.Facets, 4)
		assert.Equal(t, "not json", out.Facets["strategy"])
	})

	t.Run("not found", func(t *testing.T) {
		server := newTestServer(t, &Ports{Search: &mockSearchService{}, Asset: &mockAssetService{}})

		_, _, err := server.handleGetAsset(ctx, nil, GetAssetInput{ID: 99})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("service error", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Search: &mockSearchService{},
			Asset:  &mockAssetService{err: domain.ErrStoreUnavailable},
		})

		_, _, err := server.handleGetAsset(ctx, nil, GetAssetInput{ID: 1})

		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}
