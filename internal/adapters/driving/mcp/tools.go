package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// IngestInput is the input schema for the ingest tool.
type IngestInput struct {
	Text   string `json:"text" jsonschema:"the text to annotate and store"`
	Type   string `json:"type,omitempty" jsonschema:"asset type (default conversation)"`
	Source string `json:"source,omitempty" jsonschema:"optional provenance of the text"`
}

// IngestOutput is the output schema for the ingest tool.
type IngestOutput struct {
	ID int64 `json:"id"`
}

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"query such as 'topic:reaction metaphor:catalyst hasStrategy:true words'"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []AssetOutput `json:"results"`
	Count   int           `json:"count"`
}

// GetAssetInput is the input schema for the get_asset tool.
type GetAssetInput struct {
	ID int64 `json:"id" jsonschema:"the asset identifier"`
}

// AssetOutput is one asset as returned to MCP clients. Facets are passed
// through as JSON; a malformed facet is returned as its raw string.
type AssetOutput struct {
	ID        int64          `json:"id"`
	Type      string         `json:"type,omitempty"`
	Source    string         `json:"source,omitempty"`
	CreatedAt int64          `json:"created_at,omitempty"`
	RawText   string         `json:"raw_text"`
	Summary   string         `json:"summary"`
	Facets    map[string]any `json:"facets"`
	Humanized string         `json:"humanized,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ingest",
		Description: "Annotate text and store it as a new asset",
	}, s.handleIngest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Run a faceted query over stored assets",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_asset",
		Description: "Fetch one asset with its facets and humanized summary",
	}, s.handleGetAsset)
}

func (s *Server) handleIngest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IngestInput,
) (*mcp.CallToolResult, IngestOutput, error) {
	source := input.Source
	if source == "" {
		source = "mcp"
	}
	id, err := s.ports.Asset.Ingest(ctx, input.Text, domain.IngestOptions{
		Type:   input.Type,
		Source: source,
	})
	if err != nil {
		return nil, IngestOutput{}, err
	}
	return nil, IngestOutput{ID: id}, nil
}

func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Search.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]AssetOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		r := &results[i]
		output.Results[i] = AssetOutput{
			ID:      r.ID,
			RawText: r.RawText,
			Summary: r.Summary,
			Facets:  facetMap(r.Keywords, r.Metaphors, r.Structure, r.Strategy),
		}
	}
	return nil, output, nil
}

func (s *Server) handleGetAsset(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetAssetInput,
) (*mcp.CallToolResult, AssetOutput, error) {
	detail, found, err := s.ports.Asset.Get(ctx, input.ID)
	if err != nil {
		return nil, AssetOutput{}, err
	}
	if !found {
		return nil, AssetOutput{}, fmt.Errorf("asset %d: %w", input.ID, domain.ErrNotFound)
	}
	return nil, detailOutput(detail), nil
}

func detailOutput(d *domain.AssetDetail) AssetOutput {
	return AssetOutput{
		ID:        d.ID,
		Type:      d.Type,
		Source:    d.Source,
		CreatedAt: d.CreatedAt,
		RawText:   d.RawText,
		Summary:   d.Summary,
		Facets:    facetMap(d.Blobs()...),
		Humanized: d.Humanized,
	}
}

func facetMap(blobs ...domain.FacetBlob) map[string]any {
	m := make(map[string]any, len(blobs))
	for _, b := range blobs {
		if b.Valid() {
			m[b.Name] = json.RawMessage(b.Raw)
		} else {
			m[b.Name] = b.Raw
		}
	}
	return m
}
