package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const uriScheme = "ripple://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "dictionary",
		Name:        "dictionary",
		Description: "Reference dictionary of chemistry terms and their human analogies",
		MIMEType:    "application/json",
	}, s.handleDictionaryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "assets/{assetId}",
		Name:        "asset",
		Description: "A stored asset with its facets",
		MIMEType:    "application/json",
	}, s.handleAssetResource)
}

func (s *Server) handleDictionaryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Dictionary == nil {
		return jsonResult(req.Params.URI, "[]"), nil
	}

	terms, err := s.ports.Dictionary.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing dictionary: %w", err)
	}

	data, err := json.MarshalIndent(terms, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling dictionary: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

func (s *Server) handleAssetResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, ok := extractAssetID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	detail, found, err := s.ports.Asset.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting asset: %w", err)
	}
	if !found {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(detailOutput(detail), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling asset: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractAssetID extracts the asset ID from a URI like ripple://assets/{assetId}.
func extractAssetID(uri string) (int64, bool) {
	const prefix = uriScheme + "assets/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(uri, prefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
