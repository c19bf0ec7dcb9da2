// Package mcp provides an MCP (Model Context Protocol) server adapter for Ripple.
// It lets assistants ingest text into the annotation pipeline and run faceted
// queries over stored assets.
package mcp

import "errors"

var (
	// ErrMissingSearchService is returned when the search service is not provided.
	ErrMissingSearchService = errors.New("mcp: search service is required")

	// ErrMissingAssetService is returned when the asset service is not provided.
	ErrMissingAssetService = errors.New("mcp: asset service is required")
)
