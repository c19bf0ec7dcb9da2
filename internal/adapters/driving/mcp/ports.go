package mcp

import (
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Asset ingests and retrieves assets.
	Asset driving.AssetService

	// Search runs faceted queries.
	Search driving.SearchService

	// Dictionary exposes the domain dictionary. Optional.
	Dictionary driving.DictionaryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Asset == nil {
		return ErrMissingAssetService
	}
	return nil
}
