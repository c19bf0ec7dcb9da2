// Package tui provides an interactive terminal user interface for ripple.
// It is a driving adapter over the asset, search and dictionary services.
package tui

import (
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Asset ingests and loads assets.
	Asset driving.AssetService

	// Search runs faceted queries.
	Search driving.SearchService

	// Dictionary lists reference terms. Optional.
	Dictionary driving.DictionaryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Asset == nil {
		return ErrMissingAssetService
	}
	return nil
}
