// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Query   string
	Results []domain.AssetSummary
	Err     error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the query input and results view.
	ViewSearch
	// ViewAsset shows one asset's facets in tabs.
	ViewAsset
	// ViewIngest is the text entry view for new assets.
	ViewIngest
	// ViewDictionary lists the domain dictionary.
	ViewDictionary
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewAsset:
		return "asset"
	case ViewIngest:
		return "ingest"
	case ViewDictionary:
		return "dictionary"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// AssetSelected asks the app to open an asset.
type AssetSelected struct {
	ID int64
}

// AssetLoaded carries a loaded asset. Found is false when no asset has the ID.
type AssetLoaded struct {
	ID     int64
	Detail *domain.AssetDetail
	Found  bool
	Err    error
}

// AssetIngested reports the result of storing new text.
type AssetIngested struct {
	ID  int64
	Err error
}

// DictionaryLoaded carries the dictionary terms.
type DictionaryLoaded struct {
	Terms []domain.DomainTerm
	Err   error
}
