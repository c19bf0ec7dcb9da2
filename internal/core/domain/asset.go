package domain

// DefaultAssetType is the classification tag applied when none is given.
const DefaultAssetType = "conversation"

// Asset is one ingested unit of text and its derived facets.
// RawText is never mutated after creation; re-annotating the same text
// produces a new asset.
type Asset struct {
	// ID is assigned by the store on creation.
	ID int64

	// Type classifies the asset (defaults to "conversation").
	Type string

	// Source is an optional provenance string (file path, "stdin", "mcp").
	Source string

	// CreatedAt is the creation time in epoch seconds.
	CreatedAt int64

	// RawText is the original input.
	RawText string

	// Facets are the annotations derived from RawText.
	Facets Facets
}

// AssetSummary is one row returned by a faceted search.
// Facet blobs are kept in stored form so a malformed blob can still be shown.
type AssetSummary struct {
	ID        int64
	RawText   string
	Summary   string
	Keywords  FacetBlob
	Metaphors FacetBlob
	Structure FacetBlob
	Strategy  FacetBlob
}

// AssetDetail is the full record returned by a lookup by identifier,
// including the humanized text of the most recent expansion.
type AssetDetail struct {
	ID        int64
	Type      string
	Source    string
	CreatedAt int64
	RawText   string
	Summary   string
	Keywords  FacetBlob
	Metaphors FacetBlob
	Structure FacetBlob
	Strategy  FacetBlob

	// Humanized is the latest expansion's humanized summary, empty if the
	// asset has no expansion.
	Humanized string
}

// Blobs returns the facet blobs in display order.
func (d *AssetDetail) Blobs() []FacetBlob {
	return []FacetBlob{d.Keywords, d.Metaphors, d.Structure, d.Strategy}
}

// Facets decodes the stored blobs. A malformed blob yields a
// *MalformedFacetError naming the first facet that failed.
func (d *AssetDetail) Facets() (Facets, error) {
	return DecodeFacets(EncodedFacets{
		Keywords:  d.Keywords.Raw,
		Metaphors: d.Metaphors.Raw,
		Structure: d.Structure.Raw,
		Strategy:  d.Strategy.Raw,
		Summary:   d.Summary,
	})
}

// Expansion is a secondary enrichment record owned by one asset.
// It is created with its asset and never updated.
type Expansion struct {
	ID               int64
	AssetID          int64
	FramedTerms      []FramedTerm
	Windows          []ContextWindow
	HumanizedSummary string
	CreatedAt        int64

	// Malformed holds stored lists that failed to decode, as stored.
	// The matching typed field is left empty.
	Malformed []FacetBlob
}

// Expansion list names, used when a stored list is malformed.
const (
	ExpansionFramedTerms = "framed_terms"
	ExpansionWindows     = "context_windows"
)

// FramedTerm pairs a matched trigger with its chemistry framing.
type FramedTerm struct {
	Term string    `json:"term"`
	Note FrameNote `json:"note"`
}

// FrameNote is the analogy attached to a framed term.
type FrameNote struct {
	Chem  string `json:"chem"`
	Frame string `json:"frame"`
}

// ContextWindow shows a matched trigger in its surrounding text.
// Position is the rune offset of the first match in the raw text.
type ContextWindow struct {
	Term     string `json:"term"`
	Window   string `json:"window"`
	Position int    `json:"position"`
}

// IngestOptions carries optional metadata for a new asset.
type IngestOptions struct {
	Type   string
	Source string
}
