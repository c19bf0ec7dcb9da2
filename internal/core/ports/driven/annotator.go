package driven

import "github.com/darnYOURsocks/Ripplewin/internal/core/domain"

// Annotator derives facets and an expansion from raw text.
// Implementations must be pure: identical input yields identical output.
type Annotator interface {
	Annotate(rawText string) (domain.Facets, domain.Expansion)
}
