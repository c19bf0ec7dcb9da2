// Package domain defines the core business entities for Ripple.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Asset: An ingested text and its derived facets
//   - Facets: Keywords, metaphors, structure, strategy and summary
//   - Expansion: Framed terms, context windows and humanized text
//   - DomainTerm: A reference vocabulary entry
//   - StructuredQuery and Predicate: The parsed and compiled query forms
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
