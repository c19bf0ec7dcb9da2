// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - AssetService: ingest (validate, annotate, store) and lookup
//   - SearchService: query parsing and faceted search
//   - DictionaryService: reference dictionary seeding and listing
//   - MetricsService: session tracking, KPIs and export
package services
