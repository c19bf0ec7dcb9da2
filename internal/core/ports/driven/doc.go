// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - AssetStore: Asset and expansion persistence, faceted search
//   - DictionaryStore: Domain dictionary persistence
//   - MetricsStore: Metrics sessions and events (optional; nil disables metrics)
//   - Annotator: The deterministic annotation pipeline
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
