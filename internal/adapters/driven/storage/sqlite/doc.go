// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements every store interface
// through a single database connection:
//
//   - AssetStore: assets, expansions and faceted search
//   - DictionaryStore: the x_domain_dict reference table
//   - MetricsStore: metrics sessions and events
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.ripple/data/ripple.db
//
// # Thread Safety
//
// Readers share the connection pool and see WAL snapshots. Writers take a
// process-wide mutex and an IMMEDIATE transaction, so at most one write
// transaction is in flight.
package sqlite
