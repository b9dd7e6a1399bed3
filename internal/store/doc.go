// Package store provides the SQLite-backed fact store.
//
// The store is the backend collaborator of the matching core. It implements
// three contracts:
//   - fact enumeration: Select compiles already-parsed pattern triples to
//     SQL (internal/triplesql) and returns one Bindings set per satisfying
//     row, delegating the conjunctive join to SQLite's own execution
//   - fact persistence: Insert and Delete act on a single fully-concrete
//     triple; patterns are rejected at the boundary
//   - bulk clear: Clear removes all facts
//
// Facts arrive already normalized (lowercased) from the core model; the
// store never re-normalizes, so byte comparison inside SQLite is
// case-insensitive comparison over the domain.
//
// # Determinism
//
// All enumeration queries ORDER BY every selected column with COLLATE
// BINARY, so identical stores yield identical binding orders across runs.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// The connection pool is limited to a single connection: SQLite supports one
// writer at a time, and the single-writer pool also serializes the
// read-then-write retraction path without core-level locking.
package store
