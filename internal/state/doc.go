// Package state holds the pipeline controller shared by the UI and the loader.
//
// # Overview
//
// Pipeline owns three pieces of state that must always agree:
//
//   - the catalog produced by the one-shot build
//   - the current (lowercased) search query
//   - the visible list, catalog.Filter(catalog, query)
//
// Any change to the catalog or the query recomputes the visible list under
// the same lock, so a Snapshot never pairs a new query with a stale result.
//
// # Lifecycle
//
//	┌──────┐  Begin()   ┌─────────┐  Complete(c, err)  ┌───────┐
//	│ Idle │──────────→│ Loading │──────────────────→│ Ready │
//	└──────┘            └─────────┘                    └───────┘
//
// The transition happens once. Load wraps Begin, Build and Complete; a second
// Load is a no-op that returns the current snapshot. A failed build still ends
// in Ready, with an empty catalog and the error written to the log.
//
// # Concurrency Model
//
// The loader goroutine (a bubbletea command) calls Load while the UI goroutine
// calls SetQuery and Snapshot. A sync.RWMutex guards every field and
// Snapshot returns copies of both slices.
package state
