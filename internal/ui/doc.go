// Package ui provides the Bubble Tea terminal interface for pokedex.
//
// The Model owns a *state.Pipeline. Init starts the one-shot catalog load
// in a command; while it runs the header shows a spinner. Once the pipeline
// is Ready the visible entities are drawn as a grid of cards (up to four
// per row) in a scrollable viewport.
//
// # Key Bindings
//
//   - /: Focus the search box; every edit re-filters immediately
//   - enter: Leave the search box, keeping the query
//   - esc: Clear the query
//   - j/k, pgup/pgdn, g/G: Scroll the grid
//   - L: Toggle the warnings pane (tail of the log file)
//   - T: Cycle theme (saved to prefs)
//   - ?: Toggle help
//   - ctrl+c: Quit
package ui
