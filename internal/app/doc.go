// Package app wires configuration, logging, the PokéAPI client, the catalog
// builder and the pipeline together. It is the composition root for both
// entry points:
//
//   - Run: load config and prefs, open the log file, start the TUI
//   - List: build the catalog once, filter it and write a report
//
// The TUI swallows build failures (the pipeline ends Ready with an empty
// catalog and the error is logged). List returns them so the command can
// exit non-zero.
package app
