// Package main provides the entry point for the pokedex CLI.
//
// Usage:
//
//	pokedex                     browse the catalog in the terminal UI
//	pokedex list [query]        print the catalog (text, json, yaml, markdown)
//	pokedex version
//
// See --help for all available options.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pokedex: %v\n", err)
		return 1
	}
	return 0
}
