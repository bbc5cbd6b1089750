package catalog

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/five82/pokedex/internal/pokeapi"
)

// Builder fetches the listing and resolves every entry into a Catalog.
type Builder struct {
	fetcher      pokeapi.Fetcher
	resolver     *Resolver
	listingLimit int
	catalogSize  int
	concurrency  int
	logger       *slog.Logger
}

// NewBuilder creates a Builder backed by fetcher.
func NewBuilder(fetcher pokeapi.Fetcher, opts ...Option) *Builder {
	s := applyOptions(opts)
	return &Builder{
		fetcher:      fetcher,
		resolver:     NewResolver(fetcher, opts...),
		listingLimit: s.listingLimit,
		catalogSize:  s.catalogSize,
		concurrency:  s.concurrency,
		logger:       s.logger,
	}
}

// Build fetches one listing page, resolves all entries concurrently and
// returns the successes in listing order, truncated to the catalog size.
//
// The only error is *ListingFetchError; per-entry failures are dropped.
// Detail requests are never cancelled by a sibling's failure: the group has
// no derived context and every goroutine returns nil.
func (b *Builder) Build(ctx context.Context) (Catalog, error) {
	start := time.Now()

	entries, err := b.fetcher.FetchListing(ctx, b.listingLimit)
	if err != nil {
		return nil, &ListingFetchError{Limit: b.listingLimit, Err: err}
	}

	b.logger.Info("resolving listing",
		"entries", len(entries),
		"concurrency", b.concurrency,
	)

	// One slot per entry; each goroutine writes only its own index.
	slots := make([]*Entity, len(entries))

	var g errgroup.Group
	if b.concurrency > 0 {
		g.SetLimit(b.concurrency)
	}
	for i, entry := range entries {
		g.Go(func() error {
			if e, ok := b.resolver.Resolve(ctx, entry); ok {
				slots[i] = &e
			}
			return nil
		})
	}
	_ = g.Wait()

	out := compact(slots, b.catalogSize)

	b.logger.Info("catalog built",
		"listed", len(entries),
		"failed", countMissing(slots),
		"kept", len(out),
		"elapsed", time.Since(start),
	)
	return out, nil
}

// compact drops empty slots, preserving order, and keeps at most limit entries.
func compact(slots []*Entity, limit int) Catalog {
	out := make(Catalog, 0, min(len(slots), limit))
	for _, slot := range slots {
		if len(out) == limit {
			break
		}
		if slot != nil {
			out = append(out, *slot)
		}
	}
	return out
}

func countMissing(slots []*Entity) int {
	n := 0
	for _, slot := range slots {
		if slot == nil {
			n++
		}
	}
	return n
}
