package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/five82/pokedex/internal/pokeapi"
)

// Resolver turns one listing entry into a normalized Entity.
type Resolver struct {
	fetcher     pokeapi.Fetcher
	placeholder string
	logger      *slog.Logger
}

// NewResolver creates a Resolver backed by fetcher.
func NewResolver(fetcher pokeapi.Fetcher, opts ...Option) *Resolver {
	s := applyOptions(opts)
	return &Resolver{
		fetcher:     fetcher,
		placeholder: s.placeholder,
		logger:      s.logger,
	}
}

// Resolve fetches the entry's detail record and normalizes it. Any failure is
// logged and reported as ok=false; it never aborts the caller's batch.
func (r *Resolver) Resolve(ctx context.Context, entry pokeapi.ListingEntry) (Entity, bool) {
	if strings.TrimSpace(entry.URL) == "" {
		r.logger.Warn("detail fetch skipped", "name", entry.Name, "error", "empty locator")
		return Entity{}, false
	}
	detail, err := r.fetcher.FetchDetail(ctx, entry.URL)
	if err != nil {
		r.logger.Warn("detail fetch failed",
			"name", entry.Name,
			"url", entry.URL,
			"error", err,
		)
		return Entity{}, false
	}
	if detail == nil {
		r.logger.Warn("detail fetch failed", "name", entry.Name, "url", entry.URL, "error", "empty response")
		return Entity{}, false
	}
	return Normalize(entry.Name, *detail, r.placeholder), true
}

// Normalize maps a raw detail record onto an Entity, substituting placeholder
// for a missing image and NotAvailable for missing stats.
func Normalize(name string, detail pokeapi.Detail, placeholder string) Entity {
	e := Entity{
		Name:     name,
		ImageURL: detail.FrontImage(),
	}
	if e.ImageURL == "" {
		e.ImageURL = placeholder
	}
	if v, ok := detail.BaseStat("hp"); ok {
		e.HP = KnownStat(v)
	}
	if v, ok := detail.BaseStat("attack"); ok {
		e.Attack = KnownStat(v)
	}
	if detail.BaseExperience != nil {
		e.BaseExperience = KnownStat(*detail.BaseExperience)
	}
	return e
}
