package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/five82/pokedex/internal/pokeapi"
)

// fakeFetcher serves listing and detail payloads from memory.
type fakeFetcher struct {
	listing    []pokeapi.ListingEntry
	listingErr error
	details    map[string]*pokeapi.Detail
	failures   map[string]error

	mu          sync.Mutex
	gotLimit    int
	detailCalls atomic.Int32
}

func (f *fakeFetcher) FetchListing(_ context.Context, limit int) ([]pokeapi.ListingEntry, error) {
	f.mu.Lock()
	f.gotLimit = limit
	f.mu.Unlock()
	if f.listingErr != nil {
		return nil, f.listingErr
	}
	return f.listing, nil
}

func (f *fakeFetcher) FetchDetail(_ context.Context, locator string) (*pokeapi.Detail, error) {
	f.detailCalls.Add(1)
	if err, ok := f.failures[locator]; ok {
		return nil, err
	}
	if d, ok := f.details[locator]; ok {
		return d, nil
	}
	return nil, errors.New("api returned status 404")
}

// newFakeFetcher builds a listing of n entries named mon01..monNN, each with a
// full detail record.
func newFakeFetcher(n int) *fakeFetcher {
	f := &fakeFetcher{
		details:  make(map[string]*pokeapi.Detail),
		failures: make(map[string]error),
	}
	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("mon%02d", i)
		url := fmt.Sprintf("https://pokeapi.test/pokemon/%d/", i)
		f.listing = append(f.listing, pokeapi.ListingEntry{Name: name, URL: url})
		f.details[url] = fullDetail(i)
	}
	return f
}

func fullDetail(i int) *pokeapi.Detail {
	img := fmt.Sprintf("https://img.test/%d.png", i)
	exp := 60 + i
	return &pokeapi.Detail{
		Sprites: &pokeapi.Sprites{FrontDefault: &img},
		Stats: []pokeapi.StatRef{
			{BaseStat: 40 + i, Stat: pokeapi.NamedAPIItem{Name: "hp"}},
			{BaseStat: 50 + i, Stat: pokeapi.NamedAPIItem{Name: "attack"}},
			{BaseStat: 45, Stat: pokeapi.NamedAPIItem{Name: "defense"}},
		},
		BaseExperience: &exp,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
