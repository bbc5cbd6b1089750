// Package catalog builds and searches the Pokémon catalog.
//
// # Pipeline
//
//	Builder.Build
//	  ├─> FetchListing(limit)            one request; failure is fatal
//	  ├─> Resolver.Resolve  x N          concurrent, one slot per entry
//	  ├─> wait for all
//	  └─> compact + truncate             listing order, failures dropped
//
// A failed listing request returns *ListingFetchError and issues no detail
// requests. A failed detail request only drops that entry.
//
// # Normalization
//
// Every Entity field is always defined:
//
//   - ImageURL: sprites.front_default, else DefaultPlaceholderImage
//   - HP, Attack: base_stat of the first stat with that name, else "N/A"
//   - BaseExperience: base_experience, else "N/A"
//
// A reported zero is kept as 0; only absent or null values become "N/A".
//
// # Search
//
// Filter is a pure case-insensitive substring match on Name. The empty query
// matches everything and the result keeps catalog order.
package catalog
