// Package pokeapi provides an HTTP client for the public PokeAPI.
//
// # Overview
//
// The catalog pipeline needs exactly two read-only calls:
//
//   - GET <base>/pokemon?limit=N: the paginated index of {name, url} pairs
//   - GET <url>: the detail record for one entry, addressed by the url taken
//     from the index
//
// Both responses decode into the types in types.go. Detail fields are all
// optional (pointers or nil slices) because the caller must distinguish
// "absent" from "zero" when applying fallback defaults.
//
// # Client Usage
//
//	client, err := pokeapi.NewClient(pokeapi.DefaultBaseURL)
//	if err != nil {
//		return err
//	}
//	entries, err := client.FetchListing(ctx, 50)
//	...
//	detail, err := client.FetchDetail(ctx, entries[0].URL)
//
// # Request Handling
//
// All requests:
//   - Use the caller's context for cancellation
//   - Set Accept: application/json and User-Agent: pokedex/0.1
//   - Have no timeout unless WithTimeout is supplied
//   - Treat any status >= 400 as an error
//   - Return wrapped errors ("execute request: ...", "decode response: ...")
//
// Detail locators are usually absolute URLs. Relative locators resolve against
// the base URL, which keeps httptest servers easy to wire in tests.
//
// # Testing
//
// The Fetcher interface is what the catalog package depends on; tests there
// use an in-memory fake rather than a live server.
package pokeapi
