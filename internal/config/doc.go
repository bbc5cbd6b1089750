// Package config loads the pokedex TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it (a leading ~ expands to $HOME)
//  2. Otherwise, use $XDG_CONFIG_HOME/pokedex/config.toml
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but keys are missing/empty, use defaults per key
//  5. POKEDEX_BASE_URL, when set, overrides base_url
//
// # Example
//
//	base_url = "https://pokeapi.co/api/v2"
//	listing_limit = 50
//	catalog_size = 32
//	placeholder_image = "https://via.placeholder.com/100"
//	request_timeout = "10s"   # empty: no per-request timeout
//	concurrency = 0           # 0: all detail requests at once
//	log_file = "~/.local/state/pokedex/pokedex.log"
//
// # Validation
//
// Load validates the merged result. Failures wrap the sentinel errors in
// errors.go so callers can branch with errors.Is.
package config
