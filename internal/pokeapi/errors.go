package pokeapi

import "errors"

// ErrMalformedResponse is returned when a 2xx body decodes but lacks the
// data the caller asked for: a JSON null, or a listing without results.
var ErrMalformedResponse = errors.New("malformed response")
