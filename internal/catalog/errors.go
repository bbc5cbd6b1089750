package catalog

import "fmt"

// ListingFetchError reports that the listing request failed. Without a listing
// there is nothing to resolve, so this is the only error Build returns.
type ListingFetchError struct {
	Limit int
	Err   error
}

func (e *ListingFetchError) Error() string {
	return fmt.Sprintf("fetch listing (limit %d): %v", e.Limit, e.Err)
}

func (e *ListingFetchError) Unwrap() error {
	return e.Err
}
