package config

import "errors"

// Validation errors returned by Config.Validate and Load. Match with errors.Is.
var (
	ErrInvalidBaseURL      = errors.New("invalid base_url: must be an http(s) URL")
	ErrInvalidListingLimit = errors.New("invalid listing_limit: must be positive")
	ErrInvalidCatalogSize  = errors.New("invalid catalog_size: must be positive")
	ErrInvalidTimeout      = errors.New("invalid request_timeout: must be a non-negative duration")
	ErrInvalidConcurrency  = errors.New("invalid concurrency: must be non-negative")
)
