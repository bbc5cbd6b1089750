package catalog

import "log/slog"

const (
	// DefaultListingLimit is the page size requested from the listing endpoint.
	DefaultListingLimit = 50
	// DefaultCatalogSize caps the number of entities kept after resolution.
	DefaultCatalogSize = 32
	// DefaultPlaceholderImage replaces a missing front sprite.
	DefaultPlaceholderImage = "https://via.placeholder.com/100"
)

type settings struct {
	listingLimit int
	catalogSize  int
	concurrency  int
	placeholder  string
	logger       *slog.Logger
}

func defaultSettings() settings {
	return settings{
		listingLimit: DefaultListingLimit,
		catalogSize:  DefaultCatalogSize,
		placeholder:  DefaultPlaceholderImage,
	}
}

// Option configures a Resolver or Builder.
type Option func(*settings)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithListingLimit sets the listing page size. Non-positive values are ignored.
func WithListingLimit(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.listingLimit = n
		}
	}
}

// WithCatalogSize sets the catalog cap. Non-positive values are ignored.
func WithCatalogSize(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.catalogSize = n
		}
	}
}

// WithConcurrency caps in-flight detail requests. Zero means unbounded.
func WithConcurrency(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.concurrency = n
		}
	}
}

// WithPlaceholderImage overrides the fallback image URL.
func WithPlaceholderImage(url string) Option {
	return func(s *settings) {
		if url != "" {
			s.placeholder = url
		}
	}
}

func applyOptions(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}
