package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the read-only PokeAPI calls the catalog pipeline needs.
// This interface is implemented by *Client and can be faked in tests.
type Fetcher interface {
	FetchListing(ctx context.Context, limit int) ([]ListingEntry, error)
	FetchDetail(ctx context.Context, locator string) (*Detail, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the PokeAPI HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    *slog.Logger
}

const (
	// DefaultBaseURL is the public PokeAPI v2 root.
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	defaultUserAgent = "pokedex/0.1"
	listingPath      = "pokemon"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a Client rooted at baseURL. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchListing retrieves up to limit entries from the pokemon index.
func (c *Client) FetchListing(ctx context.Context, limit int) ([]ListingEntry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	rel := &url.URL{Path: listingPath, RawQuery: values.Encode()}
	var payload *ListingResponse
	if err := c.doURL(ctx, c.baseURL.ResolveReference(rel), &payload); err != nil {
		return nil, err
	}
	// An empty results array is valid; a null body or missing field is not.
	if payload == nil || payload.Results == nil {
		return nil, fmt.Errorf("decode response: listing has no results: %w", ErrMalformedResponse)
	}
	return payload.Results, nil
}

// FetchDetail retrieves the detail record addressed by locator. Relative
// locators resolve against the base URL; absolute ones are used as-is.
func (c *Client) FetchDetail(ctx context.Context, locator string) (*Detail, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	trimmed := strings.TrimSpace(locator)
	if trimmed == "" {
		return nil, fmt.Errorf("detail locator required")
	}
	ref, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse locator %q: %w", locator, err)
	}
	var payload *Detail
	if err := c.doURL(ctx, c.baseURL.ResolveReference(ref), &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, fmt.Errorf("decode response: null detail: %w", ErrMalformedResponse)
	}
	return payload, nil
}

func (c *Client) doURL(ctx context.Context, reqURL *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("api request",
		"url", reqURL.String(),
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", reqURL.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseBaseURL normalizes the API root so relative paths resolve beneath it.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
