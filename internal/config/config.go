package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/pokedex/internal/catalog"
	"github.com/five82/pokedex/internal/pokeapi"
)

// AppName names the XDG subdirectories used for config, prefs and logs.
const AppName = "pokedex"

// EnvBaseURL overrides base_url when set.
const EnvBaseURL = "POKEDEX_BASE_URL"

// Config captures everything the pipeline and UI need at startup.
type Config struct {
	BaseURL          string
	ListingLimit     int
	CatalogSize      int
	PlaceholderImage string
	RequestTimeout   time.Duration // zero: no per-request timeout
	Concurrency      int           // zero: unbounded fan-out
	LogFile          string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:          pokeapi.DefaultBaseURL,
		ListingLimit:     catalog.DefaultListingLimit,
		CatalogSize:      catalog.DefaultCatalogSize,
		PlaceholderImage: catalog.DefaultPlaceholderImage,
		LogFile:          DefaultLogPath(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/pokedex/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// DefaultLogPath returns $XDG_STATE_HOME/pokedex/pokedex.log.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, AppName, AppName+".log")
}

// Load reads the config at path (DefaultPath when empty), falling back to
// defaults when the file is missing. The result is validated.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		if err := decode(file, &cfg); err != nil {
			return Config{}, err
		}
	}

	if env := strings.TrimSpace(os.Getenv(EnvBaseURL)); env != "" {
		cfg.BaseURL = env
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL          string `toml:"base_url"`
		ListingLimit     *int   `toml:"listing_limit"`
		CatalogSize      *int   `toml:"catalog_size"`
		PlaceholderImage string `toml:"placeholder_image"`
		RequestTimeout   string `toml:"request_timeout"`
		Concurrency      *int   `toml:"concurrency"`
		LogFile          string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if raw.ListingLimit != nil {
		cfg.ListingLimit = *raw.ListingLimit
	}
	if raw.CatalogSize != nil {
		cfg.CatalogSize = *raw.CatalogSize
	}
	if v := strings.TrimSpace(raw.PlaceholderImage); v != "" {
		cfg.PlaceholderImage = v
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, v)
		}
		cfg.RequestTimeout = d
	}
	if raw.Concurrency != nil {
		cfg.Concurrency = *raw.Concurrency
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	return nil
}

// Validate checks the configuration for values the pipeline cannot use.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if strings.TrimSpace(c.BaseURL) == "" || err != nil || (u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}
	if c.ListingLimit <= 0 {
		return ErrInvalidListingLimit
	}
	if c.CatalogSize <= 0 {
		return ErrInvalidCatalogSize
	}
	if c.RequestTimeout < 0 {
		return ErrInvalidTimeout
	}
	if c.Concurrency < 0 {
		return ErrInvalidConcurrency
	}
	return nil
}

// CatalogOptions translates the config into catalog builder options.
func (c Config) CatalogOptions() []catalog.Option {
	return []catalog.Option{
		catalog.WithListingLimit(c.ListingLimit),
		catalog.WithCatalogSize(c.CatalogSize),
		catalog.WithConcurrency(c.Concurrency),
		catalog.WithPlaceholderImage(c.PlaceholderImage),
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPath(), nil
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
