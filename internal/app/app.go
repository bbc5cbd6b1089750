package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/pokedex/internal/catalog"
	"github.com/five82/pokedex/internal/config"
	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/prefs"
	"github.com/five82/pokedex/internal/report"
	"github.com/five82/pokedex/internal/state"
	"github.com/five82/pokedex/internal/ui"
)

// Options configure the pokedex application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pokedex/prefs.toml
	Query      string // initial search query
	Verbose    bool   // log at debug level
}

// Run boots the pokedex TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	userPrefs := prefs.Load(opts.PrefsPath)

	uiOpts := ui.Options{
		Context:   ctx,
		Pipeline:  state.New(env.logger),
		Builder:   env.builder,
		Query:     opts.Query,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogPath:   env.cfg.LogFile,
		Logger:    env.logger,
	}
	return ui.Run(uiOpts)
}

// List builds the catalog without a UI and writes the entities matching
// opts.Query to w. Unlike the TUI, a listing failure is returned so the
// caller can exit non-zero.
func List(ctx context.Context, opts Options, format report.Format, w io.Writer) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	pipeline := state.New(env.logger)
	pipeline.SetQuery(opts.Query)

	builder := &errorRecorder{Builder: env.builder}
	snap := pipeline.Load(ctx, builder)
	if builder.err != nil {
		return builder.err
	}

	return report.Write(w, format, report.Result{
		Query:   opts.Query,
		Total:   len(snap.Catalog),
		Visible: snap.Visible,
	})
}

// environment is everything Run and List share.
type environment struct {
	cfg     config.Config
	logger  *slog.Logger
	builder *catalog.Builder
	closer  io.Closer
}

func (e *environment) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

func setup(opts Options) (*environment, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := openLogger(cfg.LogFile, opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	slog.SetDefault(logger)

	client, err := pokeapi.NewClient(cfg.BaseURL,
		pokeapi.WithTimeout(cfg.RequestTimeout),
		pokeapi.WithLogger(logger),
	)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init pokeapi client: %w", err)
	}

	builderOpts := append(cfg.CatalogOptions(), catalog.WithLogger(logger))
	logger.Info("pokedex starting",
		"base_url", client.BaseURL(),
		"listing_limit", cfg.ListingLimit,
		"catalog_size", cfg.CatalogSize,
	)

	return &environment{
		cfg:     cfg,
		logger:  logger,
		builder: catalog.NewBuilder(client, builderOpts...),
		closer:  closer,
	}, nil
}

// errorRecorder keeps the build error the pipeline would otherwise only log.
type errorRecorder struct {
	state.Builder
	err error
}

func (r *errorRecorder) Build(ctx context.Context) (catalog.Catalog, error) {
	c, err := r.Builder.Build(ctx)
	r.err = err
	return c, err
}
