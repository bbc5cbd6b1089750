package state

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/five82/pokedex/internal/catalog"
)

// Phase is the pipeline lifecycle: Idle -> Loading -> Ready, once.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Builder produces a catalog. Implemented by *catalog.Builder.
type Builder interface {
	Build(ctx context.Context) (catalog.Catalog, error)
}

// Snapshot is a consistent copy of the pipeline state for rendering.
type Snapshot struct {
	Phase    Phase
	Catalog  catalog.Catalog
	Query    string
	Visible  catalog.Catalog
	LoadedAt time.Time
}

// Loading reports whether the catalog is not yet available.
func (s Snapshot) Loading() bool {
	return s.Phase != PhaseReady
}

// Pipeline owns the catalog, the current query and the filtered view.
// Visible is recomputed on every catalog or query change so it never lags.
type Pipeline struct {
	mu       sync.RWMutex
	phase    Phase
	catalog  catalog.Catalog
	query    string
	visible  catalog.Catalog
	loadedAt time.Time
	logger   *slog.Logger
}

// New creates an idle Pipeline. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger}
}

// Begin moves Idle to Loading. It returns false if loading already started,
// so the catalog is fetched at most once.
func (p *Pipeline) Begin() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.phase != PhaseIdle {
		return false
	}
	p.phase = PhaseLoading
	p.logger.Info("pipeline loading")
	return true
}

// Complete moves Loading to Ready. A build error is logged and leaves an
// empty catalog; there is no error phase.
func (p *Pipeline) Complete(c catalog.Catalog, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.phase != PhaseLoading {
		p.logger.Warn("pipeline complete ignored", "phase", p.phase.String())
		return
	}
	if err != nil {
		p.logger.Error("catalog build failed", "error", err)
		c = nil
	}
	p.catalog = clone(c)
	p.visible = catalog.Filter(p.catalog, p.query)
	p.phase = PhaseReady
	p.loadedAt = time.Now()
	p.logger.Info("pipeline ready", "entities", len(p.catalog), "visible", len(p.visible))
}

// Load runs the one-shot fetch. Calls after the first return the current
// snapshot without building again.
func (p *Pipeline) Load(ctx context.Context, b Builder) Snapshot {
	if !p.Begin() {
		return p.Snapshot()
	}
	c, err := b.Build(ctx)
	p.Complete(c, err)
	return p.Snapshot()
}

// SetQuery stores the lowercased query and recomputes the visible list.
func (p *Pipeline) SetQuery(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.query = strings.ToLower(query)
	p.visible = catalog.Filter(p.catalog, p.query)
}

// Snapshot returns a copy of the current state.
func (p *Pipeline) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return Snapshot{
		Phase:    p.phase,
		Catalog:  clone(p.catalog),
		Query:    p.query,
		Visible:  clone(p.visible),
		LoadedAt: p.loadedAt,
	}
}

func clone(c catalog.Catalog) catalog.Catalog {
	if len(c) == 0 {
		return nil
	}
	dup := make(catalog.Catalog, len(c))
	copy(dup, c)
	return dup
}
