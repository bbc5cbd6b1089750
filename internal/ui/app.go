package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/prefs"
	"github.com/five82/pokedex/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Pipeline  *state.Pipeline
	Builder   state.Builder
	Query     string // initial search query
	ThemeName string
	PrefsPath string
	LogPath   string
	Logger    *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	pipeline  *state.Pipeline
	builder   state.Builder
	prefsPath string
	logPath   string
	logger    *slog.Logger
	keys      keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	showLogs bool

	// Data state
	snapshot state.Snapshot

	// Components
	search  textinput.Model
	spinner spinner.Model
	grid    viewport.Model
	logs    logPane
}

// New creates a new Bubble Tea model. An initial query is applied to the
// pipeline before loading starts.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pipeline := opts.Pipeline
	if pipeline == nil {
		pipeline = state.New(opts.Logger)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Placeholder = "Search Pokémon..."
	search.Prompt = "/ "
	search.CharLimit = 64
	search.SetValue(opts.Query)
	if opts.Query != "" {
		pipeline.SetQuery(opts.Query)
	}

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := Model{
		ctx:       ctx,
		pipeline:  pipeline,
		builder:   opts.Builder,
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		logger:    logger,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		search:    search,
		spinner:   spin,
		snapshot:  pipeline.Snapshot(),
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.builder != nil {
		cmds = append(cmds, loadCmd(m.ctx, m.pipeline, m.builder))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.grid = viewport.New(m.width, m.gridHeight())
		}
		m.ready = true
		m.layout()
		return m, nil

	case spinner.TickMsg:
		if !m.snapshot.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		// Re-read: the query may have changed while the load was in flight.
		m.snapshot = m.pipeline.Snapshot()
		m.refreshGrid()
		if m.showLogs {
			return m, readLogsCmd(m.logPath)
		}
		return m, nil

	case logLinesMsg:
		m.logs.lines = msg.lines
		m.logs.err = msg.err
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		m.applyTheme()
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		m.setQuery("")
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.refreshGrid()
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleLogs):
		m.showLogs = !m.showLogs
		m.layout()
		if m.showLogs {
			return m, readLogsCmd(m.logPath)
		}
		return m, nil
	}

	return m.handleGridKey(msg)
}

// handleSearchKey routes keys to the search box. Every edit that changes
// the text updates the pipeline query.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Clear):
		m.search.Blur()
		m.setQuery("")
		m.applyTheme()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.search.Blur()
		m.applyTheme()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.applyQuery(m.search.Value())
	}
	return m, cmd
}

// handleGridKey scrolls the card grid.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.grid.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.grid.ScrollUp(1)
	case key.Matches(msg, m.keys.PageDown):
		m.grid.PageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.grid.PageUp()
	case key.Matches(msg, m.keys.Top):
		m.grid.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.grid.GotoBottom()
	}
	return m, nil
}

// setQuery replaces the search text and applies it.
func (m *Model) setQuery(q string) {
	m.search.SetValue(q)
	m.applyQuery(q)
}

// applyQuery pushes q to the pipeline and re-renders from the new snapshot.
func (m *Model) applyQuery(q string) {
	m.pipeline.SetQuery(q)
	m.snapshot = m.pipeline.Snapshot()
	m.refreshGrid()
	m.grid.GotoTop()
}

// applyTheme restyles the search box for the current theme and focus.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.spinner.Style = styles.WarningText
	if m.search.Focused() {
		m.search.PromptStyle = styles.SearchPrompt
	}
}

// layout resizes the grid to the space left by the header and log pane.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	m.grid.Width = m.width
	m.grid.Height = m.gridHeight()
	m.search.Width = max(m.width-4, 10)
	m.refreshGrid()
}

// chromeHeight is header + command bar + search box.
const chromeHeight = 3

func (m Model) gridHeight() int {
	h := m.height - chromeHeight
	if m.showLogs {
		h -= logPaneHeight
	}
	return max(h, 1)
}

// refreshGrid re-renders the cards into the viewport.
func (m *Model) refreshGrid() {
	if !m.ready {
		return
	}
	m.grid.SetContent(m.renderGrid(m.width))
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	parts := []string{
		m.renderHeader(),
		m.renderCommandBar(),
		m.renderSearch(),
		m.grid.View(),
	}
	if m.showLogs {
		parts = append(parts, m.renderLogs())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderSearch renders the search box line.
func (m Model) renderSearch() string {
	style := lipgloss.NewStyle().Padding(0, 1).Width(m.width)
	if m.search.Focused() {
		style = style.Background(lipgloss.Color(m.theme.FocusBg))
	}
	return style.Render(strings.TrimRight(m.search.View(), " "))
}

// Messages

// loadedMsg signals that the pipeline finished loading.
type loadedMsg struct{}

// Commands

func loadCmd(ctx context.Context, pipeline *state.Pipeline, builder state.Builder) tea.Cmd {
	return func() tea.Msg {
		pipeline.Load(ctx, builder)
		return loadedMsg{}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
