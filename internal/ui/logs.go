package ui

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/logtail"
)

const (
	logPaneHeight = 8
	// logReadLines bounds how much of the log file is scanned per refresh.
	logReadLines = 500
)

// logPane holds the warning/error lines shown under the grid.
type logPane struct {
	lines []string
	err   error
}

type logLinesMsg struct {
	lines []string
	err   error
}

// readLogsCmd loads the tail of the log file and keeps warnings and errors.
func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logLinesMsg{}
		}
		lines, err := logtail.Read(path, logReadLines)
		if err != nil {
			return logLinesMsg{err: err}
		}
		return logLinesMsg{lines: logtail.AtLeast(lines, slog.LevelWarn)}
	}
}

// renderLogs renders the log pane with a title line.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	bodyHeight := logPaneHeight - 1

	var body []string
	switch {
	case m.logs.err != nil:
		body = []string{styles.DangerText.Render(m.logs.err.Error())}
	case len(m.logs.lines) == 0:
		body = []string{styles.MutedText.Render("No warnings or errors")}
	default:
		lines := m.logs.lines
		if len(lines) > bodyHeight {
			lines = lines[len(lines)-bodyHeight:]
		}
		for _, line := range lines {
			body = append(body, m.colorizeLine(truncate(line, max(m.width-2, 1)), styles))
		}
	}
	for len(body) < bodyHeight {
		body = append(body, "")
	}

	title := styles.AccentText.Bold(true).Render("Warnings")
	if m.logPath != "" {
		title += "  " + styles.FaintText.Render(truncateMiddle(m.logPath, 50))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Width(m.width).
		Padding(0, 1).
		Render(title + "\n" + strings.Join(body, "\n"))
}

// colorizeLine colors a slog text line by its level.
func (m Model) colorizeLine(line string, styles Styles) string {
	level, ok := logtail.Level(line)
	switch {
	case !ok:
		return styles.Text.Render(line)
	case level >= slog.LevelError:
		return styles.DangerText.Render(line)
	case level >= slog.LevelWarn:
		return styles.WarningText.Render(line)
	default:
		return styles.MutedText.Render(line)
	}
}
