package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the status bar: logo, phase and match counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	parts := []string{styles.Logo.Render("pokédex")}

	if m.snapshot.Loading() {
		parts = append(parts,
			m.spinner.View()+" "+styles.WarningText.Bold(true).Render("Loading..."))
		return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
	}

	total := len(m.snapshot.Catalog)
	visible := len(m.snapshot.Visible)
	countStyle := styles.SuccessText
	if visible == 0 {
		countStyle = styles.DangerText
	}
	parts = append(parts,
		styles.MutedText.Render("Showing:")+" "+countStyle.Render(fmt.Sprintf("%d/%d", visible, total)))

	if m.snapshot.Query != "" {
		parts = append(parts,
			styles.MutedText.Render("Query:")+" "+styles.InfoText.Render(truncate(m.snapshot.Query, 24)))
	}

	if !m.snapshot.LoadedAt.IsZero() {
		parts = append(parts, styles.MutedText.Render(m.snapshot.LoadedAt.Format("15:04:05")))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	type cmd struct{ key, desc string }
	var commands []cmd
	if m.search.Focused() {
		commands = []cmd{
			{"enter", "Done"},
			{"esc", "Clear"},
		}
	} else {
		logsLabel := "Logs"
		if m.showLogs {
			logsLabel = "Hide logs"
		}
		commands = []cmd{
			{"/", "Search"},
			{"j/k", "Scroll"},
			{"L", logsLabel},
			{"?", "More"},
		}
	}

	colon := styles.FaintText.Render(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			styles.AccentText.Render(c.key)+colon+styles.MutedText.Render(c.desc))
	}
	segments = append(segments,
		styles.AccentText.Render("T")+colon+styles.FaintText.Render(m.theme.Name))

	return styles.Header.Width(m.width).Render(strings.Join(segments, "  "))
}

// truncate truncates a string to max runes with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// truncateMiddle truncates a string in the middle, preserving start and end.
func truncateMiddle(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 5 {
		return string(r[:max])
	}
	// Keep more of the end (file name) than the start
	endLen := (max - 3) * 2 / 3
	startLen := max - 3 - endLen
	return string(r[:startLen]) + "..." + string(r[len(r)-endLen:])
}
