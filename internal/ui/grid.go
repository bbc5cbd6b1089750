package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pokedex/internal/catalog"
)

const (
	maxColumns = 4
	cardWidth  = 32 // outer width including border
	// cardInner is the text width inside border and padding.
	cardInner = cardWidth - 4
)

// columnsFor returns how many cards fit side by side, between 1 and 4.
func columnsFor(width int) int {
	return min(max(width/cardWidth, 1), maxColumns)
}

// renderGrid lays the visible entities out in rows of cards.
func (m Model) renderGrid(width int) string {
	styles := m.theme.Styles()

	if m.snapshot.Loading() {
		return styles.MutedText.Padding(1, 2).Render("Fetching Pokémon...")
	}
	if len(m.snapshot.Catalog) == 0 {
		return styles.DangerText.Padding(1, 2).Render("No Pokémon loaded. Press L to see the log.")
	}
	if len(m.snapshot.Visible) == 0 {
		return styles.MutedText.Padding(1, 2).Render(
			fmt.Sprintf("No Pokémon match %q.", m.snapshot.Query))
	}

	cols := columnsFor(width)
	rows := make([]string, 0, (len(m.snapshot.Visible)+cols-1)/cols)
	for start := 0; start < len(m.snapshot.Visible); start += cols {
		end := min(start+cols, len(m.snapshot.Visible))
		cards := make([]string, 0, end-start)
		for _, e := range m.snapshot.Visible[start:end] {
			cards = append(cards, renderCard(e, styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one entity: name, image URL and the three stats.
func renderCard(e catalog.Entity, styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.CardTitle.Render(truncate(e.Title(), cardInner)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(truncateMiddle(e.ImageURL, cardInner)))
	b.WriteString("\n")
	b.WriteString(statLine("HP", "hp", e.HP, styles))
	b.WriteString("\n")
	b.WriteString(statLine("Attack", "attack", e.Attack, styles))
	b.WriteString("\n")
	b.WriteString(statLine("Base Exp", "base_experience", e.BaseExperience, styles))

	return styles.Card.Width(cardWidth - 2).Render(b.String())
}

func statLine(label, stat string, value catalog.Stat, styles Styles) string {
	valueStyle := styles.Text
	if !value.Known() {
		valueStyle = styles.MutedText
	}
	return styles.StatStyle(stat).Width(10).Render(label) + valueStyle.Render(value.String())
}
