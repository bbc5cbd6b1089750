package ui

import (
	"strings"
	"testing"

	"github.com/five82/pokedex/internal/catalog"
)

func TestColumnsFor(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{20, 1},
		{cardWidth, 1},
		{2*cardWidth + 5, 2},
		{3 * cardWidth, 3},
		{4 * cardWidth, 4},
		{500, 4},
	}
	for _, tt := range tests {
		if got := columnsFor(tt.width); got != tt.want {
			t.Errorf("columnsFor(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestRenderCard(t *testing.T) {
	styles := GetTheme("Dracula").Styles()
	e := catalog.Entity{
		Name:     "mr-mime",
		ImageURL: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/122.png",
		HP:       catalog.KnownStat(40),
	}

	card := renderCard(e, styles)
	if !strings.Contains(card, "Mr-Mime") {
		t.Fatalf("card missing title:\n%s", card)
	}
	if !strings.Contains(card, "40") {
		t.Fatalf("card missing hp value:\n%s", card)
	}
	if strings.Count(card, catalog.NotAvailable) != 2 {
		t.Fatalf("card should show N/A for attack and base experience:\n%s", card)
	}
	if !strings.Contains(card, "122.png") {
		t.Fatalf("card lost the end of the image URL:\n%s", card)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"pikachu", 10, "pikachu"},
		{"pikachu", 6, "pik..."},
		{"pikachu", 3, "pik"},
		{"pikachu", 0, ""},
		{"flabébé", 6, "fla..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("https://example.com/sprites/pokemon/25.png", 20)
	if len([]rune(got)) != 20 {
		t.Fatalf("truncateMiddle length = %d, want 20 (%q)", len([]rune(got)), got)
	}
	if !strings.HasPrefix(got, "https") || !strings.HasSuffix(got, "25.png") || !strings.Contains(got, "...") {
		t.Fatalf("truncateMiddle = %q, want start, ellipsis and file name", got)
	}
	if got := truncateMiddle("short", 20); got != "short" {
		t.Fatalf("truncateMiddle short = %q", got)
	}
}
