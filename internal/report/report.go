package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/five82/pokedex/internal/catalog"
)

// Format selects the output encoding of the headless list command.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats in help-text order.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}
}

// ParseFormat accepts a format name, case-insensitively. "md" is an alias
// for markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want one of %v)", s, Formats())
	}
}

// Result is what a report renders: the filtered list plus enough context to
// describe it.
type Result struct {
	Query   string
	Total   int
	Visible catalog.Catalog
}

// Write renders r to w in the requested format.
func Write(w io.Writer, format Format, r Result) error {
	switch format {
	case FormatText, "":
		return writeText(w, r)
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	case FormatMarkdown:
		return writeMarkdown(w, r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func summary(r Result) string {
	if r.Query == "" {
		return fmt.Sprintf("%d Pokémon", len(r.Visible))
	}
	return fmt.Sprintf("%d of %d Pokémon matching %q", len(r.Visible), r.Total, r.Query)
}

func rows(c catalog.Catalog) [][]string {
	out := make([][]string, 0, len(c))
	for _, e := range c {
		out = append(out, []string{
			e.Title(),
			e.HP.String(),
			e.Attack.String(),
			e.BaseExperience.String(),
			e.ImageURL,
		})
	}
	return out
}

var headers = []string{"Name", "HP", "Attack", "Base Experience", "Image"}
