package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/five82/pokedex/internal/catalog"
)

// writeJSON emits the visible list as an indented JSON array. An empty list
// is [] rather than null.
func writeJSON(w io.Writer, r Result) error {
	visible := r.Visible
	if visible == nil {
		visible = catalog.Catalog{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(visible)
}

func writeYAML(w io.Writer, r Result) error {
	visible := r.Visible
	if visible == nil {
		visible = catalog.Catalog{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(visible); err != nil {
		return err
	}
	return enc.Close()
}
