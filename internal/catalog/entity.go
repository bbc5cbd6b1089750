package catalog

import (
	"encoding/json"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NotAvailable is the display value for a stat the detail record lacked.
const NotAvailable = "N/A"

// Stat is a base stat that is either a known integer or NotAvailable.
// The zero value is NotAvailable.
type Stat struct {
	value int
	known bool
}

// KnownStat wraps a value reported by the API.
func KnownStat(v int) Stat {
	return Stat{value: v, known: true}
}

// Value returns the stat and whether it was reported.
func (s Stat) Value() (int, bool) {
	return s.value, s.known
}

// Known reports whether the stat was present in the detail record.
func (s Stat) Known() bool {
	return s.known
}

func (s Stat) String() string {
	if !s.known {
		return NotAvailable
	}
	return strconv.Itoa(s.value)
}

// MarshalJSON encodes a known stat as a number and a missing one as "N/A".
func (s Stat) MarshalJSON() ([]byte, error) {
	if !s.known {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(s.value)
}

// MarshalYAML mirrors MarshalJSON for yaml.v3.
func (s Stat) MarshalYAML() (any, error) {
	if !s.known {
		return NotAvailable, nil
	}
	return s.value, nil
}

// Entity is the normalized record for one Pokémon. Every field is always set:
// ImageURL falls back to a placeholder and stats fall back to NotAvailable.
type Entity struct {
	Name           string `json:"name" yaml:"name"`
	ImageURL       string `json:"imageUrl" yaml:"imageUrl"`
	HP             Stat   `json:"hp" yaml:"hp"`
	Attack         Stat   `json:"attack" yaml:"attack"`
	BaseExperience Stat   `json:"baseExperience" yaml:"baseExperience"`
}

// Title returns the name capitalized for display ("mr-mime" -> "Mr-Mime").
func (e Entity) Title() string {
	return cases.Title(language.English).String(e.Name)
}

// Catalog is an ordered, bounded list of entities in listing order.
type Catalog []Entity

// Names returns entity names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, e := range c {
		names[i] = e.Name
	}
	return names
}
