package pokeapi

// ListingResponse mirrors the payload returned by /pokemon?limit=N.
type ListingResponse struct {
	Count   int            `json:"count"`
	Next    *string        `json:"next"`
	Results []ListingEntry `json:"results"`
}

// ListingEntry is a lightweight reference to one Pokémon.
type ListingEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Detail mirrors the subset of /pokemon/{id} that the catalog reads.
// Every field is optional; absent and null values decode to nil.
type Detail struct {
	Name           string    `json:"name"`
	Sprites        *Sprites  `json:"sprites"`
	Stats          []StatRef `json:"stats"`
	BaseExperience *int      `json:"base_experience"`
}

// Sprites holds image URLs for a Pokémon.
type Sprites struct {
	FrontDefault *string `json:"front_default"`
}

// StatRef pairs a named stat with its base value.
type StatRef struct {
	BaseStat int          `json:"base_stat"`
	Effort   int          `json:"effort"`
	Stat     NamedAPIItem `json:"stat"`
}

// NamedAPIItem is PokeAPI's generic {name, url} reference.
type NamedAPIItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FrontImage returns the default front sprite, or "" when absent.
func (d Detail) FrontImage() string {
	if d.Sprites == nil || d.Sprites.FrontDefault == nil {
		return ""
	}
	return *d.Sprites.FrontDefault
}

// BaseStat returns the base value of the first stat named name.
func (d Detail) BaseStat(name string) (int, bool) {
	for _, s := range d.Stats {
		if s.Stat.Name == name {
			return s.BaseStat, true
		}
	}
	return 0, false
}
