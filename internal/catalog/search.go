package catalog

import "strings"

// Filter returns the entities whose name contains query, ignoring case.
// An empty query matches everything. Order is preserved and c is not modified.
func Filter(c Catalog, query string) Catalog {
	needle := strings.ToLower(query)
	out := make(Catalog, 0, len(c))
	for _, e := range c {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}
