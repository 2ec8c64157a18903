package catalog

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestions = 3

// Lookup resolves an ingredient token, either a decimal id present in the
// table or a name. Names compare case-insensitively, with spaces and hyphens
// treated as underscores.
func (t AdjacencyTable) Lookup(token string) (IngredientID, error) {
	if id, ok := parseID(token); ok {
		if _, exists := t[IngredientID(id)]; exists {
			return IngredientID(id), nil
		}
	}
	want := normalizeName(token)
	for _, id := range t.IDs() {
		if normalizeName(t[id].Name) == want {
			return id, nil
		}
	}
	return 0, &UnknownNameError{Name: token, Suggestions: t.suggest(want)}
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// suggestionLimit grows with the candidate length so short names need a
// close match.
func suggestionLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	}
	return 3
}

func (t AdjacencyTable) suggest(token string) []string {
	type scored struct {
		name string
		dist int
	}
	var cands []scored
	for _, ing := range t {
		name := normalizeName(ing.Name)
		dist := levenshtein.ComputeDistance(token, name)
		if strings.HasPrefix(name, token) && len(token) >= 2 {
			dist = 0
		}
		if dist > suggestionLimit(len(name)) {
			continue
		}
		cands = append(cands, scored{ing.Name, dist})
	}
	slices.SortFunc(cands, func(a, b scored) int {
		if a.dist != b.dist {
			return a.dist - b.dist
		}
		return strings.Compare(a.name, b.name)
	})
	var out []string
	for i := 0; i < len(cands) && i < maxSuggestions; i++ {
		out = append(out, cands[i].name)
	}
	return out
}
