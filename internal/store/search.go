package store

import (
	"strings"

	"github.com/fitfocus/fitfocus-cli/internal/model"
)

const maxSearchResults = 15

// SearchFoods queries the merged food list, custom items first, then the
// built-in catalog. An empty term returns the favorites in merged-list
// order; any other term, whitespace included, does a case-insensitive
// substring match over names, capped at 15 results. No ranking beyond
// source precedence.
func (s *Store) SearchFoods(term string) []model.FoodItem {
	merged := make([]model.FoodItem, 0, len(s.customFoods)+len(s.catalog))
	merged = append(merged, s.customFoods...)
	merged = append(merged, s.catalog...)

	if term == "" {
		favs := make(map[string]bool, len(s.favorites))
		for _, id := range s.favorites {
			favs[id] = true
		}
		out := make([]model.FoodItem, 0, len(s.favorites))
		for _, f := range merged {
			if favs[f.ID] {
				out = append(out, f)
			}
		}
		return out
	}

	needle := strings.ToLower(term)
	out := make([]model.FoodItem, 0, maxSearchResults)
	for _, f := range merged {
		if strings.Contains(strings.ToLower(f.Name), needle) {
			out = append(out, f)
			if len(out) == maxSearchResults {
				break
			}
		}
	}
	return out
}
