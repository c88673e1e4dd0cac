package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/mmcdole/nefes/internal/domain"
)

// maxSuggestDistance bounds how far a typo may be from a declared category
const maxSuggestDistance = 3

// Apply returns the entries visible under the given selection.
//
// CategoryAll yields every entry; any other selection yields the entries whose
// category equals it, in their original order. An unknown selection yields an
// empty slice. The input is never modified and the result never aliases it.
func Apply(entries []domain.Exercise, selection domain.Category) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(entries))
	for _, e := range entries {
		if selection == domain.CategoryAll || e.Category == selection {
			out = append(out, e)
		}
	}
	return out
}

// Suggest returns the declared category closest to input, if one is close enough.
// Matching is case-insensitive; an exact match is not a suggestion.
func Suggest(categories []domain.Category, input domain.Category) (domain.Category, bool) {
	needle := strings.ToLower(string(input))
	if needle == "" {
		return "", false
	}

	var best domain.Category
	bestDist := maxSuggestDistance + 1
	for _, c := range categories {
		if c == input {
			return "", false
		}
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(string(c)))
		if dist < bestDist {
			best, bestDist = c, dist
		}
	}
	if bestDist > maxSuggestDistance {
		return "", false
	}
	return best, true
}
