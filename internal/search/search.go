package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	lithammer "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/nefes/internal/domain"
	"github.com/sahilm/fuzzy"
)

// Result is a ranked match with metadata for highlighting
type Result struct {
	Item           domain.ListItem
	Index          int   // Position in the indexed slice
	MatchedIndexes []int // Rune positions of the title that matched
	Score          int   // Match score (higher is better)
}

// Index implements sahilm/fuzzy.Source over item titles
type Index struct {
	items       []domain.ListItem
	lowerTitles []string // Pre-computed lowercase titles
}

// NewIndex builds an index over items, preserving their order
func NewIndex(items []domain.ListItem) *Index {
	idx := &Index{
		items:       make([]domain.ListItem, len(items)),
		lowerTitles: make([]string, len(items)),
	}
	copy(idx.items, items)
	for i, item := range items {
		idx.lowerTitles[i] = lower(item.GetTitle())
	}
	return idx
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx *Index) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of items (implements fuzzy.Source)
func (idx *Index) Len() int { return len(idx.items) }

// Find returns items matching query, best match first.
// An empty query returns every item in index order.
func (idx *Index) Find(query string) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		results := make([]Result, len(idx.items))
		for i, item := range idx.items {
			results[i] = Result{Item: item, Index: i}
		}
		return results
	}

	matches := fuzzy.FindFrom(lower(query), idx)
	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Item:           idx.items[m.Index],
			Index:          m.Index,
			MatchedIndexes: runeIndexes(idx.lowerTitles[m.Index], m.MatchedIndexes),
			Score:          m.Score,
		}
	}
	return results
}

// lower maps rune by rune so titles keep their rune count ("İ" becomes "i")
func lower(s string) string {
	return strings.Map(unicode.ToLower, s)
}

// runeIndexes converts the byte offsets reported by sahilm/fuzzy into rune positions
func runeIndexes(s string, offsets []int) []int {
	out := make([]int, 0, len(offsets))
	for _, off := range offsets {
		if off < 0 || off > len(s) {
			continue
		}
		out = append(out, utf8.RuneCountInString(s[:off]))
	}
	return out
}

// FindFold returns the indexes of texts that contain the characters of query
// in order, ignoring case and diacritics. Indexes keep source order.
// An empty query matches everything; no match yields an empty, non-nil slice.
func FindFold(query string, texts []string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		all := make([]int, len(texts))
		for i := range texts {
			all[i] = i
		}
		return all
	}

	out := []int{}
	for i, text := range texts {
		if lithammer.MatchNormalizedFold(query, text) {
			out = append(out, i)
		}
	}
	return out
}
