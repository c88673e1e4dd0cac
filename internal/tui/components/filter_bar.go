package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/nefes/internal/domain"
	"github.com/mmcdole/nefes/internal/tui/styles"
)

// AllLabel is the chip label for the "no filter" selection
const AllLabel = "Tümü"

// FilterBar renders the category chips of the exercise list
type FilterBar struct {
	options  []domain.Category // CategoryAll first, then the declared categories
	selected domain.Category
}

// NewFilterBar creates a filter bar with "All" selected
func NewFilterBar(categories []domain.Category) FilterBar {
	options := make([]domain.Category, 0, len(categories)+1)
	options = append(options, domain.CategoryAll)
	options = append(options, categories...)
	return FilterBar{options: options, selected: domain.CategoryAll}
}

// Selected returns the highlighted category
func (f FilterBar) Selected() domain.Category { return f.selected }

// Options returns the selectable categories in display order
func (f FilterBar) Options() []domain.Category {
	return append([]domain.Category(nil), f.options...)
}

// Select highlights c. Undeclared categories are kept as-is so the
// empty state can explain them; no chip is highlighted then.
func (f *FilterBar) Select(c domain.Category) { f.selected = c }

// Next moves the selection right, wrapping around
func (f *FilterBar) Next() domain.Category {
	f.selected = f.options[(f.index()+1)%len(f.options)]
	return f.selected
}

// Prev moves the selection left, wrapping around
func (f *FilterBar) Prev() domain.Category {
	i := f.index() - 1
	if i < 0 {
		i = len(f.options) - 1
	}
	f.selected = f.options[i]
	return f.selected
}

// index returns the position of the selection, treating unknown values as "All"
func (f FilterBar) index() int {
	for i, c := range f.options {
		if c == f.selected {
			return i
		}
	}
	return 0
}

// Label returns the display label of c
func Label(c domain.Category) string {
	if c == domain.CategoryAll {
		return AllLabel
	}
	return string(c)
}

// View renders the chips on one line, truncated to width
func (f FilterBar) View(width int) string {
	chips := make([]string, len(f.options))
	for i, c := range f.options {
		style := styles.ChipStyle
		if c == f.selected {
			style = styles.ChipSelectedStyle
		}
		chips[i] = style.Render(Label(c))
	}
	line := strings.Join(chips, " ")
	if width > 0 && lipgloss.Width(line) > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}
