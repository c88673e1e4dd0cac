package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/nefes/internal/domain"
	"github.com/mmcdole/nefes/internal/tui/styles"
)

// ScrollIndicatorLines is the space reserved for the "more" hints above and below the rows
const ScrollIndicatorLines = 2

// Row is one renderable list entry
type Row struct {
	Item    domain.ListItem
	Accent  string // Hex colour of the leading marker
	Matched []int  // Rune positions of the title to highlight
}

// List is a scrollable single-selection list of rows
type List struct {
	rows       []Row
	cursor     int
	offset     int
	width      int
	height     int
	maxVisible int
	keys       ListKeyMap
}

// NewList creates an empty list
func NewList() List {
	return List{keys: ListKeys}
}

// SetItems replaces the rows. The cursor is kept when it is still in range.
func (l *List) SetItems(rows []Row) {
	l.rows = rows
	if l.cursor >= len(rows) {
		l.cursor = max(len(rows)-1, 0)
	}
	l.ensureVisible()
}

// SetSize sets the render area
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.maxVisible = max(height-ScrollIndicatorLines, 1)
	l.ensureVisible()
}

// Len returns the number of rows
func (l List) Len() int { return len(l.rows) }

// Cursor returns the selected row index
func (l List) Cursor() int { return l.cursor }

// Selected returns the selected item, or nil for an empty list
func (l List) Selected() domain.ListItem {
	if len(l.rows) == 0 {
		return nil
	}
	return l.rows[l.cursor].Item
}

// Update moves the cursor. It reports whether the key was consumed.
func (l *List) Update(msg tea.KeyMsg) bool {
	count := len(l.rows)
	if count == 0 {
		return false
	}

	switch {
	case key.Matches(msg, l.keys.Down):
		if l.cursor < count-1 {
			l.cursor++
		}
	case key.Matches(msg, l.keys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(msg, l.keys.Home):
		l.cursor = 0
	case key.Matches(msg, l.keys.End):
		l.cursor = count - 1
	case key.Matches(msg, l.keys.HalfDown):
		l.cursor = min(l.cursor+max(l.maxVisible/2, 1), count-1)
	case key.Matches(msg, l.keys.HalfUp):
		l.cursor = max(l.cursor-max(l.maxVisible/2, 1), 0)
	default:
		return false
	}
	l.ensureVisible()
	return true
}

// View renders the visible rows with scroll hints
func (l List) View() string {
	width := max(l.width, 10)
	count := len(l.rows)

	end := min(l.offset+l.maxVisible, count)
	lines := make([]string, 0, end-l.offset+ScrollIndicatorLines)

	// Always reserve the hint lines to prevent layout shifts
	header := " "
	if l.offset > 0 {
		header = styles.DimStyle.Render("↑ daha fazla")
	}
	lines = append(lines, header)

	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderRow(l.rows[i], i == l.cursor, width))
	}

	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ daha fazla")
	}
	lines = append(lines, footer)

	return strings.Join(lines, "\n")
}

func (l *List) ensureVisible() {
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

func (l List) renderRow(row Row, selected bool, width int) string {
	markerFg := styles.Accent(row.Accent)
	descFg := styles.DimGray

	// Available space: marker(2) + margins(2) + separator(3)
	desc := row.Item.GetDescription()
	titleWidth := max(width-lipgloss.Width(desc)-7, 5)
	title := styles.Truncate(row.Item.GetTitle(), titleWidth)

	parts := []styles.RowPart{{Text: "● ", Foreground: &markerFg}}
	parts = append(parts, highlightParts(title, row.Matched, selected)...)
	parts = append(parts, styles.RowPart{Text: " · " + desc, Foreground: &descFg})

	return styles.RenderListRow(parts, selected, width)
}

// highlightParts splits title into runs so matched runes can be emphasised
func highlightParts(title string, matched []int, selected bool) []styles.RowPart {
	if len(matched) == 0 {
		return []styles.RowPart{{Text: title}}
	}

	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	highlight := styles.Teal
	if selected {
		highlight = styles.Amber
	}

	var parts []styles.RowPart
	var run []rune
	runHit := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		part := styles.RowPart{Text: string(run)}
		if runHit {
			part.Foreground = &highlight
			part.Bold = true
		}
		parts = append(parts, part)
		run = run[:0]
	}

	for i, r := range []rune(title) {
		if hit[i] != runHit {
			flush()
			runHit = hit[i]
		}
		run = append(run, r)
	}
	flush()
	return parts
}
