package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/nefes/internal/domain"
	"github.com/mmcdole/nefes/internal/tui/styles"
)

// Accordion shows FAQ questions with at most one answer expanded
type Accordion struct {
	items   []domain.FAQItem
	visible []int // Indexes into items, in display order
	cursor  int   // Position within visible
	open    int   // Index into items, -1 when collapsed
}

// NewAccordion creates a collapsed accordion showing every item
func NewAccordion(items []domain.FAQItem) Accordion {
	a := Accordion{items: items, open: -1}
	a.ShowAll()
	return a
}

// ShowAll lists every item again
func (a *Accordion) ShowAll() {
	all := make([]int, len(a.items))
	for i := range a.items {
		all[i] = i
	}
	a.SetVisible(all)
}

// SetVisible restricts the accordion to the given item indexes.
// An empty or nil slice lists nothing. An open item that is filtered out is collapsed.
func (a *Accordion) SetVisible(indexes []int) {
	a.visible = indexes
	if a.cursor >= len(indexes) {
		a.cursor = max(len(indexes)-1, 0)
	}

	stillVisible := false
	for _, i := range indexes {
		if i == a.open {
			stillVisible = true
			break
		}
	}
	if !stillVisible {
		a.open = -1
	}
}

// VisibleCount returns the number of listed questions
func (a Accordion) VisibleCount() int { return len(a.visible) }

// Open returns the expanded item index, or -1
func (a Accordion) Open() int { return a.open }

// Up moves the cursor up
func (a *Accordion) Up() {
	if a.cursor > 0 {
		a.cursor--
	}
}

// Down moves the cursor down
func (a *Accordion) Down() {
	if a.cursor < len(a.visible)-1 {
		a.cursor++
	}
}

// Toggle expands the question under the cursor, collapsing any other.
// Toggling the open question collapses it.
func (a *Accordion) Toggle() {
	if len(a.visible) == 0 {
		return
	}
	idx := a.visible[a.cursor]
	if a.open == idx {
		a.open = -1
		return
	}
	a.open = idx
}

// View renders the questions, wrapping answers to width
func (a Accordion) View(width int) string {
	if len(a.visible) == 0 {
		return styles.DimStyle.Render("Eşleşen soru bulunamadı.")
	}

	answerStyle := lipgloss.NewStyle().
		Foreground(styles.LightGray).
		PaddingLeft(4).
		Width(max(width-2, 10))

	var lines []string
	for pos, idx := range a.visible {
		item := a.items[idx]

		marker := "▸"
		if idx == a.open {
			marker = "▾"
		}
		fg := styles.LightGray
		if pos == a.cursor {
			fg = styles.White
		}
		question := lipgloss.NewStyle().Foreground(fg).Bold(pos == a.cursor).
			Render(styles.Truncate(item.Question, max(width-4, 5)))
		lines = append(lines, styles.AccentStyle.Render(marker)+" "+question)

		if idx == a.open {
			lines = append(lines, answerStyle.Render(item.Answer))
		}
	}
	return strings.Join(lines, "\n")
}
