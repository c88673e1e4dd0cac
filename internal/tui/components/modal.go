package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/nefes/internal/tui/styles"
)

// PromptModal is a small dismissable notice with a title and a body
type PromptModal struct {
	visible bool
	title   string
	body    string
	action  string
}

// NewPromptModal creates a hidden modal
func NewPromptModal() PromptModal {
	return PromptModal{}
}

// Show displays the modal
func (m *PromptModal) Show(title, body, action string) {
	m.visible = true
	m.title = title
	m.body = body
	m.action = action
}

// Hide dismisses the modal
func (m *PromptModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m PromptModal) IsVisible() bool {
	return m.visible
}

// Update handles key events, returns (modal, confirmed)
func (m PromptModal) Update(msg tea.Msg) (PromptModal, bool) {
	if !m.visible {
		return m, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, ModalKeys.Confirm):
			m.Hide()
			return m, true
		case key.Matches(keyMsg, ModalKeys.Dismiss):
			m.Hide()
		}
	}
	return m, false
}

// View renders the modal
func (m PromptModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 40

	titleStyle := styles.ModalTitleStyle.Width(modalWidth)

	bodyStyle := lipgloss.NewStyle().
		Foreground(styles.LightGray).
		Width(modalWidth).
		Background(styles.SlateDark)

	spacer := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark).
		Render("")

	action := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark).
		Render(styles.HelpKeyStyle.Render("enter") + styles.HelpDescStyle.Render(" "+m.action))

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		spacer,
		bodyStyle.Render(m.body),
		spacer,
		action,
	)

	return styles.ModalStyle.Render(content)
}
