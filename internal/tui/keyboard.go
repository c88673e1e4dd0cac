package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/nefes/internal/domain"
)

// dashboardTargets are the dashboard cards in display order
var dashboardTargets = []Screen{ScreenExercises, ScreenBlogList, ScreenProfile, ScreenSupport}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		m.unmountCatalog()
		return m, tea.Quit
	}

	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}

	// Route to the active modal or text input first
	if m.readyPrompt.IsVisible() {
		m.readyPrompt, _ = m.readyPrompt.Update(msg)
		return m, nil
	}
	if handled, model, cmd := m.routeToInput(msg); handled {
		return model, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		m.unmountCatalog()
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil
	}

	switch m.Screen {
	case ScreenWelcome:
		return m.handleWelcomeKey(msg)
	case ScreenDashboard:
		return m.handleDashboardKey(msg)
	case ScreenExercises:
		return m.handleExercisesKey(msg)
	case ScreenExerciseDetail:
		return m.handleDetailKey(msg)
	case ScreenBlogList:
		return m.handleBlogListKey(msg)
	case ScreenBlogReader:
		return m.handleReaderKey(msg)
	case ScreenProfile:
		if key.Matches(msg, Keys.Back) {
			return m.back()
		}
	case ScreenSupport:
		return m.handleSupportKey(msg)
	}
	return m, nil
}

// routeToInput sends keys to a focused text input. It reports whether the key was consumed.
func (m Model) routeToInput(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case m.Screen == ScreenBlogList && m.blogSearch.Focused():
		switch msg.Type {
		case tea.KeyEsc:
			m.blogSearch.SetValue("")
			m.blogSearch.Blur()
			m.refreshPosts()
			return true, m, nil
		case tea.KeyEnter:
			m.blogSearch.Blur()
			return true, m, nil
		}
		var cmd tea.Cmd
		m.blogSearch, cmd = m.blogSearch.Update(msg)
		m.refreshPosts()
		return true, m, cmd

	case m.Screen == ScreenSupport && m.faqSearch.Focused():
		switch msg.Type {
		case tea.KeyEsc:
			m.faqSearch.SetValue("")
			m.faqSearch.Blur()
			m.faq.ShowAll()
			return true, m, nil
		case tea.KeyEnter:
			m.faqSearch.Blur()
			return true, m, nil
		}
		var cmd tea.Cmd
		m.faqSearch, cmd = m.faqSearch.Update(msg)
		m.faq.SetVisible(m.svc.Support.FilterFAQ(m.faqSearch.Value()))
		return true, m, cmd

	case m.Screen == ScreenSupport && m.messageFocused:
		switch {
		case key.Matches(msg, Keys.Send):
			cmd := m.submitSupport()
			return true, m, cmd
		case msg.Type == tea.KeyEsc, key.Matches(msg, Keys.Focus):
			m.messageFocused = false
			m.message.Blur()
			return true, m, nil
		}
		var cmd tea.Cmd
		m.message, cmd = m.message.Update(msg)
		return true, m, cmd
	}
	return false, m, nil
}

// updateFocusedInput forwards non-key messages to the focused input
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.blogSearch.Focused():
		m.blogSearch, cmd = m.blogSearch.Update(msg)
	case m.faqSearch.Focused():
		m.faqSearch, cmd = m.faqSearch.Update(msg)
	case m.messageFocused:
		m.message, cmd = m.message.Update(msg)
	case m.Screen == ScreenBlogReader:
		m.reader, cmd = m.reader.Update(msg)
	}
	return m, cmd
}

func (m Model) handleWelcomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.Enter, Keys.Back) {
		return m.navigate(ScreenDashboard)
	}
	return m, nil
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Up, Keys.Left):
		if m.dashCursor > 0 {
			m.dashCursor--
		}
	case key.Matches(msg, Keys.Down, Keys.Right):
		if m.dashCursor < len(dashboardTargets)-1 {
			m.dashCursor++
		}
	case key.Matches(msg, Keys.Enter):
		return m.navigate(dashboardTargets[m.dashCursor])
	case key.Matches(msg, Keys.Exercises):
		return m.navigate(ScreenExercises)
	case key.Matches(msg, Keys.Blog):
		return m.navigate(ScreenBlogList)
	case key.Matches(msg, Keys.Profile):
		return m.navigate(ScreenProfile)
	case key.Matches(msg, Keys.Support):
		return m.navigate(ScreenSupport)
	}
	return m, nil
}

func (m Model) handleExercisesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Back):
		return m.back()

	case key.Matches(msg, Keys.Left):
		m.setFilter(m.filterBar.Prev())
		return m, nil

	case key.Matches(msg, Keys.Right):
		m.setFilter(m.filterBar.Next())
		return m, nil

	case key.Matches(msg, Keys.Retry):
		cmd := m.retryCatalog()
		return m, cmd

	case key.Matches(msg, Keys.Enter):
		if m.catalogState.Status != domain.CatalogReady {
			return m, nil
		}
		if item := m.exercises.Selected(); item != nil {
			return m.openExercise(item.GetID())
		}
		return m, nil
	}

	m.exercises.Update(msg)
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Back):
		return m.back()
	case key.Matches(msg, Keys.Complete):
		return m, CompleteExerciseCmd(m.svc.Profile, m.detail)
	}
	return m, nil
}

func (m Model) handleBlogListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Back):
		if m.blogSearch.Value() != "" {
			m.blogSearch.SetValue("")
			m.refreshPosts()
			return m, nil
		}
		return m.back()

	case key.Matches(msg, Keys.Filter):
		cmd := m.blogSearch.Focus()
		return m, cmd

	case key.Matches(msg, Keys.Enter):
		if item := m.posts.Selected(); item != nil {
			return m.openPost(item.GetID())
		}
		return m, nil
	}

	m.posts.Update(msg)
	return m, nil
}

func (m Model) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.Back) {
		return m.back()
	}
	var cmd tea.Cmd
	m.reader, cmd = m.reader.Update(msg)
	return m, cmd
}

func (m Model) handleSupportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Back):
		if m.faqSearch.Value() != "" {
			m.faqSearch.SetValue("")
			m.faq.ShowAll()
			return m, nil
		}
		return m.back()

	case key.Matches(msg, Keys.Filter):
		cmd := m.faqSearch.Focus()
		return m, cmd

	case key.Matches(msg, Keys.Focus):
		m.messageFocused = true
		cmd := m.message.Focus()
		return m, cmd

	case key.Matches(msg, Keys.Send):
		cmd := m.submitSupport()
		return m, cmd

	case key.Matches(msg, Keys.Up):
		m.faq.Up()
	case key.Matches(msg, Keys.Down):
		m.faq.Down()
	case key.Matches(msg, Keys.Enter), msg.String() == " ":
		m.faq.Toggle()
	}
	return m, nil
}

// submitSupport sends the message unless a send is already in flight
func (m *Model) submitSupport() tea.Cmd {
	if m.sending {
		return nil
	}
	m.sending = true
	return SubmitSupportCmd(m.svc.Support, m.message.Value())
}
