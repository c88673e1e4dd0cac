package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/nefes/internal/catalog"
	"github.com/mmcdole/nefes/internal/domain"
	"github.com/mmcdole/nefes/internal/tui/components"
)

// inExerciseArea reports whether s keeps the exercise catalog mounted
func inExerciseArea(s Screen) bool {
	return s == ScreenExercises || s == ScreenExerciseDetail
}

// navigate switches screens, mounting or tearing down the catalog store
// when the exercise area is entered or left
func (m Model) navigate(to Screen) (tea.Model, tea.Cmd) {
	from := m.Screen
	if inExerciseArea(from) && !inExerciseArea(to) {
		m.unmountCatalog()
	}
	if to != ScreenExerciseDetail {
		m.visit++ // Invalidate a pending start prompt
		m.readyPrompt.Hide()
	}
	m.Screen = to
	m.logger.Debug("navigate", "from", from, "to", to)

	var cmd tea.Cmd
	switch to {
	case ScreenExercises:
		if m.catalog == nil {
			cmd = m.mountCatalog()
		}
	case ScreenBlogList:
		m.refreshPosts()
	case ScreenSupport:
		m.faq.SetVisible(m.svc.Support.FilterFAQ(m.faqSearch.Value()))
	}
	return m, cmd
}

// back returns to the parent screen
func (m Model) back() (tea.Model, tea.Cmd) {
	switch m.Screen {
	case ScreenWelcome, ScreenExercises, ScreenBlogList, ScreenProfile, ScreenSupport:
		return m.navigate(ScreenDashboard)
	case ScreenExerciseDetail:
		return m.navigate(ScreenExercises)
	case ScreenBlogReader:
		return m.navigate(ScreenBlogList)
	}
	return m, nil
}

// mountCatalog creates a fresh store for the exercise list and starts loading it
func (m *Model) mountCatalog() tea.Cmd {
	m.mount++
	store := m.svc.Exercises.NewCatalogStore()
	m.catalog = store
	m.observer = NewCatalogObserver(store, m.mount)

	store.SetFilter(m.selected)
	m.filterBar.Select(m.selected)
	store.Load()

	m.syncCatalog()
	return tea.Batch(WaitForCatalogCmd(m.observer), m.spinner.Tick)
}

// unmountCatalog tears the store down; a pending load is abandoned silently
func (m *Model) unmountCatalog() {
	if m.observer != nil {
		m.observer.Close()
		m.observer = nil
	}
	if m.catalog != nil {
		m.catalog.Close()
		m.catalog = nil
	}
	m.catalogState = domain.CatalogState{}
	m.exercises.SetItems(nil)
	m.suggestion = ""
}

// syncCatalog re-reads the mounted store into the list
func (m *Model) syncCatalog() tea.Cmd {
	if m.catalog == nil {
		return nil
	}
	m.catalogState = m.catalog.State()

	view := m.catalog.DerivedView()
	rows := make([]components.Row, len(view))
	for i := range view {
		rows[i] = components.Row{Item: &view[i], Accent: view[i].Accent}
	}
	m.exercises.SetItems(rows)

	m.suggestion = ""
	if m.catalogState.Status == domain.CatalogReady && len(view) == 0 {
		if s, ok := catalog.Suggest(m.catalog.Categories(), m.catalog.Filter()); ok {
			m.suggestion = s
		}
	}

	if m.catalogState.IsLoading() {
		return m.spinner.Tick
	}
	return nil
}

// setFilter changes the category of the mounted list
func (m *Model) setFilter(c domain.Category) {
	m.selected = c
	m.filterBar.Select(c)
	if m.catalog != nil {
		m.catalog.SetFilter(c)
		m.syncCatalog()
	}
}

// retryCatalog re-runs the simulated fetch
func (m *Model) retryCatalog() tea.Cmd {
	if m.catalog == nil || !m.catalog.Retry() {
		return nil
	}
	return m.syncCatalog()
}

// openExercise shows the detail screen; unknown IDs fall back to the first exercise
func (m Model) openExercise(id string) (tea.Model, tea.Cmd) {
	ex, ok := m.svc.Exercises.GetOrFirst(id)
	if !ok {
		return m, nil
	}
	m.detail = ex
	m.visit++
	m.readyPrompt.Hide()
	m.Screen = ScreenExerciseDetail
	return m, ReadyPromptCmd(m.opts.ReadyPromptDelay, m.visit)
}

// openPost shows the blog reader
func (m Model) openPost(id string) (tea.Model, tea.Cmd) {
	post, err := m.svc.Blog.Get(id)
	if err != nil {
		m.logger.Warn("open post failed", "id", id, "error", err)
		cmd := m.setStatus(msgPostNotFound, true)
		return m, cmd
	}
	m.post = post
	m.Screen = ScreenBlogReader
	m.reader.SetContent(m.renderPost(m.reader.Width))
	m.reader.GotoTop()
	return m, nil
}

// refreshPosts reruns the blog search with the current query
func (m *Model) refreshPosts() {
	results := m.svc.Blog.Search(m.blogSearch.Value())
	rows := make([]components.Row, len(results))
	for i, r := range results {
		accent := ""
		if p, ok := r.Item.(*domain.BlogPost); ok {
			accent = p.Accent
		}
		rows[i] = components.Row{Item: r.Item, Accent: accent, Matched: r.MatchedIndexes}
	}
	m.posts.SetItems(rows)
}
