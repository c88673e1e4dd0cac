package tui

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/nefes/internal/content"
	"github.com/mmcdole/nefes/internal/domain"
	"github.com/mmcdole/nefes/internal/log"
	"github.com/mmcdole/nefes/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchResult struct {
	entries []domain.Exercise
	err     error
}

// gateLoader blocks every fetch until the test hands it a result
type gateLoader struct {
	results chan fetchResult
	calls   atomic.Int32
}

func newGateLoader() *gateLoader {
	return &gateLoader{results: make(chan fetchResult, 1)}
}

func (l *gateLoader) Fetch(ctx context.Context) ([]domain.Exercise, error) {
	l.calls.Add(1)
	select {
	case r := <-l.results:
		return r.entries, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type testApp struct {
	model  Model
	loader *gateLoader
	seed   *content.Seed
	svc    Services
}

func newTestApp(t *testing.T, opts Options, cooldown time.Duration) *testApp {
	t.Helper()
	seed, err := content.Load()
	require.NoError(t, err)

	logger := log.NullLogger()
	loader := newGateLoader()
	svc := Services{
		Exercises: service.NewExerciseService(loader, seed.Exercises, seed.Categories, logger),
		Blog:      service.NewBlogService(seed.Posts, logger),
		Profile:   service.NewProfileService(seed.Profile, 0, logger),
		Support:   service.NewSupportService(seed.FAQ, cooldown, logger),
	}
	opts.Tips = seed.Tips
	opts.Logger = logger

	app := &testApp{model: NewModel(svc, opts), loader: loader, seed: seed, svc: svc}
	app.send(t, tea.WindowSizeMsg{Width: 100, Height: 40})
	t.Cleanup(func() { app.model.Close() })
	return app
}

func (a *testApp) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := a.model.Update(msg)
	m, ok := next.(Model)
	require.True(t, ok)
	a.model = m
	return cmd
}

func (a *testApp) press(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		a.send(t, keyMsg(k))
	}
}

// resolve completes the pending fetch and delivers the change notification
func (a *testApp) resolve(t *testing.T, r fetchResult) {
	t.Helper()
	require.NotNil(t, a.model.catalog)
	a.loader.results <- r
	a.model.catalog.Wait()
	a.send(t, CatalogChangedMsg{Mount: a.model.mount})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func visibleIDs(m Model) []string {
	var ids []string
	for _, e := range m.catalog.DerivedView() {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestWelcomeToDashboard(t *testing.T) {
	app := newTestApp(t, Options{}, 0)
	assert.Equal(t, ScreenWelcome, app.model.Screen)
	assert.Contains(t, app.model.View(), "Hoş Geldiniz")

	app.press(t, "enter")
	assert.Equal(t, ScreenDashboard, app.model.Screen)
	view := app.model.View()
	assert.Contains(t, view, "5 egzersiz mevcut")
	assert.Contains(t, view, "Günün İpucu")
}

func TestSkipWelcome(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, 0)
	assert.Equal(t, ScreenDashboard, app.model.Screen)
	assert.Nil(t, app.model.Init())
}

func TestExerciseListLoadsAndFilters(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, 0)

	app.press(t, "1")
	require.Equal(t, ScreenExercises, app.model.Screen)
	assert.Equal(t, domain.CatalogLoading, app.model.catalogState.Status)
	assert.Contains(t, app.model.View(), textLoading)

	app.resolve(t, fetchResult{entries: app.seed.Exercises})
	assert.Equal(t, domain.CatalogReady, app.model.catalogState.Status)
	assert.Equal(t, 5, app.model.exercises.Len())
	assert.Contains(t, app.model.View(), "Nefes Egzersizi I (Oturarak)")

	app.press(t, "right")
	assert.Equal(t, domain.Category("Nefes"), app.model.catalog.Filter())
	assert.Equal(t, []string{"1", "2", "5"}, visibleIDs(app.model))

	app.press(t, "right")
	assert.Equal(t, []string{"3", "4"}, visibleIDs(app.model))

	app.press(t, "right")
	assert.Equal(t, domain.Category("Güçlendirme"), app.model.catalog.Filter())
	assert.Contains(t, app.model.View(), textEmpty)
	assert.Empty(t, app.model.suggestion, "declared categories get no suggestion")

	app.press(t, "right")
	assert.Equal(t, domain.CategoryAll, app.model.catalog.Filter())
	assert.Equal(t, 5, app.model.exercises.Len())
}

func TestExerciseListFailureAndRetry(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, 0)
	app.press(t, "1")

	app.resolve(t, fetchResult{err: domain.ErrTransientLoad})
	assert.Equal(t, domain.CatalogFailed, app.model.catalogState.Status)
	view := app.model.View()
	assert.Contains(t, view, textLoadFailed)
	assert.Contains(t, view, textRetry)

	app.press(t, "r")
	assert.Equal(t, domain.CatalogLoading, app.model.catalogState.Status)

	app.press(t, "r") // Dropped while loading

	app.resolve(t, fetchResult{entries: app.seed.Exercises})
	assert.Equal(t, domain.CatalogReady, app.model.catalogState.Status)
	assert.Equal(t, int32(2), app.loader.calls.Load())
}

func TestFilterSurvivesRetry(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, 0)
	app.press(t, "1")
	app.resolve(t, fetchResult{entries: app.seed.Exercises})

	app.press(t, "right", "right") // Isınma
	app.press(t, "r")
	app.resolve(t, fetchResult{err: domain.ErrTransientLoad})
	app.press(t, "r")
	app.resolve(t, fetchResult{entries: app.seed.Exercises})

	assert.Equal(t, domain.Category("Isınma"), app.model.catalog.Filter())
	assert.Equal(t, []string{"3", "4"}, visibleIDs(app.model))
}

func TestInitialCategorySuggestion(t *testing.T) {
	app := newTestApp(t, Options{InitialCategory: "nefse"}, 0)

	cmd := app.model.Init()
	require.NotNil(t, cmd)
	app.send(t, cmd())
	require.Equal(t, ScreenExercises, app.model.Screen)

	app.resolve(t, fetchResult{entries: app.seed.Exercises})
	assert.Equal(t, 0, app.model.exercises.Len())
	assert.Equal(t, domain.Category("Nefes"), app.model.suggestion)
	assert.Contains(t, app.model.View(), "Bunu mu demek istediniz: Nefes?")
}

func TestLeavingExerciseListTearsDownStore(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, 0)
	app.press(t, "1")

	store := app.model.catalog
	mount := app.model.mount
	require.NotNil(t, store)

	app.press(t, "esc")
	assert.Equal(t, ScreenDashboard, app.model.Screen)
	assert.Nil(t, app.model.catalog)

	store.Wait()
	assert.Equal(t, domain.CatalogLoading, store.State().Status, "no transition is applied after teardown")
	assert.False(t, store.Load())

	// A late notification from the old mount is ignored
	app.send(t, CatalogChangedMsg{Mount: mount})
	assert.Nil(t, app.model.catalog)

	// Re-entering mounts a fresh store
	app.press(t, "1")
	require.NotNil(t, app.model.catalog)
	assert.NotSame(t, store, app.model.catalog)
	assert.Equal(t, mount+1, app.model.mount)
}

func TestExerciseDetailPromptAndComplete(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, 0)
	app.press(t, "1")
	app.resolve(t, fetchResult{entries: app.seed.Exercises})

	app.press(t, "j", "enter")
	require.Equal(t, ScreenExerciseDetail, app.model.Screen)
	assert.Equal(t, "2", app.model.detail.ID)
	assert.Contains(t, app.model.View(), "Nasıl Yapılır?")

	// A prompt scheduled for an earlier visit is ignored
	app.send(t, ReadyPromptMsg{Visit: app.model.visit - 1})
	assert.False(t, app.model.readyPrompt.IsVisible())

	app.send(t, ReadyPromptMsg{Visit: app.model.visit})
	require.True(t, app.model.readyPrompt.IsVisible())
	assert.Contains(t, app.model.View(), "Hazır mıyız?")

	app.press(t, "esc")
	assert.Equal(t, ScreenExerciseDetail, app.model.Screen, "keys go to the prompt while it is open")
	assert.False(t, app.model.readyPrompt.IsVisible())

	before := app.svc.Profile.Stats()
	next, cmd := app.model.Update(keyMsg("c"))
	app.model = next.(Model)
	require.NotNil(t, cmd)
	app.send(t, cmd())

	assert.Equal(t, ScreenExercises, app.model.Screen)
	assert.Equal(t, msgCompleted, app.model.StatusMsg)
	after := app.svc.Profile.Stats()
	assert.Equal(t, before.Completed+1, after.Completed)
	assert.Equal(t, before.TotalMinutes+5, after.TotalMinutes)
	assert.NotNil(t, app.model.catalog, "the list stays mounted behind the detail screen")
}

func TestCompletionAfterLeavingDetailStaysPut(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, 0)
	app.press(t, "1")
	app.resolve(t, fetchResult{entries: app.seed.Exercises})
	app.press(t, "enter")
	require.Equal(t, ScreenExerciseDetail, app.model.Screen)

	complete := app.send(t, keyMsg("c"))
	require.NotNil(t, complete)

	// Leave the exercise area before the result arrives
	app.press(t, "esc", "esc")
	require.Equal(t, ScreenDashboard, app.model.Screen)
	mount := app.model.mount

	app.send(t, complete())
	assert.Equal(t, ScreenDashboard, app.model.Screen)
	assert.Nil(t, app.model.catalog, "the list is not remounted")
	assert.Equal(t, mount, app.model.mount)
	assert.Equal(t, msgCompleted, app.model.StatusMsg)
}

func TestOpenUnknownExerciseFallsBack(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, 0)

	next, _ := app.model.openExercise("missing")
	m := next.(Model)
	assert.Equal(t, ScreenExerciseDetail, m.Screen)
	assert.Equal(t, "1", m.detail.ID)
}

func TestBlogSearchAndReader(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, 0)
	app.press(t, "2")
	require.Equal(t, ScreenBlogList, app.model.Screen)
	assert.Equal(t, 5, app.model.posts.Len())

	app.press(t, "/", "beslenme")
	assert.True(t, app.model.blogSearch.Focused())
	require.Equal(t, 1, app.model.posts.Len())
	assert.Equal(t, "3", app.model.posts.Selected().GetID())

	app.press(t, "enter") // Accept search
	assert.False(t, app.model.blogSearch.Focused())

	app.press(t, "enter") // Open post
	require.Equal(t, ScreenBlogReader, app.model.Screen)
	assert.Contains(t, app.model.View(), "KOAH ve Beslenme")

	app.press(t, "esc")
	assert.Equal(t, ScreenBlogList, app.model.Screen)

	app.press(t, "esc") // Clear search
	assert.Equal(t, 5, app.model.posts.Len())
	app.press(t, "esc")
	assert.Equal(t, ScreenDashboard, app.model.Screen)
}

func TestProfileShowsProgress(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, 0)
	app.press(t, "3")
	require.Equal(t, ScreenProfile, app.model.Screen)

	view := app.model.View()
	assert.Contains(t, view, "Egzersiz İlerlemeniz")
	assert.Contains(t, view, "15 egzersizden 6 tanesini tamamladınız")
	assert.Contains(t, view, "40%")
}

func TestSupportFAQAccordionAndFilter(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, 0)
	app.press(t, "4")
	require.Equal(t, ScreenSupport, app.model.Screen)

	app.press(t, "enter")
	assert.Equal(t, 0, app.model.faq.Open())
	app.press(t, "enter")
	assert.Equal(t, -1, app.model.faq.Open())

	app.press(t, "/", "ilac")
	assert.Equal(t, 1, app.model.faq.VisibleCount())
	app.press(t, "esc")
	assert.Equal(t, len(app.seed.FAQ), app.model.faq.VisibleCount())
}

func TestSupportFAQFilterWithoutMatches(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, 0)
	app.press(t, "4", "/", "zzzq")

	assert.Equal(t, 0, app.model.faq.VisibleCount())
	assert.Contains(t, app.model.View(), "Eşleşen soru bulunamadı.")

	// Accepting the query keeps the empty result; clearing it restores the list
	app.press(t, "enter")
	assert.Equal(t, 0, app.model.faq.VisibleCount())
	app.press(t, "esc")
	assert.Equal(t, len(app.seed.FAQ), app.model.faq.VisibleCount())
}

func TestSupportSubmit(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, time.Hour)
	app.press(t, "4", "tab")
	require.True(t, app.model.messageFocused)

	// Blank message
	cmd := app.send(t, keyMsg("ctrl+s"))
	require.NotNil(t, cmd)
	app.send(t, cmd())
	assert.Equal(t, msgEmptyMessage, app.model.StatusMsg)
	assert.True(t, app.model.StatusIsErr)

	app.press(t, "Merhaba")
	cmd = app.send(t, keyMsg("ctrl+s"))
	require.NotNil(t, cmd)
	assert.Nil(t, app.send(t, keyMsg("ctrl+s")), "one send at a time")
	app.send(t, cmd())

	assert.Equal(t, msgSupportSent, app.model.StatusMsg)
	assert.False(t, app.model.StatusIsErr)
	assert.Empty(t, app.model.message.Value())
	require.Len(t, app.svc.Support.Tickets(), 1)
	assert.Equal(t, "Merhaba", app.svc.Support.Tickets()[0].Message)

	// Second message inside the cooldown
	app.press(t, "Tekrar")
	cmd = app.send(t, keyMsg("ctrl+s"))
	app.send(t, cmd())
	assert.Equal(t, msgSupportLimited, app.model.StatusMsg)
}

func TestStatusClears(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, 0)
	app.send(t, StatusMsg{Message: "first"})
	stale := app.model.statusSeq
	app.send(t, StatusMsg{Message: "second"})

	app.send(t, ClearStatusMsg{Seq: stale})
	assert.Equal(t, "second", app.model.StatusMsg)

	app.send(t, ClearStatusMsg{Seq: app.model.statusSeq})
	assert.Empty(t, app.model.StatusMsg)
}

func TestQuitClosesCatalog(t *testing.T) {
	app := newTestApp(t, Options{SkipWelcome: true}, 0)
	app.press(t, "1")
	store := app.model.catalog

	cmd := app.send(t, keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, store.Load())
}
