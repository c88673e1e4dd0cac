package tui

import (
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/nefes/internal/catalog"
	"github.com/mmcdole/nefes/internal/content"
	"github.com/mmcdole/nefes/internal/domain"
	"github.com/mmcdole/nefes/internal/service"
	"github.com/mmcdole/nefes/internal/tui/components"
	"github.com/mmcdole/nefes/internal/tui/styles"
)

// Screen identifies the page currently shown
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenDashboard
	ScreenExercises
	ScreenExerciseDetail
	ScreenBlogList
	ScreenBlogReader
	ScreenProfile
	ScreenSupport
)

// Title returns the header title of the screen
func (s Screen) Title() string {
	switch s {
	case ScreenWelcome:
		return "Hoş Geldiniz"
	case ScreenDashboard:
		return "Kontrol Merkezi"
	case ScreenExercises:
		return "Egzersizler"
	case ScreenExerciseDetail:
		return "Egzersiz Detayı"
	case ScreenBlogList:
		return "Blog Yazıları"
	case ScreenBlogReader:
		return "Makale Detayı"
	case ScreenProfile:
		return "Profil"
	case ScreenSupport:
		return "Destek Talepleri"
	default:
		return ""
	}
}

const (
	DefaultReadyPromptDelay = 400 * time.Millisecond
	StatusDuration          = 4 * time.Second
)

// Status texts shown to the user
const (
	msgCompleted      = "Tebrikler! Egzersizi başarıyla tamamladınız."
	msgEmptyMessage   = "Lütfen mesajınızı yazın."
	msgSupportSent    = "Destek talebiniz alındı. En kısa sürede dönüş yapılacaktır."
	msgSupportLimited = "Mesajınız zaten gönderildi. Lütfen biraz bekleyin."
	msgPostNotFound   = "Makale bulunamadı."
)

// Services groups the application services used by the TUI
type Services struct {
	Exercises *service.ExerciseService
	Blog      *service.BlogService
	Profile   *service.ProfileService
	Support   *service.SupportService
}

// Options configures the model
type Options struct {
	InitialCategory  domain.Category // Filter applied when the exercise list opens; empty = All
	SkipWelcome      bool
	Tips             content.Tips
	ReadyPromptDelay time.Duration
	Logger           *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	Screen   Screen
	Ready    bool
	ShowHelp bool

	svc    Services
	opts   Options
	logger *slog.Logger

	// Dimensions
	Width  int
	Height int

	// Dashboard
	dashCursor int

	// Exercise list; the catalog store lives while the list or detail is shown
	catalog      *catalog.Store
	observer     *CatalogObserver
	mount        int
	catalogState domain.CatalogState
	selected     domain.Category
	filterBar    components.FilterBar
	exercises    components.List
	suggestion   domain.Category
	spinner      spinner.Model

	// Exercise detail
	detail      domain.Exercise
	visit       int
	readyPrompt components.PromptModal

	// Blog
	posts      components.List
	blogSearch textinput.Model
	post       domain.BlogPost
	reader     viewport.Model

	// Profile
	progress progress.Model

	// Support
	faq            components.Accordion
	faqSearch      textinput.Model
	message        textarea.Model
	messageFocused bool
	sending        bool

	// UI state
	StatusMsg   string
	StatusIsErr bool
	statusSeq   int
}

// NewModel creates a new application model
func NewModel(svc Services, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ReadyPromptDelay <= 0 {
		opts.ReadyPromptDelay = DefaultReadyPromptDelay
	}
	selected := opts.InitialCategory
	if selected == "" {
		selected = domain.CategoryAll
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	blogSearch := textinput.New()
	blogSearch.Prompt = "/ "
	blogSearch.Placeholder = "Başlıkta ara..."
	blogSearch.PromptStyle = styles.FilterPromptStyle
	blogSearch.CharLimit = 60

	faqSearch := textinput.New()
	faqSearch.Prompt = "/ "
	faqSearch.Placeholder = "Sorularda ara..."
	faqSearch.PromptStyle = styles.FilterPromptStyle
	faqSearch.CharLimit = 60

	message := textarea.New()
	message.Placeholder = "Sorununuzu veya önerinizi yazın..."
	message.ShowLineNumbers = false
	message.CharLimit = 1000
	message.SetHeight(4)

	m := Model{
		Screen:      ScreenWelcome,
		svc:         svc,
		opts:        opts,
		logger:      opts.Logger,
		selected:    selected,
		filterBar:   components.NewFilterBar(svc.Exercises.Categories()),
		exercises:   components.NewList(),
		spinner:     sp,
		readyPrompt: components.NewPromptModal(),
		posts:       components.NewList(),
		blogSearch:  blogSearch,
		reader:      viewport.New(0, 0),
		progress:    progress.New(progress.WithSolidFill(string(styles.Teal)), progress.WithoutPercentage()),
		faq:         components.NewAccordion(svc.Support.FAQ()),
		faqSearch:   faqSearch,
		message:     message,
	}
	if opts.SkipWelcome {
		m.Screen = ScreenDashboard
	}
	m.refreshPosts()
	return m
}

// Init opens the exercise list right away when a category was requested
func (m Model) Init() tea.Cmd {
	if m.opts.InitialCategory == "" {
		return nil
	}
	return func() tea.Msg { return NavigateMsg{Screen: ScreenExercises} }
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case NavigateMsg:
		return m.navigate(msg.Screen)

	case CatalogChangedMsg:
		if msg.Mount != m.mount || m.catalog == nil {
			return m, nil // From a torn-down list
		}
		cmd := m.syncCatalog()
		return m, tea.Batch(WaitForCatalogCmd(m.observer), cmd)

	case catalogDetachedMsg:
		return m, nil

	case spinner.TickMsg:
		// Let the tick chain die out once nothing is loading
		if m.catalog == nil || !m.catalogState.IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ReadyPromptMsg:
		if msg.Visit == m.visit && m.Screen == ScreenExerciseDetail {
			m.readyPrompt.Show("Hazır mıyız?", m.opts.Tips.BeforeExercise, "başla")
		}
		return m, nil

	case ExerciseCompletedMsg:
		m.logger.Info("exercise completed", "id", msg.Exercise.ID, "completed", msg.Stats.Completed)
		var navCmd tea.Cmd
		if m.Screen == ScreenExerciseDetail {
			var model tea.Model
			model, navCmd = m.navigate(ScreenExercises)
			m = model.(Model)
		}
		statusCmd := m.setStatus(msgCompleted, false)
		return m, tea.Batch(navCmd, statusCmd)

	case SupportSubmittedMsg:
		m.sending = false
		switch {
		case msg.Err == nil:
			m.message.Reset()
			m.logger.Info("support ticket sent", "id", msg.Ticket.ID)
			cmd := m.setStatus(msgSupportSent, false)
			return m, cmd
		case errors.Is(msg.Err, domain.ErrEmptyMessage):
			cmd := m.setStatus(msgEmptyMessage, true)
			return m, cmd
		case errors.Is(msg.Err, domain.ErrSupportRateLimited):
			cmd := m.setStatus(msgSupportLimited, true)
			return m, cmd
		default:
			m.logger.Error("support submit failed", "error", msg.Err)
			cmd := m.setStatus(msg.Err.Error(), true)
			return m, cmd
		}

	case StatusMsg:
		cmd := m.setStatus(msg.Message, msg.IsError)
		return m, cmd

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	// Forward anything else (cursor blink etc.) to the focused input
	return m.updateFocusedInput(msg)
}

// setStatus shows a status line message and schedules its removal
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(StatusDuration, m.statusSeq)
}

// Close tears down the mounted catalog store, if any
func (m *Model) Close() {
	m.unmountCatalog()
}
