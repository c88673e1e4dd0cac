package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/nefes/internal/tui/styles"
)

// AppTitle is shown on the left of the header bar
const AppTitle = "KOAH EGZERSİZ"

// View renders the whole application
func (m Model) View() string {
	if !m.Ready {
		return "Yükleniyor..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	width, height := m.contentSize()
	var body string
	switch m.Screen {
	case ScreenWelcome:
		body = m.renderWelcome(width)
	case ScreenDashboard:
		body = m.renderDashboard(width)
	case ScreenExercises:
		body = m.renderExercises(width, height)
	case ScreenExerciseDetail:
		body = m.renderDetail(width)
	case ScreenBlogList:
		body = m.renderBlogList(width)
	case ScreenBlogReader:
		body = m.renderReader()
	case ScreenProfile:
		body = m.renderProfile(width)
	case ScreenSupport:
		body = m.renderSupport(width)
	}

	content := styles.ContentStyle.
		Width(m.Width).
		Height(m.Height - HeaderHeight - FooterHeight).
		MaxHeight(m.Height - HeaderHeight - FooterHeight).
		Render(body)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderFooter(),
	)

	// Overlay the start prompt if visible
	if m.readyPrompt.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.readyPrompt.View())
	}

	return view
}

// renderHeader renders the title bar with the current screen and back hint
func (m Model) renderHeader() string {
	left := AppTitle
	if title := m.Screen.Title(); title != "" {
		left += " · " + title
	}

	right := ""
	if m.Screen != ScreenDashboard && m.Screen != ScreenWelcome {
		right = "esc geri"
	}

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return styles.HeaderStyle.Width(m.Width).Render(
		left + strings.Repeat(" ", gap) + styles.HeaderDimStyle.Render(right),
	)
}

// renderFooter renders a single-line footer with status and key hints
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	}

	right := renderHints(m.screenHints())

	// Drop hints before the status when space runs out
	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		right = styles.HelpKeyStyle.Render("?") + styles.HelpDescStyle.Render(" yardım")
		gap = max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	}
	return left + strings.Repeat(" ", gap) + right
}

// screenHints returns the bindings worth advertising on the current screen
func (m Model) screenHints() []key.Binding {
	switch m.Screen {
	case ScreenWelcome:
		return []key.Binding{Keys.Enter, Keys.Quit}
	case ScreenDashboard:
		return []key.Binding{Keys.Enter, Keys.Quit, Keys.Help}
	case ScreenExercises:
		return []key.Binding{Keys.Right, Keys.Enter, Keys.Retry, Keys.Help}
	case ScreenExerciseDetail:
		return []key.Binding{Keys.Complete, Keys.Back, Keys.Help}
	case ScreenBlogList:
		if m.blogSearch.Focused() {
			return []key.Binding{Keys.Enter, Keys.Back}
		}
		return []key.Binding{Keys.Filter, Keys.Enter, Keys.Help}
	case ScreenBlogReader:
		return []key.Binding{Keys.Up, Keys.Down, Keys.Back}
	case ScreenSupport:
		if m.messageFocused {
			return []key.Binding{Keys.Send, Keys.Focus}
		}
		return []key.Binding{Keys.Filter, Keys.Enter, Keys.Focus, Keys.Send}
	}
	return []key.Binding{Keys.Back, Keys.Help}
}

func renderHints(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpDescStyle.Render(" • "))
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
GEZİNME                         EGZERSİZLER
  j/k        Yukarı/aşağı          h/l    Kategori değiştir
  g/G        Başa/sona git         r      Tekrar dene
  enter      Seç                   c      Egzersizi tamamla
  esc        Geri

ANA SAYFA                       DESTEK
  1-4        Bölüme git            /      Sorularda ara
                                   tab    Mesaj alanı
DİĞER                              C-s    Gönder
  /          Ara
  q          Çıkış
  ?          Bu yardım

Devam etmek için bir tuşa basın...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

// renderWelcome renders the intro page
func (m Model) renderWelcome(width int) string {
	textWidth := min(width, 72)
	intro := lipgloss.NewStyle().Width(textWidth).Foreground(styles.LightGray).
		Render(m.opts.Tips.Welcome)

	button := styles.ChipSelectedStyle.Render("Başlayalım")

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Hoş Geldiniz"),
		"",
		intro,
		"",
		button+" "+styles.DimStyle.Render("enter"),
	)
}

// dashboardCard is one entry of the dashboard grid
type dashboardCard struct {
	title    string
	subtitle string
	shortcut string
}

func (m Model) dashboardCards() []dashboardCard {
	return []dashboardCard{
		{title: "Egzersizler", subtitle: fmt.Sprintf("%d egzersiz mevcut", m.svc.Exercises.Count()), shortcut: "1"},
		{title: "Blog Yazıları", subtitle: "Sağlık ipuçları", shortcut: "2"},
		{title: "Profil", subtitle: "İlerleme ve istatistikler", shortcut: "3"},
		{title: "Destek Talepleri", subtitle: "Yardım alın", shortcut: "4"},
	}
}

// renderDashboard renders the greeting, the section cards and the daily tip
func (m Model) renderDashboard(width int) string {
	cardWidth := max(min((width-4)/2, 36), 16)

	cards := m.dashboardCards()
	rendered := make([]string, len(cards))
	for i, c := range cards {
		style := styles.CardStyle
		if i == m.dashCursor {
			style = styles.CardSelectedStyle
		}
		rendered[i] = style.Width(cardWidth).Render(
			styles.TitleStyle.Render(c.title) + " " + styles.DimStyle.Render("["+c.shortcut+"]") + "\n" +
				styles.SubtitleStyle.Render(c.subtitle),
		)
	}

	var grid string
	if width >= 2*cardWidth+6 {
		grid = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, rendered[0], " ", rendered[1]),
			lipgloss.JoinHorizontal(lipgloss.Top, rendered[2], " ", rendered[3]),
		)
	} else {
		grid = lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}

	tip := styles.TipStyle.Width(min(width, 72)).Render(
		styles.WarningStyle.Render("Günün İpucu") + "\n" + m.opts.Tips.Dashboard,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Merhaba,"),
		styles.SubtitleStyle.Render("Bugün hangi egzersizi yapmak istersiniz?"),
		"",
		grid,
		"",
		tip,
	)
}
