package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/nefes/internal/domain"
	"github.com/mmcdole/nefes/internal/tui/components"
	"github.com/mmcdole/nefes/internal/tui/styles"
)

// Exercise list texts
const (
	textLoading    = "Egzersizler yükleniyor..."
	textLoadFailed = "Bağlantı hatası oluştu"
	textTryAgain   = "Lütfen tekrar deneyin"
	textRetry      = "Tekrar Dene"
	textEmpty      = "Bu kategoride henüz egzersiz bulunmuyor."
)

// renderExercises renders the filter bar and the catalog in its current state
func (m Model) renderExercises(width, height int) string {
	bar := m.filterBar.View(width)

	var body string
	switch m.catalogState.Status {
	case domain.CatalogIdle, domain.CatalogLoading:
		body = m.spinner.View() + " " + styles.DimStyle.Render(textLoading)

	case domain.CatalogFailed:
		body = lipgloss.JoinVertical(lipgloss.Left,
			styles.ErrorStyle.Bold(true).Render(textLoadFailed),
			styles.DimStyle.Render(textTryAgain),
			"",
			styles.ChipSelectedStyle.Render(textRetry)+" "+styles.DimStyle.Render("r"),
		)

	case domain.CatalogReady:
		if m.exercises.Len() == 0 {
			body = styles.DimStyle.Render(textEmpty)
			if m.suggestion != "" {
				body += "\n" + styles.WarningStyle.Render(
					fmt.Sprintf("Bunu mu demek istediniz: %s?", components.Label(m.suggestion)))
			}
		} else {
			body = m.exercises.View()
		}
	}

	return lipgloss.NewStyle().MaxHeight(height).Render(bar + "\n\n" + body)
}

// renderDetail renders an exercise with its numbered steps
func (m Model) renderDetail(width int) string {
	ex := m.detail
	accent := styles.Accent(ex.Accent)

	badge := lipgloss.NewStyle().Foreground(styles.White).Background(accent).Padding(0, 1).
		Render(string(ex.Category))
	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(ex.Title),
		badge+" "+styles.SubtitleStyle.Render(ex.Duration),
	)

	stepStyle := lipgloss.NewStyle().Foreground(styles.LightGray).Width(max(width-5, 10))
	numStyle := lipgloss.NewStyle().Foreground(accent).Bold(true).Width(4)

	steps := ex.CleanSteps()
	lines := make([]string, 0, len(steps))
	for i, step := range steps {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			numStyle.Render(fmt.Sprintf("%d.", i+1)),
			stepStyle.Render(step),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		styles.AccentStyle.Bold(true).Render("Nasıl Yapılır?"),
		strings.Join(lines, "\n"),
		"",
		styles.ChipSelectedStyle.Render("Tamamla")+" "+styles.DimStyle.Render("c"),
	)
}

// renderBlogList renders the search line and the matching posts
func (m Model) renderBlogList(width int) string {
	search := styles.DimStyle.Render("/ ile başlıklarda arayın")
	if m.blogSearch.Focused() || m.blogSearch.Value() != "" {
		search = m.blogSearch.View()
	}

	body := m.posts.View()
	if m.posts.Len() == 0 {
		body = styles.DimStyle.Render("Aramanızla eşleşen yazı bulunamadı.")
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(search + "\n\n" + body)
}

// renderReader renders the blog viewport with a scroll hint
func (m Model) renderReader() string {
	hint := styles.DimStyle.Render(fmt.Sprintf("%3.f%%", m.reader.ScrollPercent()*100))
	return m.reader.View() + "\n" + hint
}

// renderPost renders a post for the reader viewport
func (m Model) renderPost(width int) string {
	p := m.post
	textWidth := max(min(width, 80), 20)
	para := lipgloss.NewStyle().Width(textWidth).Foreground(styles.LightGray)

	meta := styles.DimStyle.Render(strings.Join([]string{p.Author, p.Date, p.ReadTime}, " · "))
	category := lipgloss.NewStyle().Foreground(styles.Accent(p.Accent)).Render(p.Category)

	parts := []string{
		lipgloss.NewStyle().Width(textWidth).Inherit(styles.TitleStyle).Render(p.Title),
		category + "  " + meta,
		"",
	}
	for _, paragraph := range p.Paragraphs() {
		parts = append(parts, para.Render(paragraph), "")
	}
	return strings.Join(parts, "\n")
}

// renderProfile renders progress and statistics
func (m Model) renderProfile(width int) string {
	stats := m.svc.Profile.Stats()
	pct := stats.CompletionPercent()

	user := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Kullanıcı"),
		styles.SubtitleStyle.Render("KOAH Egzersiz Programı"),
	)

	progressBlock := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Egzersiz İlerlemeniz")+"  "+styles.AccentStyle.Bold(true).Render(fmt.Sprintf("%d%%", pct)),
		m.progress.ViewAs(float64(pct)/100),
		styles.DimStyle.Render(fmt.Sprintf("%d egzersizden %d tanesini tamamladınız", stats.Goal, stats.Completed)),
	)

	cardWidth := max(min((width-8)/4, 18), 12)
	statCards := []struct{ value, label string }{
		{fmt.Sprintf("%d", stats.Completed), "Tamamlanan"},
		{fmt.Sprintf("%d", stats.StreakDays), "Seri Günü"},
		{fmt.Sprintf("%d gün", stats.BestStreakDays), "En İyi Seri"},
		{fmt.Sprintf("%d dk", stats.TotalMinutes), "Toplam Süre"},
	}
	rendered := make([]string, len(statCards))
	for i, c := range statCards {
		rendered[i] = styles.CardStyle.Width(cardWidth).Render(
			styles.AccentStyle.Bold(true).Render(c.value) + "\n" + styles.DimStyle.Render(c.label))
	}
	var cards string
	if width >= 4*(cardWidth+3) {
		cards = lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	} else {
		cards = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, rendered[0], rendered[1]),
			lipgloss.JoinHorizontal(lipgloss.Top, rendered[2], rendered[3]),
		)
	}

	tip := styles.TipStyle.Width(min(width, 72)).Render(
		styles.WarningStyle.Render("Hedefiniz") + "\n" + m.opts.Tips.Profile,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		user,
		"",
		progressBlock,
		"",
		styles.TitleStyle.Render("İstatistikler"),
		cards,
		"",
		tip,
	)
}

// renderSupport renders the FAQ accordion and the contact form
func (m Model) renderSupport(width int) string {
	intro := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Yardıma mı ihtiyacınız var?"),
		styles.SubtitleStyle.Render("Sıkça sorulan sorulara göz atın veya bize mesaj gönderin."),
	)

	faqTitle := styles.AccentStyle.Bold(true).Render("Sık Sorulan Sorular")
	if m.faqSearch.Focused() || m.faqSearch.Value() != "" {
		faqTitle += "  " + m.faqSearch.View()
	}

	formTitle := styles.AccentStyle.Bold(true).Render("Mesaj Gönderin")
	border := styles.InactiveBorder
	if m.messageFocused {
		border = styles.ActiveBorder
	}
	send := styles.ChipStyle.Render("Gönder")
	if m.sending {
		send = styles.ChipStyle.Render("Gönderiliyor...")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		intro,
		"",
		faqTitle,
		m.faq.View(width),
		"",
		formTitle,
		border.Render(m.message.View()),
		send+" "+styles.DimStyle.Render("C-s"),
	)
}
