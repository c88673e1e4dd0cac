package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/nefes/internal/domain"
	"github.com/mmcdole/nefes/internal/service"
)

// Command factories for async operations

// WaitForCatalogCmd blocks until the observed store changes or the observer closes
func WaitForCatalogCmd(o *CatalogObserver) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-o.ch:
			return CatalogChangedMsg{Mount: o.mount}
		case <-o.done:
			return catalogDetachedMsg{Mount: o.mount}
		}
	}
}

// ReadyPromptCmd schedules the start prompt of an exercise detail visit
func ReadyPromptCmd(delay time.Duration, visit int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ReadyPromptMsg{Visit: visit}
	})
}

// CompleteExerciseCmd records a finished exercise
func CompleteExerciseCmd(svc *service.ProfileService, ex domain.Exercise) tea.Cmd {
	return func() tea.Msg {
		stats := svc.Complete(ex)
		return ExerciseCompletedMsg{Exercise: ex, Stats: stats}
	}
}

// SubmitSupportCmd sends a support message
func SubmitSupportCmd(svc *service.SupportService, message string) tea.Cmd {
	return func() tea.Msg {
		ticket, err := svc.Submit(message)
		return SupportSubmittedMsg{Ticket: ticket, Err: err}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration, seq int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
