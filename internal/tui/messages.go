package tui

import "github.com/mmcdole/nefes/internal/domain"

// Message types for the TUI

// CatalogChangedMsg signals that the mounted catalog store changed.
// The model re-reads the store; the message only carries the mount it belongs to.
type CatalogChangedMsg struct {
	Mount int
}

// catalogDetachedMsg is returned by a wait command whose observer was closed
type catalogDetachedMsg struct {
	Mount int
}

// ReadyPromptMsg asks the exercise detail screen to show its start prompt
type ReadyPromptMsg struct {
	Visit int // Detail visit the prompt was scheduled for
}

// ExerciseCompletedMsg signals that an exercise was recorded as done
type ExerciseCompletedMsg struct {
	Exercise domain.Exercise
	Stats    domain.ProfileStats
}

// SupportSubmittedMsg carries the result of sending a support message
type SupportSubmittedMsg struct {
	Ticket domain.SupportTicket
	Err    error
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct {
	Seq int
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// NavigateMsg switches to another screen
type NavigateMsg struct {
	Screen Screen
}
