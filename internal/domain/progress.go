package domain

import "time"

// ProfileStats summarizes the patient's exercise progress
type ProfileStats struct {
	Completed      int `yaml:"completed"`        // Completed exercises
	StreakDays     int `yaml:"streak_days"`      // Current streak
	BestStreakDays int `yaml:"best_streak_days"` // Longest streak
	TotalMinutes   int `yaml:"total_minutes"`    // Total exercise time
	Goal           int `yaml:"goal"`             // Target completion count
}

// CompletionPercent returns Completed as a percentage of Goal, clamped to [0, 100]
func (p ProfileStats) CompletionPercent() int {
	if p.Goal <= 0 {
		return 0
	}
	pct := p.Completed * 100 / p.Goal
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

// SupportTicket is a support request accepted from the contact form
type SupportTicket struct {
	ID        string
	Message   string
	CreatedAt time.Time
}
