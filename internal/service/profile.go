package service

import (
	"log/slog"
	"sync"

	"github.com/mmcdole/nefes/internal/domain"
)

// ProfileService tracks exercise progress for the current session.
// Nothing is persisted; progress starts from the built-in baseline.
type ProfileService struct {
	mu     sync.RWMutex
	stats  domain.ProfileStats
	logger *slog.Logger
}

// NewProfileService creates a profile service starting from baseline.
// A positive goal overrides the baseline goal.
func NewProfileService(baseline domain.ProfileStats, goal int, logger *slog.Logger) *ProfileService {
	if logger == nil {
		logger = slog.Default()
	}
	if goal > 0 {
		baseline.Goal = goal
	}
	return &ProfileService{stats: baseline, logger: logger}
}

// Stats returns a snapshot of the current progress
func (s *ProfileService) Stats() domain.ProfileStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Complete records a finished exercise and returns the updated progress
func (s *ProfileService) Complete(ex domain.Exercise) domain.ProfileStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.Completed++
	s.stats.TotalMinutes += ex.Minutes()
	s.logger.Info("exercise completed", "id", ex.ID, "completed", s.stats.Completed, "totalMinutes", s.stats.TotalMinutes)
	return s.stats
}
