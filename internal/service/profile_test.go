package service

import (
	"sync"
	"testing"

	"github.com/mmcdole/nefes/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProfileServiceComplete(t *testing.T) {
	baseline := domain.ProfileStats{Completed: 6, StreakDays: 3, BestStreakDays: 7, TotalMinutes: 45, Goal: 15}
	svc := NewProfileService(baseline, 0, nil)

	stats := svc.Complete(domain.Exercise{ID: "1", Duration: "5 dk"})
	assert.Equal(t, 7, stats.Completed)
	assert.Equal(t, 50, stats.TotalMinutes)
	assert.Equal(t, 3, stats.StreakDays, "streaks are not touched")
	assert.Equal(t, stats, svc.Stats())
}

func TestProfileServiceGoalOverride(t *testing.T) {
	svc := NewProfileService(domain.ProfileStats{Completed: 5, Goal: 15}, 10, nil)
	assert.Equal(t, 10, svc.Stats().Goal)
	assert.Equal(t, 50, svc.Stats().CompletionPercent())
}

func TestProfileServiceConcurrentComplete(t *testing.T) {
	svc := NewProfileService(domain.ProfileStats{Goal: 15}, 0, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Complete(domain.Exercise{Duration: "2 dk"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, svc.Stats().Completed)
	assert.Equal(t, 40, svc.Stats().TotalMinutes)
}
