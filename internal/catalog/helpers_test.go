package catalog_test

import (
	"sync"
	"time"

	"github.com/mmcdole/nefes/internal/catalog"
	"github.com/mmcdole/nefes/internal/domain"
)

// sampleCorpus mirrors the built-in seed: three breathing and two warm-up entries
func sampleCorpus() []domain.Exercise {
	return []domain.Exercise{
		{ID: "1", Title: "Nefes Egzersizi I (Oturarak)", Category: "Nefes", Duration: "5 dk"},
		{ID: "2", Title: "Nefes Egzersizi II (Ayakta)", Category: "Nefes", Duration: "5 dk"},
		{ID: "3", Title: "Isınma Hareketleri I", Category: "Isınma", Duration: "10 dk"},
		{ID: "4", Title: "Isınma Hareketleri II", Category: "Isınma", Duration: "8 dk"},
		{ID: "5", Title: "Nefes Egzersizi III (Yatarak)", Category: "Nefes", Duration: "7 dk"},
	}
}

func ids(entries []domain.Exercise) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

// manualClock hands out timers that only fire when the test says so
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	d       time.Duration
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (c *manualClock) NewTimer(d time.Duration) catalog.Timer {
	t := &manualTimer{d: d, ch: make(chan time.Time, 1)}
	c.mu.Lock()
	c.timers = append(c.timers, t)
	c.mu.Unlock()
	return t
}

func (c *manualClock) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// fire fires the most recently created timer
func (c *manualClock) fire() {
	c.mu.Lock()
	t := c.timers[len(c.timers)-1]
	c.mu.Unlock()
	t.ch <- time.Now()
}

func (c *manualClock) last() *manualTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timers[len(c.timers)-1]
}

func (t *manualTimer) C() <-chan time.Time { return t.ch }

func (t *manualTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

func (t *manualTimer) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// recorder collects store events
type recorder struct {
	mu     sync.Mutex
	events []catalog.Event
}

func (r *recorder) listen(ev catalog.Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *recorder) statuses() []domain.CatalogStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.CatalogStatus
	for _, ev := range r.events {
		if ev.Kind == catalog.EventState {
			out = append(out, ev.State.Status)
		}
	}
	return out
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
