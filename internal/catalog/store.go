package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mmcdole/nefes/internal/domain"
)

// EventKind identifies what changed in the store
type EventKind int

const (
	EventState EventKind = iota
	EventFilter
)

// Event is delivered to subscribers after every state or filter change.
// It carries a snapshot taken at the time of the change.
type Event struct {
	Kind   EventKind
	State  domain.CatalogState
	Filter domain.Category
}

// Listener receives store events. Listeners run synchronously on the
// goroutine that caused the change and must not call Load, Retry or
// SetFilter from within the callback.
type Listener func(Event)

// Store holds the exercise catalog state and the selected category filter.
// At most one load is in flight at any time.
type Store struct {
	loader     Loader
	categories []domain.Category
	logger     *slog.Logger

	mu        sync.Mutex // guards everything below
	state     domain.CatalogState
	filter    domain.Category
	gen       uint64 // incremented per load; stale completions are dropped
	cancel    context.CancelFunc
	closed    bool
	listeners map[int]Listener
	nextID    int

	// deliverMu is held across a mutation and its delivery, and is always
	// acquired before mu, so events reach listeners in mutation order.
	deliverMu sync.Mutex

	wg sync.WaitGroup
}

// NewStore creates an idle store with the "All" filter selected
func NewStore(loader Loader, categories []domain.Category, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	cats := make([]domain.Category, len(categories))
	copy(cats, categories)

	return &Store{
		loader:     loader,
		categories: cats,
		logger:     logger,
		state:      domain.CatalogState{Status: domain.CatalogIdle},
		filter:     domain.CategoryAll,
		listeners:  make(map[int]Listener),
	}
}

// Load starts a fetch unless one is already in flight or the store is closed.
// It returns true when a new fetch was started.
func (s *Store) Load() bool {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	if s.closed || s.state.Status == domain.CatalogLoading {
		status := s.state.Status
		closed := s.closed
		s.mu.Unlock()
		s.logger.Debug("catalog load dropped", "status", status, "closed", closed)
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.gen++
	gen := s.gen
	s.cancel = cancel
	s.state = domain.CatalogState{Status: domain.CatalogLoading}
	s.wg.Add(1)
	ev := Event{Kind: EventState, State: s.state, Filter: s.filter}
	listeners := s.listenersLocked()
	s.mu.Unlock()

	s.logger.Info("catalog load started", "generation", gen)
	// run blocks on deliverMu before applying its result, so the Loading
	// event below is always delivered first.
	go s.run(ctx, gen)
	notify(listeners, ev)
	return true
}

// Retry re-enters the simulated fetch. It behaves exactly like Load.
func (s *Store) Retry() bool {
	return s.Load()
}

func (s *Store) run(ctx context.Context, gen uint64) {
	defer s.wg.Done()

	entries, err := s.loader.Fetch(ctx)

	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	if s.closed || gen != s.gen || ctx.Err() != nil {
		s.mu.Unlock()
		s.logger.Debug("catalog load abandoned", "generation", gen)
		return
	}
	s.cancel = nil

	switch {
	case err == nil:
		s.state = domain.CatalogState{Status: domain.CatalogReady, Entries: entries}
		s.logger.Info("catalog loaded", "generation", gen, "count", len(entries))
	case errors.Is(err, domain.ErrTransientLoad):
		s.state = domain.CatalogState{Status: domain.CatalogFailed, Err: err}
		s.logger.Warn("catalog load failed", "generation", gen, "error", err)
	default:
		s.state = domain.CatalogState{Status: domain.CatalogFailed, Err: errors.Join(domain.ErrTransientLoad, err)}
		s.logger.Warn("catalog load failed", "generation", gen, "error", err)
	}
	ev := Event{Kind: EventState, State: s.snapshot(), Filter: s.filter}
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, ev)
}

// State returns a snapshot of the current catalog state
func (s *Store) State() domain.CatalogState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Filter returns the selected category
func (s *Store) Filter() domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Categories returns the declared categories in display order
func (s *Store) Categories() []domain.Category {
	cats := make([]domain.Category, len(s.categories))
	copy(cats, s.categories)
	return cats
}

// SetFilter changes the selected category. Reloads never reset it.
func (s *Store) SetFilter(c domain.Category) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	if s.closed || s.filter == c {
		s.mu.Unlock()
		return
	}
	s.filter = c
	ev := Event{Kind: EventFilter, State: s.snapshot(), Filter: c}
	listeners := s.listenersLocked()
	s.mu.Unlock()

	s.logger.Debug("catalog filter changed", "filter", c)
	notify(listeners, ev)
}

// DerivedView returns the entries matching the current filter.
// It is nil unless the catalog is Ready.
func (s *Store) DerivedView() []domain.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status != domain.CatalogReady {
		return nil
	}
	return Apply(s.state.Entries, s.filter)
}

// Subscribe registers a listener and returns a function that removes it
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Close tears the store down. A pending load is cancelled and none of its
// results are applied; no further events are delivered and Load becomes a no-op.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.listeners = make(map[int]Listener)
	s.mu.Unlock()
	s.logger.Debug("catalog store closed")
}

// Wait blocks until any in-flight load goroutine has returned
func (s *Store) Wait() {
	s.wg.Wait()
}

// snapshot copies the state so callers cannot alias the entries. Caller holds mu.
func (s *Store) snapshot() domain.CatalogState {
	st := s.state
	if st.Entries != nil {
		st.Entries = append([]domain.Exercise(nil), st.Entries...)
	}
	return st
}

// listenersLocked returns the listeners in subscription order. Caller holds mu.
func (s *Store) listenersLocked() []Listener {
	listeners := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	return listeners
}

func notify(listeners []Listener, ev Event) {
	for _, fn := range listeners {
		fn(ev)
	}
}
