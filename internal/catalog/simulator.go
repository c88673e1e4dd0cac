package catalog

//go:generate mockgen -package=mocks -destination=../mocks/mock_random.go github.com/mmcdole/nefes/internal/catalog RandomSource

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/mmcdole/nefes/internal/domain"
)

const (
	DefaultDelay              = 1500 * time.Millisecond
	DefaultFailureProbability = 0.2
)

// Loader fetches the full exercise corpus. Fetch is atomic: it returns either
// every entry or an error, never a partial result.
type Loader interface {
	Fetch(ctx context.Context) ([]domain.Exercise, error)
}

// RandomSource draws uniform values in [0, 1)
type RandomSource interface {
	Float64() float64
}

// Clock creates timers. Tests substitute a manual clock.
type Clock interface {
	NewTimer(d time.Duration) Timer
}

// Timer is the subset of *time.Timer used by the simulator
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

type wallClock struct{}

type wallTimer struct{ t *time.Timer }

func (wallClock) NewTimer(d time.Duration) Timer { return wallTimer{time.NewTimer(d)} }

func (w wallTimer) C() <-chan time.Time { return w.t.C }
func (w wallTimer) Stop() bool          { return w.t.Stop() }

// WallClock returns a Clock backed by the time package
func WallClock() Clock { return wallClock{} }

// NewSeededRandom returns a deterministic RandomSource for the given seed
func NewSeededRandom(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SimulatorConfig configures the simulated round trip
type SimulatorConfig struct {
	Delay              time.Duration
	FailureProbability float64
	Corpus             []domain.Exercise
	Random             RandomSource // nil = seeded from the current time
	Clock              Clock        // nil = wall clock
}

// Simulator emulates a network fetch of the exercise catalog: it waits for
// Delay and then fails with ErrTransientLoad with FailureProbability, or
// returns a copy of the corpus.
type Simulator struct {
	delay       time.Duration
	failureProb float64
	corpus      []domain.Exercise
	clock       Clock

	randMu sync.Mutex // math/rand generators are not safe for concurrent use
	random RandomSource
}

// NewSimulator validates cfg and creates a simulator
func NewSimulator(cfg SimulatorConfig) (*Simulator, error) {
	if cfg.Delay < 0 {
		return nil, fmt.Errorf("invalid simulator delay %v: must not be negative", cfg.Delay)
	}
	if cfg.FailureProbability < 0 || cfg.FailureProbability > 1 {
		return nil, fmt.Errorf("invalid failure probability %v: must be within [0, 1]", cfg.FailureProbability)
	}

	random := cfg.Random
	if random == nil {
		random = NewSeededRandom(uint64(time.Now().UnixNano()))
	}
	clock := cfg.Clock
	if clock == nil {
		clock = WallClock()
	}

	corpus := make([]domain.Exercise, len(cfg.Corpus))
	copy(corpus, cfg.Corpus)

	return &Simulator{
		delay:       cfg.Delay,
		failureProb: cfg.FailureProbability,
		corpus:      corpus,
		clock:       clock,
		random:      random,
	}, nil
}

// Fetch waits for the configured delay, then resolves exactly once.
// If ctx is cancelled first, the timer is stopped and ctx.Err() is returned.
func (s *Simulator) Fetch(ctx context.Context) ([]domain.Exercise, error) {
	timer := s.clock.NewTimer(s.delay)

	select {
	case <-ctx.Done():
		timer.Stop()
		return nil, ctx.Err()
	case <-timer.C():
	}

	if s.draw() < s.failureProb {
		return nil, domain.ErrTransientLoad
	}

	entries := make([]domain.Exercise, len(s.corpus))
	copy(entries, s.corpus)
	return entries, nil
}

func (s *Simulator) draw() float64 {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.random.Float64()
}
