package service

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/nefes/internal/catalog"
	"github.com/mmcdole/nefes/internal/domain"
)

// ExerciseService provides the exercise catalog and exercise lookups
type ExerciseService struct {
	loader     catalog.Loader
	corpus     []domain.Exercise
	categories []domain.Category
	logger     *slog.Logger
}

// NewExerciseService creates a new exercise service. The loader is shared by
// every catalog store the service creates.
func NewExerciseService(
	loader catalog.Loader,
	corpus []domain.Exercise,
	categories []domain.Category,
	logger *slog.Logger,
) *ExerciseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExerciseService{
		loader:     loader,
		corpus:     append([]domain.Exercise(nil), corpus...),
		categories: append([]domain.Category(nil), categories...),
		logger:     logger,
	}
}

// NewCatalogStore returns a fresh, idle catalog store. Each exercise list
// screen owns one store and closes it when it goes away.
func (s *ExerciseService) NewCatalogStore() *catalog.Store {
	return catalog.NewStore(s.loader, s.categories, s.logger.With("component", "catalog"))
}

// Categories returns the declared categories in display order
func (s *ExerciseService) Categories() []domain.Category {
	return append([]domain.Category(nil), s.categories...)
}

// Count returns the number of exercises in the corpus
func (s *ExerciseService) Count() int {
	return len(s.corpus)
}

// Get returns the exercise with the given ID
func (s *ExerciseService) Get(id string) (domain.Exercise, error) {
	for _, e := range s.corpus {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Exercise{}, fmt.Errorf("exercise %q: %w", id, domain.ErrExerciseNotFound)
}

// GetOrFirst returns the exercise with the given ID, falling back to the
// first exercise of the corpus. ok is false only when the corpus is empty.
func (s *ExerciseService) GetOrFirst(id string) (ex domain.Exercise, ok bool) {
	ex, err := s.Get(id)
	if err == nil {
		return ex, true
	}
	if len(s.corpus) == 0 {
		return domain.Exercise{}, false
	}
	s.logger.Warn("exercise not found, showing first", "id", id)
	return s.corpus[0], true
}
