package service

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/nefes/internal/domain"
	"github.com/mmcdole/nefes/internal/search"
)

// BlogService serves the built-in educational articles
type BlogService struct {
	posts  []domain.BlogPost
	index  *search.Index
	logger *slog.Logger
}

// NewBlogService creates a new blog service
func NewBlogService(posts []domain.BlogPost, logger *slog.Logger) *BlogService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &BlogService{
		posts:  append([]domain.BlogPost(nil), posts...),
		logger: logger,
	}
	items := make([]domain.ListItem, len(s.posts))
	for i := range s.posts {
		items[i] = &s.posts[i]
	}
	s.index = search.NewIndex(items)
	return s
}

// Posts returns every post in publication order
func (s *BlogService) Posts() []domain.BlogPost {
	return append([]domain.BlogPost(nil), s.posts...)
}

// Get returns the post with the given ID
func (s *BlogService) Get(id string) (domain.BlogPost, error) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.BlogPost{}, fmt.Errorf("post %q: %w", id, domain.ErrPostNotFound)
}

// Search fuzzy-matches post titles. An empty query returns every post.
func (s *BlogService) Search(query string) []search.Result {
	results := s.index.Find(query)
	s.logger.Debug("blog search", "query", query, "results", len(results))
	return results
}
