package service

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/nefes/internal/domain"
	"github.com/mmcdole/nefes/internal/search"
	"golang.org/x/time/rate"
)

// SupportService serves the FAQ and accepts support messages.
// Tickets are kept in memory only.
type SupportService struct {
	faq     []domain.FAQItem
	limiter *rate.Limiter
	now     func() time.Time
	logger  *slog.Logger

	mu      sync.Mutex
	tickets []domain.SupportTicket
}

// NewSupportService creates a support service that accepts at most one
// message per cooldown. A zero cooldown disables the limit.
func NewSupportService(faq []domain.FAQItem, cooldown time.Duration, logger *slog.Logger) *SupportService {
	if logger == nil {
		logger = slog.Default()
	}
	limit := rate.Inf
	if cooldown > 0 {
		limit = rate.Every(cooldown)
	}
	return &SupportService{
		faq:     append([]domain.FAQItem(nil), faq...),
		limiter: rate.NewLimiter(limit, 1),
		now:     time.Now,
		logger:  logger,
	}
}

// FAQ returns every question in display order
func (s *SupportService) FAQ() []domain.FAQItem {
	return append([]domain.FAQItem(nil), s.faq...)
}

// FilterFAQ returns the indexes of questions matching query, in display order
func (s *SupportService) FilterFAQ(query string) []int {
	questions := make([]string, len(s.faq))
	for i, item := range s.faq {
		questions[i] = item.Question
	}
	return search.FindFold(query, questions)
}

// Submit validates and records a support message
func (s *SupportService) Submit(message string) (domain.SupportTicket, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.SupportTicket{}, domain.ErrEmptyMessage
	}

	now := s.now()
	if !s.limiter.AllowN(now, 1) {
		s.logger.Warn("support message rate limited")
		return domain.SupportTicket{}, fmt.Errorf("try again later: %w", domain.ErrSupportRateLimited)
	}

	ticket := domain.SupportTicket{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: now,
	}

	s.mu.Lock()
	s.tickets = append(s.tickets, ticket)
	s.mu.Unlock()

	s.logger.Info("support ticket created", "id", ticket.ID, "length", len(message))
	return ticket, nil
}

// Tickets returns the tickets accepted during this session
func (s *SupportService) Tickets() []domain.SupportTicket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SupportTicket(nil), s.tickets...)
}
