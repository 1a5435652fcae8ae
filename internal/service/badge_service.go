package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-console/internal/api/dto"
	"github.com/spec-kit/ticket-console/internal/events"
)

// BadgeFetcher loads the current unread counts.
type BadgeFetcher interface {
	GetNotificationCounts(ctx context.Context) (dto.NotificationValue, error)
}

// BadgeService keeps the tab badge counts current. It refetches on
// every invalidation it is subscribed to, so a single publication after
// an approval refreshes the badge together with the queue list.
type BadgeService struct {
	fetcher BadgeFetcher
	logger  *zap.Logger

	mu     sync.RWMutex
	counts dto.NotificationValue

	onChange func(dto.NotificationValue)
}

// NewBadgeService creates the badge store.
func NewBadgeService(fetcher BadgeFetcher, logger *zap.Logger) *BadgeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BadgeService{fetcher: fetcher, logger: logger}
}

// RegisterHandlers subscribes the store to the invalidation tags that
// dirty the counts.
func (s *BadgeService) RegisterHandlers(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.TagNotification, s.handleInvalidation)
	dispatcher.Subscribe(events.TagApproval, s.handleInvalidation)
	dispatcher.Subscribe(events.TagReceiverConcern, s.handleInvalidation)
}

// OnChange installs a callback invoked with fresh counts after every
// successful refresh. Used by the console to repaint badges.
func (s *BadgeService) OnChange(fn func(dto.NotificationValue)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Counts returns the last fetched counts.
func (s *BadgeService) Counts() dto.NotificationValue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts
}

// Refresh fetches the counts immediately.
func (s *BadgeService) Refresh(ctx context.Context) error {
	counts, err := s.fetcher.GetNotificationCounts(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.counts = counts
	onChange := s.onChange
	s.mu.Unlock()
	if onChange != nil {
		onChange(counts)
	}
	return nil
}

func (s *BadgeService) handleInvalidation(ctx context.Context, event events.Event) error {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("badge refresh failed",
			zap.String("event_id", event.ID),
			zap.Error(err))
		return err
	}
	return nil
}
