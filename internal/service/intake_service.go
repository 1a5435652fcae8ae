package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-console/internal/domain"
	"github.com/spec-kit/ticket-console/internal/events"
	"github.com/spec-kit/ticket-console/pkg/util"
)

// ConcernSubmitter sends a new concern to the server.
type ConcernSubmitter interface {
	CreateConcern(ctx context.Context, concern domain.Concern) error
}

// ConcernIntakeService handles requestor-side concern submission:
// description plus at least one attachment, both checked before any
// network call.
type ConcernIntakeService struct {
	submitter  ConcernSubmitter
	dispatcher events.Dispatcher
	notifier   Notifier
	logger     *zap.Logger
}

// NewConcernIntakeService creates the intake workflow.
func NewConcernIntakeService(submitter ConcernSubmitter, dispatcher events.Dispatcher, notifier Notifier, logger *zap.Logger) *ConcernIntakeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &ConcernIntakeService{
		submitter:  submitter,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger,
	}
}

// Submit validates and sends a new concern. On success the receiver
// list and the notification badge are invalidated.
func (s *ConcernIntakeService) Submit(ctx context.Context, description string, attachments []domain.Attachment) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return util.NewValidationError("concern details are required", nil)
	}
	if len(attachments) == 0 {
		return util.NewValidationError("at least one attachment is required", nil)
	}
	for _, a := range attachments {
		if !domain.AllowedAttachmentName(a.Name) {
			return util.NewValidationError("file type not allowed: "+a.Name, nil)
		}
	}

	concern := domain.Concern{
		Description: description,
		Attachments: attachments,
	}
	if err := s.submitter.CreateConcern(ctx, concern); err != nil {
		s.logger.Warn("concern submission rejected", zap.Error(err))
		s.notifier.Error(util.UserMessage(err))
		return err
	}

	s.logger.Info("concern submitted")
	s.notifier.Success("Concern added successfully!")
	s.publishInvalidation(ctx)
	return nil
}

func (s *ConcernIntakeService) publishInvalidation(ctx context.Context) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Tags:      []events.Tag{events.TagReceiverConcern, events.TagNotification},
		Source:    "concern_intake",
		Timestamp: time.Now(),
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish invalidation", zap.Error(err))
	}
}
