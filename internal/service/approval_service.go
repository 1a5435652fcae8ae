package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-console/internal/events"
	"github.com/spec-kit/ticket-console/pkg/util"
)

// ApprovalAction names the three decisions an approver can take on a
// queued request.
type ApprovalAction string

const (
	ActionApprove  ApprovalAction = "APPROVE"
	ActionTransfer ApprovalAction = "TRANSFER"
	ActionHold     ApprovalAction = "HOLD"
)

// ApprovalClient performs the server-side approval mutations.
type ApprovalClient interface {
	ApproveClosing(ctx context.Context, closingTicketID int) error
	ApproveTransfer(ctx context.Context, transferTicketID int) error
	ApproveOnHold(ctx context.Context, onHoldTicketID int) error
}

// ApprovalService dispatches approver decisions. Every action is
// confirmation-gated; a declined confirmation is a no-op. Success
// closes the dialog and publishes one shared invalidation so the queue
// list and the notification badge refresh together; failure surfaces
// the server message and keeps the dialog open. A request id with an
// action in flight rejects further dispatches until it settles.
type ApprovalService struct {
	client     ApprovalClient
	dispatcher events.Dispatcher
	notifier   Notifier
	logger     *zap.Logger

	mu       sync.Mutex
	inFlight map[int]bool
}

// NewApprovalService creates the dispatcher for approver decisions.
func NewApprovalService(client ApprovalClient, dispatcher events.Dispatcher, notifier Notifier, logger *zap.Logger) *ApprovalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &ApprovalService{
		client:     client,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger,
		inFlight:   make(map[int]bool),
	}
}

// Dispatch runs one approval action against the request identified by
// requestID (the closing, transfer or on-hold ticket id depending on
// the action). A nil return with a confirmed prompt means the dialog
// may close; a non-nil return means it must stay open.
func (s *ApprovalService) Dispatch(ctx context.Context, action ApprovalAction, requestID int, ticketConcernID int, confirmer Confirmer) error {
	if !s.begin(requestID) {
		return util.NewConflict("an action for this request is already in flight", nil)
	}
	defer s.end(requestID)

	ok, err := confirmer.Confirm(ctx, s.PromptFor(action, ticketConcernID))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	switch action {
	case ActionApprove:
		err = s.client.ApproveClosing(ctx, requestID)
	case ActionTransfer:
		err = s.client.ApproveTransfer(ctx, requestID)
	case ActionHold:
		err = s.client.ApproveOnHold(ctx, requestID)
	default:
		return util.NewValidationError("unknown approval action", nil)
	}
	if err != nil {
		s.logger.Warn("approval action rejected",
			zap.String("action", string(action)),
			zap.Int("request_id", requestID),
			zap.Error(err))
		s.notifier.Error(util.UserMessage(err))
		return err
	}

	s.logger.Info("approval action applied",
		zap.String("action", string(action)),
		zap.Int("request_id", requestID))
	s.notifier.Success(s.successMessage(action))
	s.publishInvalidation(ctx, ticketConcernID)
	return nil
}

// PromptFor builds the confirmation shown before the given action.
func (s *ApprovalService) PromptFor(action ApprovalAction, ticketConcernID int) Prompt {
	var text string
	switch action {
	case ActionApprove:
		text = fmt.Sprintf("Approve closing of ticket number %d?", ticketConcernID)
	case ActionTransfer:
		text = fmt.Sprintf("Approve transfer of ticket number %d?", ticketConcernID)
	case ActionHold:
		text = fmt.Sprintf("Place ticket number %d on hold?", ticketConcernID)
	}
	return Prompt{Title: "Confirmation", Text: text}
}

func (s *ApprovalService) successMessage(action ApprovalAction) string {
	switch action {
	case ActionTransfer:
		return "Transfer request approved!"
	case ActionHold:
		return "On-hold request approved!"
	default:
		return "Approve request successfully!"
	}
}

func (s *ApprovalService) publishInvalidation(ctx context.Context, ticketConcernID int) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Tags:      []events.Tag{events.TagApproval, events.TagNotification},
		Source:    "approval_service",
		TicketID:  ticketConcernID,
		Timestamp: time.Now(),
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish invalidation", zap.Error(err))
	}
}

func (s *ApprovalService) begin(requestID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[requestID] {
		return false
	}
	s.inFlight[requestID] = true
	return true
}

func (s *ApprovalService) end(requestID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, requestID)
}
