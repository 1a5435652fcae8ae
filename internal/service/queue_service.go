package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-console/internal/api/dto"
	"github.com/spec-kit/ticket-console/internal/domain"
	"github.com/spec-kit/ticket-console/pkg/util"
)

// QueueFetcher loads the three approver queue pages.
type QueueFetcher interface {
	GetTicketApprovals(ctx context.Context, query dto.PagedQuery) (*dto.ClosingQueueResponse, error)
	GetTransferApprovals(ctx context.Context, query dto.PagedQuery) (*dto.TransferQueueResponse, error)
	GetOnHoldApprovals(ctx context.Context, query dto.PagedQuery) (*dto.OnHoldQueueResponse, error)
}

// QueuePage is one fetched page of whichever queue is active.
type QueuePage struct {
	Queue domain.Queue
	Rows  []dto.ClosingTicketItem
	Meta  dto.PageMeta
}

// QueueService fronts the three queue endpoints behind a single
// tab-keyed fetch, so the list view does not care which endpoint backs
// the active tab.
type QueueService struct {
	fetcher QueueFetcher
	logger  *zap.Logger
}

// NewQueueService creates the queue fetch facade.
func NewQueueService(fetcher QueueFetcher, logger *zap.Logger) *QueueService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueueService{fetcher: fetcher, logger: logger}
}

// FetchPage loads one page of the given queue.
func (s *QueueService) FetchPage(ctx context.Context, queue domain.Queue, query dto.PagedQuery) (QueuePage, error) {
	switch queue {
	case domain.QueueTickets:
		resp, err := s.fetcher.GetTicketApprovals(ctx, query)
		if err != nil {
			return QueuePage{}, err
		}
		return QueuePage{Queue: queue, Rows: resp.Value.ClosingTicket, Meta: resp.Value.PageMeta}, nil
	case domain.QueueForTransfer:
		resp, err := s.fetcher.GetTransferApprovals(ctx, query)
		if err != nil {
			return QueuePage{}, err
		}
		return QueuePage{Queue: queue, Rows: resp.Value.TransferTicket, Meta: resp.Value.PageMeta}, nil
	case domain.QueueOnHold:
		resp, err := s.fetcher.GetOnHoldApprovals(ctx, query)
		if err != nil {
			return QueuePage{}, err
		}
		return QueuePage{Queue: queue, Rows: resp.Value.OnHoldTicket, Meta: resp.Value.PageMeta}, nil
	}
	return QueuePage{}, util.NewValidationError("unknown queue", nil)
}
