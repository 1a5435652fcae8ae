package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-console/internal/api/dto"
	"github.com/spec-kit/ticket-console/internal/domain"
)

type fakeQueueFetcher struct {
	lastQuery dto.PagedQuery
}

func (f *fakeQueueFetcher) GetTicketApprovals(_ context.Context, q dto.PagedQuery) (*dto.ClosingQueueResponse, error) {
	f.lastQuery = q
	return &dto.ClosingQueueResponse{Value: dto.ClosingQueueValue{
		ClosingTicket: []dto.ClosingTicketItem{{ClosingTicketID: 101, TicketConcernID: 42}},
		PageMeta:      dto.PageMeta{TotalCount: 1, CurrentPage: 1, PageSize: 5},
	}}, nil
}

func (f *fakeQueueFetcher) GetTransferApprovals(_ context.Context, q dto.PagedQuery) (*dto.TransferQueueResponse, error) {
	f.lastQuery = q
	return &dto.TransferQueueResponse{Value: dto.TransferQueueValue{
		TransferTicket: []dto.ClosingTicketItem{{ClosingTicketID: 201}},
	}}, nil
}

func (f *fakeQueueFetcher) GetOnHoldApprovals(_ context.Context, q dto.PagedQuery) (*dto.OnHoldQueueResponse, error) {
	f.lastQuery = q
	return &dto.OnHoldQueueResponse{Value: dto.OnHoldQueueValue{
		OnHoldTicket: []dto.ClosingTicketItem{{ClosingTicketID: 301}},
	}}, nil
}

func TestQueueServiceRoutesByQueue(t *testing.T) {
	fetcher := &fakeQueueFetcher{}
	s := NewQueueService(fetcher, nil)
	query := dto.PagedQuery{Search: "printer", PageNumber: 2, PageSize: 5}

	page, err := s.FetchPage(context.Background(), domain.QueueTickets, query)
	require.NoError(t, err)
	require.Equal(t, domain.QueueTickets, page.Queue)
	require.Len(t, page.Rows, 1)
	require.Equal(t, 101, page.Rows[0].ClosingTicketID)
	require.Equal(t, 1, page.Meta.TotalCount)
	require.Equal(t, query, fetcher.lastQuery)

	page, err = s.FetchPage(context.Background(), domain.QueueForTransfer, query)
	require.NoError(t, err)
	require.Equal(t, 201, page.Rows[0].ClosingTicketID)

	page, err = s.FetchPage(context.Background(), domain.QueueOnHold, query)
	require.NoError(t, err)
	require.Equal(t, 301, page.Rows[0].ClosingTicketID)
}

func TestQueueServiceRejectsUnknownQueue(t *testing.T) {
	s := NewQueueService(&fakeQueueFetcher{}, nil)
	_, err := s.FetchPage(context.Background(), domain.Queue("BOGUS"), dto.PagedQuery{})
	require.Error(t, err)
}
