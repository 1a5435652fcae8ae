package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-console/internal/api/dto"
	"github.com/spec-kit/ticket-console/internal/domain"
	"github.com/spec-kit/ticket-console/internal/events"
	"github.com/spec-kit/ticket-console/internal/service"
)

type stubQueueFetcher struct{}

func (stubQueueFetcher) GetTicketApprovals(context.Context, dto.PagedQuery) (*dto.ClosingQueueResponse, error) {
	return &dto.ClosingQueueResponse{}, nil
}

func (stubQueueFetcher) GetTransferApprovals(context.Context, dto.PagedQuery) (*dto.TransferQueueResponse, error) {
	return &dto.TransferQueueResponse{}, nil
}

func (stubQueueFetcher) GetOnHoldApprovals(context.Context, dto.PagedQuery) (*dto.OnHoldQueueResponse, error) {
	return &dto.OnHoldQueueResponse{}, nil
}

type stubBadgeFetcher struct{}

func (stubBadgeFetcher) GetNotificationCounts(context.Context) (dto.NotificationValue, error) {
	return dto.NotificationValue{}, nil
}

func newTestModel() *Model {
	dispatcher := events.NewInMemoryDispatcher()
	services := Services{
		Queues:     service.NewQueueService(stubQueueFetcher{}, nil),
		Badges:     service.NewBadgeService(stubBadgeFetcher{}, nil),
		Dispatcher: dispatcher,
	}
	return New(context.Background(), services, NewNotices(), 5, 0)
}

func TestSwitchQueueResetsController(t *testing.T) {
	m := newTestModel()
	m.searchInput.SetValue("printer")
	m.pager.SetSearch("printer")
	m.pager.SetPage(3)
	m.cursor = 2

	cmd := m.switchQueue(domain.QueueForTransfer)
	require.NotNil(t, cmd)
	require.Equal(t, domain.QueueForTransfer, m.queue)
	require.Equal(t, 1, m.pager.PageNumber())
	require.Empty(t, m.pager.Search())
	require.Empty(t, m.searchInput.Value())
	require.Zero(t, m.cursor)
}

func TestSwitchToSameQueueIsNoop(t *testing.T) {
	m := newTestModel()
	m.pager.SetPage(2)
	require.Nil(t, m.switchQueue(domain.QueueTickets))
	require.Equal(t, 2, m.pager.PageNumber())
}

func TestStaleDebounceIgnored(t *testing.T) {
	m := newTestModel()
	m.searchInput.SetValue("printer")
	m.searchSeq = 5

	_, cmd := m.Update(debounceMsg{seq: 4})
	require.Nil(t, cmd)
	require.Empty(t, m.pager.Search())

	_, cmd = m.Update(debounceMsg{seq: 5})
	require.NotNil(t, cmd)
	require.Equal(t, "printer", m.pager.Search())
}

func TestStaleQueuePageIgnored(t *testing.T) {
	m := newTestModel()
	m.fetchSeq = 2

	rows := []dto.ClosingTicketItem{{ClosingTicketID: 1}}
	m.Update(queuePageMsg{seq: 1, page: service.QueuePage{Rows: rows}})
	require.Empty(t, m.rows)

	m.Update(queuePageMsg{seq: 2, page: service.QueuePage{
		Rows: rows,
		Meta: dto.PageMeta{TotalCount: 1, PageSize: 5},
	}})
	require.Len(t, m.rows, 1)
	require.True(t, m.status.IsSuccess)
}

func TestQueuePageErrorSetsStatus(t *testing.T) {
	m := newTestModel()
	m.fetchSeq = 1
	m.Update(queuePageMsg{seq: 1, err: context.DeadlineExceeded})
	require.True(t, m.status.IsError)
	require.False(t, m.status.IsSuccess)
	require.NotEmpty(t, m.fetchError)
}

func TestNextPageSizeCycles(t *testing.T) {
	require.Equal(t, 10, nextPageSize(5))
	require.Equal(t, 25, nextPageSize(10))
	require.Equal(t, 5, nextPageSize(25))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "long str…", truncate("long string", 9))
}
