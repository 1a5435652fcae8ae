package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-console/internal/api/dto"
	"github.com/spec-kit/ticket-console/internal/domain"
	"github.com/spec-kit/ticket-console/pkg/util"
)

type fakeHistoryFetcher struct {
	resp *dto.TicketHistoryResponse
	err  error
}

func (f *fakeHistoryFetcher) GetTicketHistory(context.Context, int) (*dto.TicketHistoryResponse, error) {
	return f.resp, f.err
}

func TestTimelineUpcomingFirstThenCompleted(t *testing.T) {
	fetcher := &fakeHistoryFetcher{resp: &dto.TicketHistoryResponse{
		Value: []dto.TicketHistoryValue{{
			UpcomingApprovers: []dto.HistoryStepItem{
				{Request: "Approved", Status: "For approval of Jane Cruz", TransactedBy: "Jane Cruz"},
			},
			TicketHistory: []dto.HistoryStepItem{
				{TransactionDate: "2026-08-30T09:00:00", Request: "Requested", TransactedBy: "Juan Dela Cruz"},
				{TransactionDate: "2026-08-30T10:00:00", Request: "Approved", TransactedBy: "Maria Santos"},
			},
		}},
	}}
	s := NewHistoryService(fetcher, nil)

	entries, err := s.Timeline(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	require.True(t, entries[0].Upcoming)
	require.Equal(t, MarkerUpcoming, entries[0].Marker)
	require.False(t, entries[1].Upcoming)
	require.Equal(t, domain.HistoryRequested, entries[1].Action)
	require.Equal(t, MarkerDone, entries[1].Marker)
	require.Equal(t, domain.HistoryApproved, entries[2].Action)
}

func TestTimelineNegativeActionsAreRed(t *testing.T) {
	fetcher := &fakeHistoryFetcher{resp: &dto.TicketHistoryResponse{
		Value: []dto.TicketHistoryValue{{
			TicketHistory: []dto.HistoryStepItem{
				{Request: "Rejected"},
				{Request: "Disapprove"},
				{Request: "Cancel"},
				{Request: "Closed"},
			},
		}},
	}}
	s := NewHistoryService(fetcher, nil)

	entries, err := s.Timeline(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, MarkerNegative, entries[0].Marker)
	require.Equal(t, MarkerNegative, entries[1].Marker)
	require.Equal(t, MarkerNegative, entries[2].Marker)
	require.Equal(t, MarkerDone, entries[3].Marker)
}

func TestTimelineEmptyHistory(t *testing.T) {
	s := NewHistoryService(&fakeHistoryFetcher{resp: &dto.TicketHistoryResponse{}}, nil)
	entries, err := s.Timeline(context.Background(), 42)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestTimelineFetchError(t *testing.T) {
	s := NewHistoryService(&fakeHistoryFetcher{err: util.NewServerError("not found")}, nil)
	_, err := s.Timeline(context.Background(), 42)
	require.Error(t, err)
}

func TestParseTransactionDateShapes(t *testing.T) {
	require.False(t, parseTransactionDate("2026-08-30T09:00:00").IsZero())
	require.False(t, parseTransactionDate("2026-08-30T09:00:00Z").IsZero())
	require.True(t, parseTransactionDate("").IsZero())
	require.True(t, parseTransactionDate("yesterday").IsZero())
}
