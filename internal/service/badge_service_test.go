package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-console/internal/api/dto"
	"github.com/spec-kit/ticket-console/internal/events"
	"github.com/spec-kit/ticket-console/pkg/util"
)

type fakeBadgeFetcher struct {
	mu     sync.Mutex
	counts dto.NotificationValue
	calls  int
	err    error
}

func (f *fakeBadgeFetcher) GetNotificationCounts(context.Context) (dto.NotificationValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.counts, f.err
}

func TestBadgeRefresh(t *testing.T) {
	fetcher := &fakeBadgeFetcher{counts: dto.NotificationValue{ForApprovalClosingNotif: 3}}
	s := NewBadgeService(fetcher, nil)

	require.NoError(t, s.Refresh(context.Background()))
	require.Equal(t, 3, s.Counts().ForApprovalClosingNotif)
}

func TestBadgeRefetchesOnSharedInvalidation(t *testing.T) {
	fetcher := &fakeBadgeFetcher{counts: dto.NotificationValue{ForApprovalClosingNotif: 2}}
	dispatcher := events.NewInMemoryDispatcher()
	s := NewBadgeService(fetcher, nil)
	s.RegisterHandlers(dispatcher)

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:   "e1",
		Tags: []events.Tag{events.TagApproval},
	})
	require.NoError(t, err)
	require.Equal(t, 2, s.Counts().ForApprovalClosingNotif)
	require.Equal(t, 1, fetcher.calls)
}

func TestBadgeOnChangeCallback(t *testing.T) {
	fetcher := &fakeBadgeFetcher{counts: dto.NotificationValue{ReceiverConcernNotif: 7}}
	s := NewBadgeService(fetcher, nil)

	var got dto.NotificationValue
	s.OnChange(func(counts dto.NotificationValue) { got = counts })

	require.NoError(t, s.Refresh(context.Background()))
	require.Equal(t, 7, got.ReceiverConcernNotif)
}

func TestBadgeRefreshErrorKeepsLastCounts(t *testing.T) {
	fetcher := &fakeBadgeFetcher{counts: dto.NotificationValue{ForApprovalTransferNotif: 5}}
	s := NewBadgeService(fetcher, nil)
	require.NoError(t, s.Refresh(context.Background()))

	fetcher.mu.Lock()
	fetcher.err = util.NewServerError("unavailable")
	fetcher.mu.Unlock()

	require.Error(t, s.Refresh(context.Background()))
	require.Equal(t, 5, s.Counts().ForApprovalTransferNotif)
}
