package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-console/internal/events"
	"github.com/spec-kit/ticket-console/pkg/util"
)

type fakeApprovalClient struct {
	mu        sync.Mutex
	closings  []int
	transfers []int
	holds     []int
	err       error
	block     chan struct{}
}

func (f *fakeApprovalClient) ApproveClosing(_ context.Context, id int) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closings = append(f.closings, id)
	return f.err
}

func (f *fakeApprovalClient) ApproveTransfer(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transfers = append(f.transfers, id)
	return f.err
}

func (f *fakeApprovalClient) ApproveOnHold(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.holds = append(f.holds, id)
	return f.err
}

func TestDispatchApproveSuccess(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	recorder := newTagRecorder(dispatcher, events.TagApproval, events.TagNotification)
	client := &fakeApprovalClient{}
	notifier := &recordingNotifier{}
	s := NewApprovalService(client, dispatcher, notifier, nil)

	err := s.Dispatch(context.Background(), ActionApprove, 101, 42, yes)
	require.NoError(t, err)
	require.Equal(t, []int{101}, client.closings)

	// One shared publication refreshes the queue list and the badge.
	require.Equal(t, 1, recorder.count(events.TagApproval))
	require.Equal(t, 1, recorder.count(events.TagNotification))
	require.Equal(t, []string{"Approve request successfully!"}, notifier.successes)
}

func TestDispatchRoutesByAction(t *testing.T) {
	client := &fakeApprovalClient{}
	s := NewApprovalService(client, events.NewInMemoryDispatcher(), nil, nil)

	require.NoError(t, s.Dispatch(context.Background(), ActionTransfer, 201, 42, yes))
	require.NoError(t, s.Dispatch(context.Background(), ActionHold, 301, 42, yes))
	require.Equal(t, []int{201}, client.transfers)
	require.Equal(t, []int{301}, client.holds)
}

func TestDispatchDeclinedIsNoop(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	recorder := newTagRecorder(dispatcher, events.TagApproval)
	client := &fakeApprovalClient{}
	s := NewApprovalService(client, dispatcher, nil, nil)

	require.NoError(t, s.Dispatch(context.Background(), ActionApprove, 101, 42, no))
	require.Empty(t, client.closings)
	require.Zero(t, recorder.count(events.TagApproval))
}

func TestDispatchFailureSurfacesServerMessage(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	recorder := newTagRecorder(dispatcher, events.TagApproval)
	client := &fakeApprovalClient{err: util.NewServerError("Ticket already closed")}
	notifier := &recordingNotifier{}
	s := NewApprovalService(client, dispatcher, notifier, nil)

	err := s.Dispatch(context.Background(), ActionApprove, 101, 42, yes)
	require.Error(t, err)
	require.Equal(t, []string{"Ticket already closed"}, notifier.failures)
	// No invalidation on failure: the stale page must not refetch and
	// mask the error.
	require.Zero(t, recorder.count(events.TagApproval))
}

func TestDispatchInFlightGuard(t *testing.T) {
	client := &fakeApprovalClient{block: make(chan struct{})}
	s := NewApprovalService(client, events.NewInMemoryDispatcher(), nil, nil)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- s.Dispatch(context.Background(), ActionApprove, 101, 42, yes)
	}()

	require.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.inFlight[101]
	}, time.Second, 5*time.Millisecond)

	err := s.Dispatch(context.Background(), ActionApprove, 101, 42, yes)
	require.Error(t, err)
	require.Equal(t, util.KindConflict, util.ToDomainError(err).Kind)

	// A different request is unaffected.
	require.NoError(t, s.Dispatch(context.Background(), ActionTransfer, 202, 43, yes))

	close(client.block)
	require.NoError(t, <-firstDone)
	require.Len(t, client.closings, 1)
}

func TestPromptForMentionsTicket(t *testing.T) {
	s := NewApprovalService(&fakeApprovalClient{}, events.NewInMemoryDispatcher(), nil, nil)
	prompt := s.PromptFor(ActionApprove, 42)
	require.Contains(t, prompt.Text, "42")
	require.Empty(t, prompt.Advisory)
}
