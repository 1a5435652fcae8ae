package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcherFansOutPerTag(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var approvalHits, notificationHits int
	dispatcher.Subscribe(TagApproval, func(context.Context, Event) error {
		approvalHits++
		return nil
	})
	dispatcher.Subscribe(TagNotification, func(context.Context, Event) error {
		notificationHits++
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{
		ID:   "e1",
		Tags: []Tag{TagApproval, TagNotification},
	})
	require.NoError(t, err)
	require.Equal(t, 1, approvalHits)
	require.Equal(t, 1, notificationHits)
}

func TestDispatcherIgnoresUnsubscribedTags(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var hits int
	dispatcher.Subscribe(TagReceiverConcern, func(context.Context, Event) error {
		hits++
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{
		ID:   "e2",
		Tags: []Tag{TagApproval},
	})
	require.NoError(t, err)
	require.Zero(t, hits)
}
