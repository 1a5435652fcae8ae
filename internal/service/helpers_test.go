package service

import (
	"context"
	"sync"

	"github.com/spec-kit/ticket-console/internal/domain"
	"github.com/spec-kit/ticket-console/internal/events"
)

var yes = ConfirmerFunc(func(context.Context, Prompt) (bool, error) {
	return true, nil
})

var no = ConfirmerFunc(func(context.Context, Prompt) (bool, error) {
	return false, nil
})

type fakeRemover struct {
	calls []int
	err   error
}

func (f *fakeRemover) DeleteAttachment(_ context.Context, ticketAttachmentID int) error {
	f.calls = append(f.calls, ticketAttachmentID)
	return f.err
}

type fakeCloser struct {
	mu      sync.Mutex
	records []domain.ClosingRecord
	err     error
	block   chan struct{}
}

func (f *fakeCloser) CloseTicket(_ context.Context, record domain.ClosingRecord) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, record)
	return f.err
}

func (f *fakeCloser) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, message)
}

// tagRecorder subscribes to the given tags and records every delivery.
type tagRecorder struct {
	mu     sync.Mutex
	byTag  map[events.Tag]int
	events []events.Event
}

func newTagRecorder(dispatcher events.Dispatcher, tags ...events.Tag) *tagRecorder {
	r := &tagRecorder{byTag: make(map[events.Tag]int)}
	for _, tag := range tags {
		tag := tag
		dispatcher.Subscribe(tag, func(_ context.Context, event events.Event) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.byTag[tag]++
			r.events = append(r.events, event)
			return nil
		})
	}
	return r
}

func (r *tagRecorder) count(tag events.Tag) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byTag[tag]
}
