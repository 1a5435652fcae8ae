package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-console/internal/events"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// RealtimeWorker listens on the backend's websocket push channel and
// translates every push into a notification invalidation, so badge
// counts and queue lists refresh without polling. The connection is
// re-established with capped exponential backoff until the context is
// cancelled.
type RealtimeWorker struct {
	url        string
	dispatcher events.Dispatcher
	logger     *zap.Logger
	dialer     *websocket.Dialer
}

// NewRealtimeWorker creates the push listener.
func NewRealtimeWorker(url string, dispatcher events.Dispatcher, logger *zap.Logger) *RealtimeWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RealtimeWorker{
		url:        url,
		dispatcher: dispatcher,
		logger:     logger,
		dialer:     websocket.DefaultDialer,
	}
}

// Run blocks until ctx is cancelled, reconnecting as needed.
func (w *RealtimeWorker) Run(ctx context.Context) {
	backoff := initialBackoff
	for {
		if ctx.Err() != nil {
			return
		}
		conn, _, err := w.dialer.DialContext(ctx, w.url, nil)
		if err != nil {
			w.logger.Warn("realtime dial failed",
				zap.String("url", w.url),
				zap.Duration("retry_in", backoff),
				zap.Error(err))
			if !sleep(ctx, backoff) {
				return
			}
			backoff = nextBackoff(backoff)
			continue
		}

		w.logger.Info("realtime channel connected", zap.String("url", w.url))
		backoff = initialBackoff
		w.readLoop(ctx, conn)
		conn.Close()
	}
}

// readLoop consumes pushes until the connection breaks or ctx ends.
// The payload content is irrelevant; any push means server state moved
// and the caches must refetch.
func (w *RealtimeWorker) readLoop(ctx context.Context, conn *websocket.Conn) {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()
	defer close(done)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if ctx.Err() == nil {
				w.logger.Warn("realtime channel dropped", zap.Error(err))
			}
			return
		}
		w.publish(ctx)
	}
}

func (w *RealtimeWorker) publish(ctx context.Context) {
	event := events.Event{
		ID:        uuid.NewString(),
		Tags:      []events.Tag{events.TagNotification},
		Source:    "realtime",
		Timestamp: time.Now(),
	}
	if err := w.dispatcher.Publish(ctx, event); err != nil {
		w.logger.Warn("failed to publish realtime invalidation", zap.Error(err))
	}
}

func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
