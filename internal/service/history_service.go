package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-console/internal/api/dto"
	"github.com/spec-kit/ticket-console/internal/domain"
)

// TimelineMarker is the color class of a timeline step.
type TimelineMarker string

const (
	MarkerUpcoming TimelineMarker = "grey"
	MarkerDone     TimelineMarker = "green"
	MarkerNegative TimelineMarker = "red"
)

// TimelineEntry is one rendered row of a ticket's timeline.
type TimelineEntry struct {
	Upcoming     bool
	Marker       TimelineMarker
	At           time.Time
	Action       domain.HistoryAction
	Status       string
	TransactedBy string
	Remarks      string
}

// HistoryFetcher loads a ticket's raw history from the server.
type HistoryFetcher interface {
	GetTicketHistory(ctx context.Context, ticketConcernID int) (*dto.TicketHistoryResponse, error)
}

// HistoryService turns the server's two-part history payload into a
// render-ready timeline: upcoming approver steps first with grey
// markers, then completed steps in the order the server returned them.
// The two sub-lists are never merged or re-sorted chronologically.
type HistoryService struct {
	fetcher HistoryFetcher
	logger  *zap.Logger
}

// NewHistoryService creates the timeline builder.
func NewHistoryService(fetcher HistoryFetcher, logger *zap.Logger) *HistoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryService{fetcher: fetcher, logger: logger}
}

// Timeline fetches and assembles the timeline for a ticket. A ticket
// with no history yields an empty slice, not an error.
func (s *HistoryService) Timeline(ctx context.Context, ticketConcernID int) ([]TimelineEntry, error) {
	resp, err := s.fetcher.GetTicketHistory(ctx, ticketConcernID)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Value) == 0 {
		return []TimelineEntry{}, nil
	}
	value := resp.Value[0]

	entries := make([]TimelineEntry, 0, len(value.UpcomingApprovers)+len(value.TicketHistory))
	for _, step := range value.UpcomingApprovers {
		entries = append(entries, TimelineEntry{
			Upcoming:     true,
			Marker:       MarkerUpcoming,
			At:           parseTransactionDate(step.TransactionDate),
			Action:       domain.HistoryAction(step.Request),
			Status:       step.Status,
			TransactedBy: step.TransactedBy,
			Remarks:      step.Remarks,
		})
	}
	for _, step := range value.TicketHistory {
		action := domain.HistoryAction(step.Request)
		entries = append(entries, TimelineEntry{
			Marker:       completedMarker(action),
			At:           parseTransactionDate(step.TransactionDate),
			Action:       action,
			Status:       step.Status,
			TransactedBy: step.TransactedBy,
			Remarks:      step.Remarks,
		})
	}
	return entries, nil
}

// completedMarker colors terminal-negative actions red, everything else
// green.
func completedMarker(action domain.HistoryAction) TimelineMarker {
	switch action {
	case domain.HistoryRejected, domain.HistoryDisapprove, domain.HistoryCancel:
		return MarkerNegative
	default:
		return MarkerDone
	}
}

// parseTransactionDate accepts the timestamp shapes the backend emits.
// Unparseable or empty dates come back zero; rendering shows them
// blank.
func parseTransactionDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
