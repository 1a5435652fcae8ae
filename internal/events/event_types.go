package events

import "time"

// Tag names a cache-invalidation group. A mutation publishes the tags it
// dirties; every store subscribed to a tag refetches once. The approver
// queue list and the notification badge share TagApproval so a single
// publication refreshes both.
type Tag string

const (
	TagApproval            Tag = "approval"
	TagReceiverConcern     Tag = "receiver_concern"
	TagNotification        Tag = "notification"
	TagNotificationMessage Tag = "notification_message"
)

// Event is an invalidation published by a workflow mutation.
type Event struct {
	ID        string    `json:"id"`
	Tags      []Tag     `json:"tags"`
	Source    string    `json:"source"`
	TicketID  int       `json:"ticket_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
