package domain

import "time"

// HistoryAction enumerates the action kinds a timeline event carries.
// Values match the backend's request strings.
type HistoryAction string

const (
	HistoryRequested  HistoryAction = "Requested"
	HistoryApproved   HistoryAction = "Approved"
	HistoryRejected   HistoryAction = "Rejected"
	HistoryDisapprove HistoryAction = "Disapprove"
	HistoryCancel     HistoryAction = "Cancel"
	HistoryTransfer   HistoryAction = "Transfer"
	HistoryClosed     HistoryAction = "Closed"
)

// HistoryEvent is one step in a ticket's timeline: either an upcoming
// approver step or a completed history entry.
type HistoryEvent struct {
	TransactionDate time.Time
	Request         HistoryAction
	Status          string
	TransactedBy    string
	Remarks         string
}
