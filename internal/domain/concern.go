package domain

import "time"

// ConcernStatus enumerates lifecycle states for concerns.
type ConcernStatus string

const (
	ConcernStatusPending     ConcernStatus = "PENDING"
	ConcernStatusForApproval ConcernStatus = "FOR_APPROVAL"
	ConcernStatusTransferred ConcernStatus = "TRANSFERRED"
	ConcernStatusOnHold      ConcernStatus = "ON_HOLD"
	ConcernStatusClosed      ConcernStatus = "CLOSED"
	ConcernStatusRejected    ConcernStatus = "REJECTED"
	ConcernStatusCancelled   ConcernStatus = "CANCELLED"
)

// Concern is the requester-submitted issue record, pre-assignment.
type Concern struct {
	RequestConcernID int
	Description      string
	Attachments      []Attachment
	Status           ConcernStatus
	Requestor        string
	CreatedAt        time.Time
}
