package domain

import "time"

// Queue identifies one of the console's independent paginated views.
// The first three are the approver's decision queues; QueueConcerns is
// the receiver's intake list.
type Queue string

const (
	QueueTickets     Queue = "TICKETS"
	QueueForTransfer Queue = "FOR_TRANSFER"
	QueueOnHold      Queue = "ON_HOLD"
	QueueConcerns    Queue = "CONCERNS"
)

// Ticket is a concern once routed to an issue handler for resolution.
// Category, sub-category and technicians stay unset until closing.
type Ticket struct {
	TicketConcernID  int
	RequestConcernID int
	Requestor        string
	DepartmentName   string
	ChannelID        int
	ChannelName      string
	Description      string
	Categories       []CategorySelection
	SubCategories    []SubCategorySelection
	TargetDate       *time.Time
	Status           ConcernStatus
}

// CategorySelection pairs a masterlist category with its server-side
// ticket-category link id (zero until persisted).
type CategorySelection struct {
	TicketCategoryID int
	CategoryID       int
	Description      string
}

// SubCategorySelection pairs a masterlist sub-category with its
// server-side link id. CategoryID is the parent required for the
// cross-field referential check at closing time.
type SubCategorySelection struct {
	TicketSubCategoryID int
	SubCategoryID       int
	CategoryID          int
	Description         string
}

// TechnicianSelection is an optional closing-form assignment.
type TechnicianSelection struct {
	TicketTechnicianID int
	TechnicianID       int
	Name               string
}
