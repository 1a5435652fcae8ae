package dto

// ReceiverConcernItem is one row in the receiver's pending-concern
// queue.
type ReceiverConcernItem struct {
	RequestConcernID   int                     `json:"requestConcernId"`
	Concern            string                  `json:"concern"`
	Fullname           string                  `json:"fullname"`
	DepartmentName     string                  `json:"department_Name"`
	ConcernStatus      string                  `json:"concernStatus"`
	RequestAttachments []ClosingAttachmentItem `json:"requestAttachments"`
}

// ReceiverConcernValue is the receiver queue page body.
type ReceiverConcernValue struct {
	RequestConcern []ReceiverConcernItem `json:"requestConcern"`
	PageMeta
}

// ReceiverConcernResponse is the receiver queue response envelope.
type ReceiverConcernResponse struct {
	Value ReceiverConcernValue `json:"value"`
}

// HistoryStepItem is one timeline step, upcoming or completed. Field
// names mirror the backend's snake-ish casing.
type HistoryStepItem struct {
	TransactionDate string `json:"transaction_Date"`
	Request         string `json:"request"`
	Status          string `json:"status"`
	TransactedBy    string `json:"transacted_By"`
	Remarks         string `json:"remarks"`
}

// TicketHistoryValue bundles the two ordered sub-lists the history
// endpoint returns for a ticket.
type TicketHistoryValue struct {
	UpcomingApprovers []HistoryStepItem `json:"upComingApprovers"`
	TicketHistory     []HistoryStepItem `json:"getTicketHistoryConcerns"`
}

// TicketHistoryResponse is the history response envelope. The backend
// wraps the single ticket's history in a one-element list.
type TicketHistoryResponse struct {
	Value []TicketHistoryValue `json:"value"`
}
