package dto

// ApproveClosingItem references the closing request being approved.
type ApproveClosingItem struct {
	ClosingTicketID int `json:"closingTicketId"`
}

// ApproveClosingRequest is the approve mutation body.
type ApproveClosingRequest struct {
	ApproveClosingRequests []ApproveClosingItem `json:"approveClosingRequests"`
}

// ApproveTransferItem references the transfer request being approved.
type ApproveTransferItem struct {
	TransferTicketID int `json:"transferTicketId"`
}

// ApproveTransferRequest is the transfer-approve mutation body.
type ApproveTransferRequest struct {
	ApproveTransferRequests []ApproveTransferItem `json:"approveTransferRequests"`
}

// ApproveOnHoldItem references the on-hold request being approved.
type ApproveOnHoldItem struct {
	OnHoldTicketID int `json:"onHoldTicketId"`
}

// ApproveOnHoldRequest is the hold-approve mutation body.
type ApproveOnHoldRequest struct {
	ApproveOnHoldRequests []ApproveOnHoldItem `json:"approveOnHoldRequests"`
}

// RemoveAttachmentItem references a persisted attachment by server id.
type RemoveAttachmentItem struct {
	TicketAttachmentID int `json:"ticketAttachmentId"`
}

// RemoveAttachmentsRequest is the attachment removal body.
type RemoveAttachmentsRequest struct {
	RemoveAttachments []RemoveAttachmentItem `json:"removeAttachments"`
}
