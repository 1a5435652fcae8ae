package dto

// ClosingAttachmentItem is a server-confirmed attachment on a closing
// request.
type ClosingAttachmentItem struct {
	TicketAttachmentID int    `json:"ticketAttachmentId"`
	FileName           string `json:"fileName"`
	FileSize           int64  `json:"fileSize"`
	Attachment         string `json:"attachment"`
}

// OpenTicketCategoryItem is a persisted category link on an open ticket.
type OpenTicketCategoryItem struct {
	TicketCategoryID    int    `json:"ticketCategoryId"`
	CategoryID          int    `json:"categoryId"`
	CategoryDescription string `json:"category_Description"`
}

// OpenTicketSubCategoryItem is a persisted sub-category link on an open
// ticket.
type OpenTicketSubCategoryItem struct {
	TicketSubCategoryID    int    `json:"ticketSubCategoryId"`
	SubCategoryID          int    `json:"subCategoryId"`
	CategoryID             int    `json:"categoryId"`
	SubCategoryDescription string `json:"subCategory_Description"`
}

// ClosingTicketItem is one row in the approver's Tickets queue: a
// closing request awaiting a decision.
type ClosingTicketItem struct {
	ClosingTicketID    int                         `json:"closingTicketId"`
	TicketConcernID    int                         `json:"ticketConcernId"`
	Fullname           string                      `json:"fullname"`
	DepartmentName     string                      `json:"department_Name"`
	ChannelID          int                         `json:"channelId"`
	ChannelName        string                      `json:"channel_Name"`
	ConcernDetails     string                      `json:"concern_Details"`
	ConcernDescription string                      `json:"concern_Description"`
	Resolution         string                      `json:"resolution"`
	ClosingAttachments []ClosingAttachmentItem     `json:"closingAttachments"`
	Categories         []OpenTicketCategoryItem    `json:"getOpenTicketCategories"`
	SubCategories      []OpenTicketSubCategoryItem `json:"getOpenTicketSubCategories"`
}

// ClosingQueueValue is the Tickets queue page body.
type ClosingQueueValue struct {
	ClosingTicket []ClosingTicketItem `json:"closingTicket"`
	PageMeta
}

// ClosingQueueResponse is the Tickets queue response envelope.
type ClosingQueueResponse struct {
	Value ClosingQueueValue `json:"value"`
}

// TransferQueueValue is the For Transfer queue page body.
type TransferQueueValue struct {
	TransferTicket []ClosingTicketItem `json:"transferTicket"`
	PageMeta
}

// TransferQueueResponse is the For Transfer queue response envelope.
type TransferQueueResponse struct {
	Value TransferQueueValue `json:"value"`
}

// OnHoldQueueValue is the On Hold queue page body.
type OnHoldQueueValue struct {
	OnHoldTicket []ClosingTicketItem `json:"onHoldTicket"`
	PageMeta
}

// OnHoldQueueResponse is the On Hold queue response envelope.
type OnHoldQueueResponse struct {
	Value OnHoldQueueValue `json:"value"`
}
