package dto

// NotificationValue carries the unread counts the queue tabs badge
// themselves with.
type NotificationValue struct {
	ForApprovalClosingNotif  int `json:"forApprovalClosingNotif"`
	ForApprovalTransferNotif int `json:"forApprovalTransferNotif"`
	ForApprovalOnHoldNotif   int `json:"forApprovalOnHoldNotif"`
	ReceiverConcernNotif     int `json:"receiverConcernNotif"`
}

// NotificationResponse is the badge feed envelope.
type NotificationResponse struct {
	Value NotificationValue `json:"value"`
}
