package client

import (
	"context"
	"strconv"

	"github.com/spec-kit/ticket-console/internal/api/dto"
	"github.com/spec-kit/ticket-console/internal/domain"
)

// GetReceiverConcerns lists pending concerns for the receiver view. The
// fixed flags mirror the browser client's query.
func (c *Client) GetReceiverConcerns(ctx context.Context, query dto.PagedQuery) (*dto.ReceiverConcernResponse, error) {
	values := query.Values()
	values.Set("Approval", "false")
	values.Set("Status", "true")
	values.Set("Reject", "false")
	values.Set("Approver", "Approver")

	var out dto.ReceiverConcernResponse
	if err := c.get(ctx, "/request-concern/page", values, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateConcern submits a new concern with its staged attachments.
func (c *Client) CreateConcern(ctx context.Context, concern domain.Concern) error {
	return c.postMultipart(ctx, "/request-concern/add-request-concern", EncodeConcernForm(concern), nil)
}

// DeleteAttachment removes one persisted attachment by server id.
func (c *Client) DeleteAttachment(ctx context.Context, ticketAttachmentID int) error {
	body := dto.RemoveAttachmentsRequest{
		RemoveAttachments: []dto.RemoveAttachmentItem{{TicketAttachmentID: ticketAttachmentID}},
	}
	return c.putJSON(ctx, "/request-concern/remove-attachment", body, nil)
}

// GetTicketHistory fetches the two timeline sub-lists for a ticket.
func (c *Client) GetTicketHistory(ctx context.Context, ticketConcernID int) (*dto.TicketHistoryResponse, error) {
	var out dto.TicketHistoryResponse
	if err := c.get(ctx, "/ticket-history/"+strconv.Itoa(ticketConcernID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
