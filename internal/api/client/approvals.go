package client

import (
	"context"

	"github.com/spec-kit/ticket-console/internal/api/dto"
)

// GetTicketApprovals lists closing requests awaiting approval.
func (c *Client) GetTicketApprovals(ctx context.Context, query dto.PagedQuery) (*dto.ClosingQueueResponse, error) {
	var out dto.ClosingQueueResponse
	if err := c.get(ctx, "/closing-ticket/approval/page", query.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTransferApprovals lists transfer requests awaiting approval.
func (c *Client) GetTransferApprovals(ctx context.Context, query dto.PagedQuery) (*dto.TransferQueueResponse, error) {
	var out dto.TransferQueueResponse
	if err := c.get(ctx, "/transfer/approval/page", query.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOnHoldApprovals lists on-hold requests awaiting approval.
func (c *Client) GetOnHoldApprovals(ctx context.Context, query dto.PagedQuery) (*dto.OnHoldQueueResponse, error) {
	var out dto.OnHoldQueueResponse
	if err := c.get(ctx, "/on-hold/approval/page", query.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveClosing approves a closing request.
func (c *Client) ApproveClosing(ctx context.Context, closingTicketID int) error {
	body := dto.ApproveClosingRequest{
		ApproveClosingRequests: []dto.ApproveClosingItem{{ClosingTicketID: closingTicketID}},
	}
	return c.postJSON(ctx, "/closing-ticket/approval", body, nil)
}

// ApproveTransfer approves a transfer request.
func (c *Client) ApproveTransfer(ctx context.Context, transferTicketID int) error {
	body := dto.ApproveTransferRequest{
		ApproveTransferRequests: []dto.ApproveTransferItem{{TransferTicketID: transferTicketID}},
	}
	return c.postJSON(ctx, "/transfer/approval", body, nil)
}

// ApproveOnHold approves an on-hold request.
func (c *Client) ApproveOnHold(ctx context.Context, onHoldTicketID int) error {
	body := dto.ApproveOnHoldRequest{
		ApproveOnHoldRequests: []dto.ApproveOnHoldItem{{OnHoldTicketID: onHoldTicketID}},
	}
	return c.postJSON(ctx, "/on-hold/approval", body, nil)
}
