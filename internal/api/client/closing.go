package client

import (
	"context"

	"github.com/spec-kit/ticket-console/internal/domain"
)

// CloseTicket submits the closing record as multipart/form-data. The
// record must already satisfy domain validation; the client only
// encodes and transports.
func (c *Client) CloseTicket(ctx context.Context, record domain.ClosingRecord) error {
	return c.postMultipart(ctx, "/closing-ticket/close", EncodeClosingForm(record), nil)
}
