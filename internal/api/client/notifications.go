package client

import (
	"context"

	"github.com/spec-kit/ticket-console/internal/api/dto"
)

// GetNotificationCounts fetches the unread counts the queue tabs badge
// themselves with.
func (c *Client) GetNotificationCounts(ctx context.Context) (dto.NotificationValue, error) {
	var out dto.NotificationResponse
	if err := c.get(ctx, "/notification", nil, &out); err != nil {
		return dto.NotificationValue{}, err
	}
	return out.Value, nil
}
