package client

import (
	"context"
	"net/url"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

// ListNotifications filters by read status: "all", "read" or "unread".
func (c *Client) ListNotifications(ctx context.Context, status string, page, limit int) (sdk.PageResult[sdk.Notification], error) {
	q := sdk.ListQuery{Page: page, Limit: limit}
	if status != "" && status != "all" {
		q.Extra = url.Values{"status": {status}}
	}
	return list[sdk.Notification](ctx, c, "/notifications", q)
}

// MarkNotificationRead flips a single notification. Screens apply this
// optimistically and roll back on failure.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.put(ctx, "/notifications/"+id+"/read", nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.put(ctx, "/notifications/mark-all-read", nil, nil)
}

// UnreadNotificationCount backs the badge shown next to the bell.
func (c *Client) UnreadNotificationCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/notifications/unread-count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}
