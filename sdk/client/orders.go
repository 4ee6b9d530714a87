package client

import (
	"context"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

func (c *Client) ListOrders(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[sdk.Order], error) {
	return list[sdk.Order](ctx, c, "/orders", q)
}

func (c *Client) GetOrder(ctx context.Context, id string) (sdk.Order, error) {
	var out sdk.Order
	if err := c.get(ctx, "/orders/"+id, nil, &out); err != nil {
		return sdk.Order{}, err
	}
	return out, nil
}

// SetOrderStatus transitions an order. Which transitions are legal is the
// backend's business; invalid ones come back as an APIError.
func (c *Client) SetOrderStatus(ctx context.Context, id, status string) (sdk.Order, error) {
	var out sdk.Order
	if err := c.patch(ctx, "/orders/"+id+"/status", map[string]string{"status": status}, &out); err != nil {
		return sdk.Order{}, err
	}
	return out, nil
}

func (c *Client) BulkCancelOrders(ctx context.Context, ids []string) error {
	return c.bulk(ctx, "/orders/bulk-cancel", ids)
}
