package client

import (
	"context"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

func (c *Client) ListCustomers(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[sdk.Customer], error) {
	return list[sdk.Customer](ctx, c, "/customers", q)
}

func (c *Client) GetCustomer(ctx context.Context, id string) (sdk.Customer, error) {
	var out sdk.Customer
	if err := c.get(ctx, "/customers/"+id, nil, &out); err != nil {
		return sdk.Customer{}, err
	}
	return out, nil
}

func (c *Client) SetCustomerBlocked(ctx context.Context, id string, blocked bool) (sdk.Customer, error) {
	var out sdk.Customer
	if err := c.patch(ctx, "/customers/"+id+"/blocked", map[string]bool{"isBlocked": blocked}, &out); err != nil {
		return sdk.Customer{}, err
	}
	return out, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.delete(ctx, "/customers/"+id)
}

func (c *Client) BulkDeleteCustomers(ctx context.Context, ids []string) error {
	return c.bulk(ctx, "/bulk-delete-customers", ids)
}
