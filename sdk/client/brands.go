package client

import (
	"context"
	"net/http"
	"strconv"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

// BrandInput carries the mutable brand attributes. Logo is optional; when
// nil the request goes out as plain JSON instead of multipart.
type BrandInput struct {
	Name     string
	IsActive bool
	Logo     *Upload
}

func (c *Client) ListBrands(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[sdk.Brand], error) {
	return list[sdk.Brand](ctx, c, "/brands", q)
}

func (c *Client) GetBrand(ctx context.Context, id string) (sdk.Brand, error) {
	var out sdk.Brand
	if err := c.get(ctx, "/brands/"+id, nil, &out); err != nil {
		return sdk.Brand{}, err
	}
	return out, nil
}

func (c *Client) CreateBrand(ctx context.Context, in BrandInput) (sdk.Brand, error) {
	var out sdk.Brand
	if err := c.sendBrand(ctx, http.MethodPost, "/brands", in, &out); err != nil {
		return sdk.Brand{}, err
	}
	return out, nil
}

func (c *Client) UpdateBrand(ctx context.Context, id string, in BrandInput) (sdk.Brand, error) {
	var out sdk.Brand
	if err := c.sendBrand(ctx, http.MethodPut, "/brands/"+id, in, &out); err != nil {
		return sdk.Brand{}, err
	}
	return out, nil
}

func (c *Client) DeleteBrand(ctx context.Context, id string) error {
	return c.delete(ctx, "/brands/"+id)
}

func (c *Client) BulkDeleteBrands(ctx context.Context, ids []string) error {
	return c.bulk(ctx, "/bulk-delete-brands", ids)
}

func (c *Client) sendBrand(ctx context.Context, method, path string, in BrandInput, out any) error {
	if in.Logo != nil {
		fields := map[string]string{
			"name":     in.Name,
			"isActive": strconv.FormatBool(in.IsActive),
		}
		return c.upload(ctx, method, path, fields, []Upload{*in.Logo}, out)
	}
	body := map[string]any{"name": in.Name, "isActive": in.IsActive}
	return c.send(ctx, method, path, body, out)
}
