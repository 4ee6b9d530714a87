package client

import (
	"context"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

// Static content pages

type PageInput struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Body     string `json:"body"`
	IsActive bool   `json:"isActive"`
}

func (c *Client) ListPages(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[sdk.Page], error) {
	return list[sdk.Page](ctx, c, "/pages", q)
}

func (c *Client) GetPage(ctx context.Context, id string) (sdk.Page, error) {
	var out sdk.Page
	if err := c.get(ctx, "/pages/"+id, nil, &out); err != nil {
		return sdk.Page{}, err
	}
	return out, nil
}

func (c *Client) CreatePage(ctx context.Context, in PageInput) (sdk.Page, error) {
	var out sdk.Page
	if err := c.post(ctx, "/pages", in, &out); err != nil {
		return sdk.Page{}, err
	}
	return out, nil
}

func (c *Client) UpdatePage(ctx context.Context, id string, in PageInput) (sdk.Page, error) {
	var out sdk.Page
	if err := c.put(ctx, "/pages/"+id, in, &out); err != nil {
		return sdk.Page{}, err
	}
	return out, nil
}

func (c *Client) DeletePage(ctx context.Context, id string) error {
	return c.delete(ctx, "/pages/"+id)
}

// FAQs

type FAQInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
	IsActive bool   `json:"isActive"`
}

func (c *Client) ListFAQs(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[sdk.FAQ], error) {
	return list[sdk.FAQ](ctx, c, "/faqs", q)
}

func (c *Client) GetFAQ(ctx context.Context, id string) (sdk.FAQ, error) {
	var out sdk.FAQ
	if err := c.get(ctx, "/faqs/"+id, nil, &out); err != nil {
		return sdk.FAQ{}, err
	}
	return out, nil
}

func (c *Client) CreateFAQ(ctx context.Context, in FAQInput) (sdk.FAQ, error) {
	var out sdk.FAQ
	if err := c.post(ctx, "/faqs", in, &out); err != nil {
		return sdk.FAQ{}, err
	}
	return out, nil
}

func (c *Client) UpdateFAQ(ctx context.Context, id string, in FAQInput) (sdk.FAQ, error) {
	var out sdk.FAQ
	if err := c.put(ctx, "/faqs/"+id, in, &out); err != nil {
		return sdk.FAQ{}, err
	}
	return out, nil
}

func (c *Client) DeleteFAQ(ctx context.Context, id string) error {
	return c.delete(ctx, "/faqs/"+id)
}

func (c *Client) BulkDeleteFAQs(ctx context.Context, ids []string) error {
	return c.bulk(ctx, "/bulk-delete-faqs", ids)
}

// Tracking pixels

type PixelInput struct {
	Provider string `json:"provider"`
	PixelID  string `json:"pixelId"`
	IsActive bool   `json:"isActive"`
}

func (c *Client) ListPixels(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[sdk.Pixel], error) {
	return list[sdk.Pixel](ctx, c, "/pixels", q)
}

func (c *Client) GetPixel(ctx context.Context, id string) (sdk.Pixel, error) {
	var out sdk.Pixel
	if err := c.get(ctx, "/pixels/"+id, nil, &out); err != nil {
		return sdk.Pixel{}, err
	}
	return out, nil
}

func (c *Client) CreatePixel(ctx context.Context, in PixelInput) (sdk.Pixel, error) {
	var out sdk.Pixel
	if err := c.post(ctx, "/pixels", in, &out); err != nil {
		return sdk.Pixel{}, err
	}
	return out, nil
}

func (c *Client) UpdatePixel(ctx context.Context, id string, in PixelInput) (sdk.Pixel, error) {
	var out sdk.Pixel
	if err := c.put(ctx, "/pixels/"+id, in, &out); err != nil {
		return sdk.Pixel{}, err
	}
	return out, nil
}

func (c *Client) DeletePixel(ctx context.Context, id string) error {
	return c.delete(ctx, "/pixels/"+id)
}

// Visit-us locations

type VisitUsInput struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	MapURL   string `json:"mapUrl,omitempty"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"isActive"`
}

func (c *Client) ListVisitUs(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[sdk.VisitUsLocation], error) {
	return list[sdk.VisitUsLocation](ctx, c, "/visit-us", q)
}

func (c *Client) GetVisitUs(ctx context.Context, id string) (sdk.VisitUsLocation, error) {
	var out sdk.VisitUsLocation
	if err := c.get(ctx, "/visit-us/"+id, nil, &out); err != nil {
		return sdk.VisitUsLocation{}, err
	}
	return out, nil
}

func (c *Client) CreateVisitUs(ctx context.Context, in VisitUsInput) (sdk.VisitUsLocation, error) {
	var out sdk.VisitUsLocation
	if err := c.post(ctx, "/visit-us", in, &out); err != nil {
		return sdk.VisitUsLocation{}, err
	}
	return out, nil
}

func (c *Client) UpdateVisitUs(ctx context.Context, id string, in VisitUsInput) (sdk.VisitUsLocation, error) {
	var out sdk.VisitUsLocation
	if err := c.put(ctx, "/visit-us/"+id, in, &out); err != nil {
		return sdk.VisitUsLocation{}, err
	}
	return out, nil
}

func (c *Client) DeleteVisitUs(ctx context.Context, id string) error {
	return c.delete(ctx, "/visit-us/"+id)
}
