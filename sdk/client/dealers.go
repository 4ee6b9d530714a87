package client

import (
	"context"
	"net/http"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

func (c *Client) ListDealers(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[sdk.Dealer], error) {
	return list[sdk.Dealer](ctx, c, "/dealers", q)
}

func (c *Client) GetDealer(ctx context.Context, id string) (sdk.Dealer, error) {
	var out sdk.Dealer
	if err := c.get(ctx, "/dealers/"+id, nil, &out); err != nil {
		return sdk.Dealer{}, err
	}
	return out, nil
}

// SetDealerApproval flips the approval switch. Screens apply this
// optimistically and roll back when the call fails.
func (c *Client) SetDealerApproval(ctx context.Context, id string, approved bool) (sdk.Dealer, error) {
	var out sdk.Dealer
	if err := c.patch(ctx, "/dealers/"+id+"/approval", map[string]bool{"isApproved": approved}, &out); err != nil {
		return sdk.Dealer{}, err
	}
	return out, nil
}

func (c *Client) BulkApproveDealers(ctx context.Context, ids []string) error {
	return c.bulk(ctx, "/dealers/bulk-approve", ids)
}

// UploadDealerAgreement replaces the dealer's signed agreement image.
func (c *Client) UploadDealerAgreement(ctx context.Context, id string, agreement Upload) (sdk.Dealer, error) {
	var out sdk.Dealer
	if err := c.upload(ctx, http.MethodPut, "/dealers/"+id+"/agreement", nil, []Upload{agreement}, &out); err != nil {
		return sdk.Dealer{}, err
	}
	return out, nil
}
