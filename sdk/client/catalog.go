package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

// Models

type ModelInput struct {
	Name     string `json:"name"`
	BrandID  string `json:"brandId"`
	IsActive bool   `json:"isActive"`
}

func (c *Client) ListModels(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[sdk.Model], error) {
	return list[sdk.Model](ctx, c, "/models", q)
}

func (c *Client) GetModel(ctx context.Context, id string) (sdk.Model, error) {
	var out sdk.Model
	if err := c.get(ctx, "/models/"+id, nil, &out); err != nil {
		return sdk.Model{}, err
	}
	return out, nil
}

func (c *Client) CreateModel(ctx context.Context, in ModelInput) (sdk.Model, error) {
	var out sdk.Model
	if err := c.post(ctx, "/models", in, &out); err != nil {
		return sdk.Model{}, err
	}
	return out, nil
}

func (c *Client) UpdateModel(ctx context.Context, id string, in ModelInput) (sdk.Model, error) {
	var out sdk.Model
	if err := c.put(ctx, "/models/"+id, in, &out); err != nil {
		return sdk.Model{}, err
	}
	return out, nil
}

func (c *Client) DeleteModel(ctx context.Context, id string) error {
	return c.delete(ctx, "/models/"+id)
}

func (c *Client) BulkDeleteModels(ctx context.Context, ids []string) error {
	return c.bulk(ctx, "/bulk-delete-models", ids)
}

// Product types

type ProductTypeInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	ParentID string `json:"parentId,omitempty"`
	IsActive bool   `json:"isActive"`
}

func (c *Client) ListProductTypes(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[sdk.ProductType], error) {
	return list[sdk.ProductType](ctx, c, "/product-types", q)
}

func (c *Client) GetProductType(ctx context.Context, id string) (sdk.ProductType, error) {
	var out sdk.ProductType
	if err := c.get(ctx, "/product-types/"+id, nil, &out); err != nil {
		return sdk.ProductType{}, err
	}
	return out, nil
}

func (c *Client) CreateProductType(ctx context.Context, in ProductTypeInput) (sdk.ProductType, error) {
	var out sdk.ProductType
	if err := c.post(ctx, "/product-types", in, &out); err != nil {
		return sdk.ProductType{}, err
	}
	return out, nil
}

func (c *Client) UpdateProductType(ctx context.Context, id string, in ProductTypeInput) (sdk.ProductType, error) {
	var out sdk.ProductType
	if err := c.put(ctx, "/product-types/"+id, in, &out); err != nil {
		return sdk.ProductType{}, err
	}
	return out, nil
}

func (c *Client) DeleteProductType(ctx context.Context, id string) error {
	return c.delete(ctx, "/product-types/"+id)
}

func (c *Client) BulkDeleteProductTypes(ctx context.Context, ids []string) error {
	return c.bulk(ctx, "/bulk-delete-product-types", ids)
}

// ProductTypeOptions returns value/label pairs for the subcategory select,
// filtered by the chosen parent category. It backs dependent form fields.
func (c *Client) ProductTypeOptions(ctx context.Context, category string) ([]sdk.Option, error) {
	var out []sdk.Option
	v := url.Values{}
	if category != "" {
		v.Set("category", category)
	}
	if err := c.get(ctx, "/product-types/options", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Products

type ProductInput struct {
	Name          string
	Description   string
	BrandID       string
	ModelID       string
	ProductTypeID string
	Price         float64
	IsActive      bool
	Images        []Upload
}

func (c *Client) ListProducts(ctx context.Context, q sdk.ListQuery) (sdk.PageResult[sdk.Product], error) {
	return list[sdk.Product](ctx, c, "/products", q)
}

func (c *Client) GetProduct(ctx context.Context, id string) (sdk.Product, error) {
	var out sdk.Product
	if err := c.get(ctx, "/products/"+id, nil, &out); err != nil {
		return sdk.Product{}, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (sdk.Product, error) {
	var out sdk.Product
	if err := c.sendProduct(ctx, http.MethodPost, "/products", in, &out); err != nil {
		return sdk.Product{}, err
	}
	return out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput) (sdk.Product, error) {
	var out sdk.Product
	if err := c.sendProduct(ctx, http.MethodPut, "/products/"+id, in, &out); err != nil {
		return sdk.Product{}, err
	}
	return out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.delete(ctx, "/products/"+id)
}

func (c *Client) BulkDeleteProducts(ctx context.Context, ids []string) error {
	return c.bulk(ctx, "/bulk-delete-products", ids)
}

func (c *Client) sendProduct(ctx context.Context, method, path string, in ProductInput, out any) error {
	if len(in.Images) > 0 {
		fields := map[string]string{
			"name":          in.Name,
			"description":   in.Description,
			"brandId":       in.BrandID,
			"modelId":       in.ModelID,
			"productTypeId": in.ProductTypeID,
			"price":         strconv.FormatFloat(in.Price, 'f', -1, 64),
			"isActive":      strconv.FormatBool(in.IsActive),
		}
		return c.upload(ctx, method, path, fields, in.Images, out)
	}
	body := map[string]any{
		"name":          in.Name,
		"description":   in.Description,
		"brandId":       in.BrandID,
		"modelId":       in.ModelID,
		"productTypeId": in.ProductTypeID,
		"price":         in.Price,
		"isActive":      in.IsActive,
	}
	return c.send(ctx, method, path, body, out)
}
