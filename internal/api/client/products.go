package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

// ErrNotFound is returned by GetProduct when catalogd answers 404.
var ErrNotFound = errors.New("product not found")

// ProductsResponse is one page of the product list. Error carries the
// server's message when the upstream failed; Items is then empty.
type ProductsResponse struct {
	Items    []domain.Product `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Error    string           `json:"error,omitempty"`
}

// ListProductsParams defines query parameters for product queries.
type ListProductsParams struct {
	Query    string
	Category string
	Page     int
	PageSize int
}

// ListProducts returns one page of products matching params.
func (c *Client) ListProducts(
	ctx context.Context,
	params *ListProductsParams,
) (*ProductsResponse, error) {
	q := url.Values{}
	if params != nil {
		if params.Query != "" {
			q.Set("q", params.Query)
		}
		if params.Category != "" {
			q.Set("category", params.Category)
		}
		if params.Page > 0 {
			q.Set("page", strconv.Itoa(params.Page))
		}
		if params.PageSize > 0 {
			q.Set("page_size", strconv.Itoa(params.PageSize))
		}
	}

	path := "/api/v1/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ProductsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		resp.Items = []domain.Product{}
	}
	return &resp, nil
}

// GetProduct returns a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var resp struct {
		Product *domain.Product `json:"product"`
	}
	err := c.get(ctx, "/api/v1/products/"+url.PathEscape(id), &resp)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return nil, errors.Join(ErrNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	if resp.Product == nil {
		return nil, ErrNotFound
	}
	return resp.Product, nil
}
