package client

import (
	"context"

	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

// CategoriesResponse is the category menu.
type CategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
	Error      string            `json:"error,omitempty"`
}

// ListCategories returns the allow-listed categories.
func (c *Client) ListCategories(ctx context.Context) (*CategoriesResponse, error) {
	var resp CategoriesResponse
	if err := c.get(ctx, "/api/v1/categories", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
