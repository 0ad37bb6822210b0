package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

// CategoriesHandler handles the category menu endpoint.
type CategoriesHandler struct {
	catalog Catalog
}

// NewCategoriesHandler creates a new CategoriesHandler.
func NewCategoriesHandler(c Catalog) *CategoriesHandler {
	return &CategoriesHandler{catalog: c}
}

// ListCategoriesOutput is the response for listing categories.
type ListCategoriesOutput struct {
	Body struct {
		Categories []domain.Category `json:"categories" doc:"Allow-listed categories sorted by label"`
		Error      string            `json:"error,omitempty"`
	}
}

// ListCategories returns the normalized category list.
func (h *CategoriesHandler) ListCategories(
	ctx context.Context,
	_ *struct{},
) (*ListCategoriesOutput, error) {
	state := h.catalog.Categories(ctx)

	resp := &ListCategoriesOutput{}
	resp.Body.Categories = state.Categories
	resp.Body.Error = state.Error
	return resp, nil
}

// RegisterCategoryRoutes registers category endpoints with the Huma API.
func RegisterCategoryRoutes(api huma.API, h *CategoriesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Description: "Returns the allow-listed categories, deduplicated and sorted by label.",
		Tags:        []string{"categories"},
	}, h.ListCategories)
}
