package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/catalog-browser/internal/catalog"
	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

// ProductsHandler handles product list and detail endpoints.
type ProductsHandler struct {
	catalog Catalog
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(c Catalog) *ProductsHandler {
	return &ProductsHandler{catalog: c}
}

// --- Input/Output types ---

// ListProductsInput is the input for listing products.
type ListProductsInput struct {
	Query    string `query:"q"         doc:"Title search text, matched literally"`
	Category string `query:"category"  doc:"Category slug or numeric id"`
	Page     int    `query:"page"      doc:"1-based page number (default 1)"  minimum:"0" maximum:"1000000"`
	PageSize int    `query:"page_size" doc:"Items per page (default 30)"      minimum:"0" maximum:"1000"`
}

// ListProductsOutput is the response for listing products. Upstream failures
// produce an empty page with Error set, not an error status.
type ListProductsOutput struct {
	Body struct {
		Items    []domain.Product `json:"items"`
		Total    int              `json:"total"               doc:"Size of the filtered result set"`
		Page     int              `json:"page"`
		PageSize int              `json:"page_size"`
		Error    string           `json:"error,omitempty"     doc:"User-facing message when the upstream failed"`
	}
}

// GetProductInput is the input for getting a single product.
type GetProductInput struct {
	ID string `path:"id" doc:"Product id; numeric ids are sent upstream in numeric form"`
}

// GetProductOutput is the response for getting a single product. The
// product is nested so its upstream fields survive response transformers.
type GetProductOutput struct {
	Body struct {
		Product *domain.Product `json:"product"`
	}
}

// --- Handlers ---

// ListProducts returns one page of products filtered by text and category.
func (h *ProductsHandler) ListProducts(
	ctx context.Context,
	input *ListProductsInput,
) (*ListProductsOutput, error) {
	state := h.catalog.List(ctx, domain.QuerySpec{
		Text:     input.Query,
		Category: input.Category,
		Page:     input.Page,
		PageSize: input.PageSize,
	})

	resp := &ListProductsOutput{}
	resp.Body.Items = state.Items
	resp.Body.Total = state.Total
	resp.Body.Page = state.Query.Page
	resp.Body.PageSize = state.Query.PageSize
	resp.Body.Error = state.Error

	return resp, nil
}

// GetProduct returns a single product by id.
func (h *ProductsHandler) GetProduct(
	ctx context.Context,
	input *GetProductInput,
) (*GetProductOutput, error) {
	state := h.catalog.Product(ctx, input.ID)

	switch state.Kind {
	case "":
		resp := &GetProductOutput{}
		resp.Body.Product = state.Product
		return resp, nil
	case catalog.KindNotFound:
		return nil, huma.Error404NotFound(state.Error)
	case catalog.KindInvalidInput:
		return nil, huma.Error400BadRequest(state.Error)
	default:
		return nil, huma.Error502BadGateway(state.Error)
	}
}

// RegisterProductRoutes registers product endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List products",
		Description: "Returns one page of products, optionally filtered by title text and category.",
		Tags:        []string{"products"},
	}, h.ListProducts)

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}",
		Summary:     "Get a product by id",
		Description: "Returns a single product with every upstream field passed through.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusBadGateway},
	}, h.GetProduct)
}
