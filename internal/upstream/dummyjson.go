package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

const defaultDummyJSONURL = "https://dummyjson.com"

// DummyJSONClient implements Gateway for dummyjson-shaped APIs: slug-keyed
// categories, a full-text search endpoint and reported totals.
type DummyJSONClient struct {
	transport
}

var _ Gateway = (*DummyJSONClient)(nil)

// NewDummyJSONClient creates a new dummyjson gateway.
func NewDummyJSONClient(opts ...Option) *DummyJSONClient {
	return &DummyJSONClient{transport: newTransport(DialectDummyJSON, defaultDummyJSONURL, opts...)}
}

type dummyListResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// ListProducts returns one page of the unfiltered listing.
func (c *DummyJSONClient) ListProducts(ctx context.Context, limit, skip int) (*Page, error) {
	return c.list(ctx, "list_products", "/products", pageQuery(limit, skip))
}

// ListProductsByCategory returns one page of a category listing.
func (c *DummyJSONClient) ListProductsByCategory(
	ctx context.Context,
	category CategoryRef,
	limit, skip int,
) (*Page, error) {
	if category.Slug == "" {
		return nil, fmt.Errorf("list_products_by_category: category slug is required")
	}
	return c.list(ctx, "list_products_by_category",
		"/products/category/"+url.PathEscape(category.Slug), pageQuery(limit, skip))
}

// SearchProducts returns one page of the upstream's own full-text search.
func (c *DummyJSONClient) SearchProducts(
	ctx context.Context,
	text string,
	limit, skip int,
) (*Page, error) {
	q := pageQuery(limit, skip)
	q.Set("q", text)
	return c.list(ctx, "search_products", "/products/search", q)
}

// ListCategories returns the category list. The upstream publishes bare
// slugs, so each is turned into a record with a 1-based positional id and
// the slug as its name.
func (c *DummyJSONClient) ListCategories(ctx context.Context) ([]domain.RawCategory, error) {
	var slugs []any
	if err := c.getJSON(ctx, "list_categories", "/products/category-list", nil, &slugs); err != nil {
		return nil, err
	}

	out := make([]domain.RawCategory, 0, len(slugs))
	for i, s := range slugs {
		out = append(out, domain.RawCategory{
			"id":   i + 1,
			"slug": s,
			"name": s,
		})
	}
	return out, nil
}

// GetProduct fetches a single product.
func (c *DummyJSONClient) GetProduct(
	ctx context.Context,
	ref domain.ProductRef,
) (*domain.Product, error) {
	var p domain.Product
	path := "/products/" + url.PathEscape(ref.String())
	if err := c.getJSON(ctx, "get_product", path, nil, &p); err != nil {
		return nil, err
	}
	if p.ID == 0 && p.Title == "" {
		return nil, &StatusError{Op: "get_product", Status: http.StatusNotFound, Message: "empty product"}
	}
	return &p, nil
}

// CategoryKey implements Gateway.
func (*DummyJSONClient) CategoryKey() CategoryKey { return KeyBySlug }

// Dialect implements Gateway.
func (*DummyJSONClient) Dialect() Dialect { return DialectDummyJSON }

func (c *DummyJSONClient) list(
	ctx context.Context,
	op, path string,
	q url.Values,
) (*Page, error) {
	var resp dummyListResponse
	if err := c.getJSON(ctx, op, path, q, &resp); err != nil {
		return nil, err
	}
	if resp.Products == nil {
		resp.Products = []domain.Product{}
	}

	return &Page{
		Products: resp.Products,
		Total:    resp.Total,
		Skip:     resp.Skip,
		Limit:    resp.Limit,
		HasMore:  len(resp.Products) > 0 && resp.Skip+len(resp.Products) < resp.Total,
	}, nil
}

func pageQuery(limit, skip int) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("skip", strconv.Itoa(skip))
	return q
}
