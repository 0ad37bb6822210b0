package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

const defaultPlatziURL = "https://api.escuelajs.co/api/v1"

// PlatziClient implements Gateway for Platzi-shaped APIs: id-keyed
// categories, title substring filtering and bare-array listings without
// totals.
type PlatziClient struct {
	transport
}

var _ Gateway = (*PlatziClient)(nil)

// NewPlatziClient creates a new Platzi gateway.
func NewPlatziClient(opts ...Option) *PlatziClient {
	return &PlatziClient{transport: newTransport(DialectPlatzi, defaultPlatziURL, opts...)}
}

// ListProducts returns one page of the unfiltered listing.
func (c *PlatziClient) ListProducts(ctx context.Context, limit, skip int) (*Page, error) {
	return c.list(ctx, "list_products", offsetQuery(limit, skip), limit, skip)
}

// ListProductsByCategory returns one page of a category listing.
func (c *PlatziClient) ListProductsByCategory(
	ctx context.Context,
	category CategoryRef,
	limit, skip int,
) (*Page, error) {
	q := offsetQuery(limit, skip)
	q.Set("categoryId", strconv.FormatInt(category.ID, 10))
	return c.list(ctx, "list_products_by_category", q, limit, skip)
}

// SearchProducts returns one page of products whose title contains text.
func (c *PlatziClient) SearchProducts(
	ctx context.Context,
	text string,
	limit, skip int,
) (*Page, error) {
	q := offsetQuery(limit, skip)
	q.Set("title", text)
	return c.list(ctx, "search_products", q, limit, skip)
}

// ListCategories returns the raw category records.
func (c *PlatziClient) ListCategories(ctx context.Context) ([]domain.RawCategory, error) {
	var out []domain.RawCategory
	if err := c.getJSON(ctx, "list_categories", "/categories", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.RawCategory{}
	}
	return out, nil
}

// GetProduct fetches a single product by numeric id, or by slug when the
// reference is not numeric. Unknown ids are answered with 400 upstream and
// reported as 404.
func (c *PlatziClient) GetProduct(
	ctx context.Context,
	ref domain.ProductRef,
) (*domain.Product, error) {
	path := "/products/" + url.PathEscape(ref.String())
	if !ref.Numeric {
		path = "/products/slug/" + url.PathEscape(ref.Literal)
	}

	var p domain.Product
	if err := c.getJSON(ctx, "get_product", path, nil, &p); err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Status == http.StatusBadRequest {
			return nil, &StatusError{Op: se.Op, Status: http.StatusNotFound, Message: se.Message}
		}
		return nil, err
	}
	if p.ID == 0 && p.Title == "" {
		return nil, &StatusError{Op: "get_product", Status: http.StatusNotFound, Message: "empty product"}
	}
	return &p, nil
}

// CategoryKey implements Gateway.
func (*PlatziClient) CategoryKey() CategoryKey { return KeyByID }

// Dialect implements Gateway.
func (*PlatziClient) Dialect() Dialect { return DialectPlatzi }

func (c *PlatziClient) list(
	ctx context.Context,
	op string,
	q url.Values,
	limit, skip int,
) (*Page, error) {
	var products []domain.Product
	if err := c.getJSON(ctx, op, "/products", q, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}

	return &Page{
		Products: products,
		Total:    TotalUnknown,
		Skip:     skip,
		Limit:    limit,
		HasMore:  limit > 0 && len(products) == limit,
	}, nil
}

func offsetQuery(limit, skip int) url.Values {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))
	return q
}
