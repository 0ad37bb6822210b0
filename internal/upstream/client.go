// Package upstream provides clients for the third-party product catalog API,
// abstracted behind the Gateway interface for testability.
package upstream

import (
	"context"

	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

// TotalUnknown is reported in Page.Total by gateways whose listing endpoints
// do not return a total count.
const TotalUnknown = -1

// Dialect names the upstream API shape a gateway speaks.
type Dialect string

// Supported dialects.
const (
	DialectDummyJSON Dialect = "dummyjson"
	DialectPlatzi    Dialect = "platzi"
)

// CategoryKey tells the engine which half of a CategoryRef a gateway reads.
type CategoryKey int

// Category key kinds.
const (
	KeyBySlug CategoryKey = iota
	KeyByID
)

// CategoryRef references a category by slug, id or both.
type CategoryRef struct {
	ID   int64
	Slug string
}

// Page is one upstream listing response.
type Page struct {
	Products []domain.Product
	Total    int // TotalUnknown when the upstream does not report one
	Skip     int
	Limit    int
	HasMore  bool
}

// Gateway is the remote catalog contract. Every call is a single
// request/response that fails as a unit; no call retries.
type Gateway interface {
	ListProducts(ctx context.Context, limit, skip int) (*Page, error)
	ListProductsByCategory(ctx context.Context, category CategoryRef, limit, skip int) (*Page, error)
	SearchProducts(ctx context.Context, text string, limit, skip int) (*Page, error)
	ListCategories(ctx context.Context) ([]domain.RawCategory, error)
	GetProduct(ctx context.Context, ref domain.ProductRef) (*domain.Product, error)

	// CategoryKey reports whether ListProductsByCategory needs a slug or an id.
	CategoryKey() CategoryKey
	Dialect() Dialect
}
