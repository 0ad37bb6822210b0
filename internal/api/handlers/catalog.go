package handlers

import (
	"context"

	"github.com/donaldgifford/catalog-browser/internal/catalog"
	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

// Catalog is the view of the query engine the handlers depend on.
// *catalog.Engine implements it.
type Catalog interface {
	List(ctx context.Context, q domain.QuerySpec) catalog.ListState
	Categories(ctx context.Context) catalog.CategoriesState
	Product(ctx context.Context, id string) catalog.ProductState
}

var _ Catalog = (*catalog.Engine)(nil)
