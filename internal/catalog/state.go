package catalog

import (
	"context"

	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

// ListState is everything a list view renders for one query. Each call
// returns a fresh value; callers discard states of superseded queries.
type ListState struct {
	Query domain.QuerySpec `json:"query"`
	Items []domain.Product `json:"items"`
	Total int              `json:"total"`
	Error string           `json:"error,omitempty"`
	Kind  Kind             `json:"-"`
}

// List runs FetchList and folds the outcome into a ListState. Query holds the
// normalized QuerySpec, so Page and PageSize are always the effective values.
func (e *Engine) List(ctx context.Context, q domain.QuerySpec) ListState {
	q = q.Normalize(e.defaultPageSize)
	res, err := e.FetchList(ctx, q)
	return ListState{
		Query: q,
		Items: res.Items,
		Total: res.Total,
		Error: Message(err),
		Kind:  KindOf(err),
	}
}

// CategoriesState is the category menu.
type CategoriesState struct {
	Categories []domain.Category `json:"categories"`
	Error      string            `json:"error,omitempty"`
	Kind       Kind              `json:"-"`
}

// Categories runs FetchCategories and folds the outcome into a CategoriesState.
func (e *Engine) Categories(ctx context.Context) CategoriesState {
	cats, err := e.FetchCategories(ctx)
	if cats == nil {
		cats = []domain.Category{}
	}
	return CategoriesState{
		Categories: cats,
		Error:      Message(err),
		Kind:       KindOf(err),
	}
}

// ProductState is the detail view of one product. Product is nil whenever
// Error is set.
type ProductState struct {
	Product  *domain.Product `json:"product,omitempty"`
	NotFound bool            `json:"not_found,omitempty"`
	Error    string          `json:"error,omitempty"`
	Kind     Kind            `json:"-"`
}

// Product runs FetchByID and folds the outcome into a ProductState.
func (e *Engine) Product(ctx context.Context, id string) ProductState {
	p, err := e.FetchByID(ctx, id)
	if err != nil {
		return ProductState{
			NotFound: KindOf(err) == KindNotFound,
			Error:    Message(err),
			Kind:     KindOf(err),
		}
	}
	return ProductState{Product: p}
}
