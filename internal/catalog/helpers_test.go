package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/donaldgifford/catalog-browser/internal/upstream"
	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeGateway is an in-memory upstream. Search is a plain substring match
// so the engine's own filter has something to narrow.
type fakeGateway struct {
	dialect     upstream.Dialect
	key         upstream.CategoryKey
	reportTotal bool

	products   []domain.Product
	byCategory map[string][]domain.Product
	categories []domain.RawCategory

	mu    sync.Mutex
	calls []string
}

func newDummyGateway(products []domain.Product) *fakeGateway {
	return &fakeGateway{
		dialect:     upstream.DialectDummyJSON,
		key:         upstream.KeyBySlug,
		reportTotal: true,
		products:    products,
		byCategory:  map[string][]domain.Product{},
	}
}

func newPlatziGateway(products []domain.Product) *fakeGateway {
	return &fakeGateway{
		dialect:    upstream.DialectPlatzi,
		key:        upstream.KeyByID,
		products:   products,
		byCategory: map[string][]domain.Product{},
	}
}

func (f *fakeGateway) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeGateway) callsTo(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeGateway) page(items []domain.Product, limit, skip int) *upstream.Page {
	part := Slice(items, skip, limit)
	total := len(items)
	if !f.reportTotal {
		total = upstream.TotalUnknown
	}
	return &upstream.Page{
		Products: part,
		Total:    total,
		Skip:     skip,
		Limit:    limit,
		HasMore:  skip+len(part) < len(items),
	}
}

func (f *fakeGateway) ListProducts(_ context.Context, limit, skip int) (*upstream.Page, error) {
	f.record(fmt.Sprintf("list %d %d", limit, skip))
	return f.page(f.products, limit, skip), nil
}

func (f *fakeGateway) ListProductsByCategory(
	_ context.Context,
	category upstream.CategoryRef,
	limit, skip int,
) (*upstream.Page, error) {
	key := category.Slug
	if f.key == upstream.KeyByID {
		key = strconv.FormatInt(category.ID, 10)
	}
	f.record(fmt.Sprintf("category %s %d %d", key, limit, skip))
	return f.page(f.byCategory[key], limit, skip), nil
}

func (f *fakeGateway) SearchProducts(_ context.Context, text string, limit, skip int) (*upstream.Page, error) {
	f.record(fmt.Sprintf("search %s %d %d", text, limit, skip))
	var hits []domain.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Title), strings.ToLower(text)) {
			hits = append(hits, p)
		}
	}
	return f.page(hits, limit, skip), nil
}

func (f *fakeGateway) ListCategories(context.Context) ([]domain.RawCategory, error) {
	f.record("categories")
	return f.categories, nil
}

func (f *fakeGateway) GetProduct(_ context.Context, ref domain.ProductRef) (*domain.Product, error) {
	f.record("get " + ref.String())
	for i := range f.products {
		if strconv.FormatInt(f.products[i].ID, 10) == ref.String() {
			return &f.products[i], nil
		}
	}
	return nil, &upstream.StatusError{Op: "get_product", Status: 404, Message: "not found"}
}

func (f *fakeGateway) CategoryKey() upstream.CategoryKey { return f.key }

func (f *fakeGateway) Dialect() upstream.Dialect { return f.dialect }

func products(titles ...string) []domain.Product {
	out := make([]domain.Product, 0, len(titles))
	for i, t := range titles {
		out = append(out, domain.Product{ID: int64(i + 1), Title: t})
	}
	return out
}

func numbered(prefix string, n int) []domain.Product {
	titles := make([]string, n)
	for i := range titles {
		titles[i] = fmt.Sprintf("%s %03d", prefix, i+1)
	}
	return products(titles...)
}
