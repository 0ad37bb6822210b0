package catalog

import domain "github.com/donaldgifford/catalog-browser/pkg/types"

// Slice returns items[skip:skip+pageSize] clipped to the bounds of items.
// The result is never nil and is empty when skip is past the end.
func Slice[T any](items []T, skip, pageSize int) []T {
	skip = max(skip, 0)
	if pageSize < 1 || skip >= len(items) {
		return []T{}
	}
	end := min(skip+pageSize, len(items))
	out := make([]T, end-skip)
	copy(out, items[skip:end])
	return out
}

func filterProducts(items []domain.Product, match Matcher) []domain.Product {
	out := make([]domain.Product, 0, len(items))
	for i := range items {
		if match(items[i].Title) {
			out = append(out, items[i])
		}
	}
	return out
}
