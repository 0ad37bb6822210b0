package catalog

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/donaldgifford/catalog-browser/internal/metrics"
	"github.com/donaldgifford/catalog-browser/internal/upstream"
	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

// PlatziCategories is the category allow-list for the platzi dialect.
var PlatziCategories = []string{
	"clothes",
	"electronics",
	"shoes",
	"furniture",
	"others",
	"miscellaneous",
}

// DummyJSONCategories is the category allow-list for the dummyjson dialect.
var DummyJSONCategories = []string{
	"beauty", "fragrances", "furniture", "groceries", "home-decoration",
	"kitchen-accessories", "laptops", "mens-shirts", "mens-shoes", "mens-watches",
	"mobile-accessories", "motorcycle", "skin-care", "smartphones",
	"sports-accessories", "sunglasses", "tablets", "tops", "vehicle",
	"womens-bags", "womens-dresses", "womens-jewellery", "womens-shoes",
	"womens-watches",
}

// DefaultAllowedCategories returns the allow-list for a dialect.
func DefaultAllowedCategories(d upstream.Dialect) []string {
	if d == upstream.DialectPlatzi {
		return slices.Clone(PlatziCategories)
	}
	return slices.Clone(DummyJSONCategories)
}

// Normalizer turns raw upstream category records into allow-listed,
// deduplicated, label-sorted categories. It holds no mutable state.
type Normalizer struct {
	allowed map[string]struct{}
	locale  language.Tag
}

// NewNormalizer creates a Normalizer. An empty allow-list, or one holding
// only "*", admits every slug.
// An unparseable locale falls back to English.
func NewNormalizer(allowed []string, locale string) *Normalizer {
	n := &Normalizer{
		allowed: make(map[string]struct{}, len(allowed)),
		locale:  language.English,
	}
	for _, s := range allowed {
		if s = normalizeSlug(s); s != "" && s != "*" {
			n.allowed[s] = struct{}{}
		}
	}
	if tag, err := language.Parse(locale); err == nil {
		n.locale = tag
	}
	return n
}

// Allows reports whether slug is on the allow-list.
func (n *Normalizer) Allows(slug string) bool {
	if len(n.allowed) == 0 {
		return true
	}
	_, ok := n.allowed[normalizeSlug(slug)]
	return ok
}

// Normalize never fails: records that cannot be interpreted are dropped.
// Duplicates by id keep the first occurrence.
func (n *Normalizer) Normalize(raws []domain.RawCategory) []domain.Category {
	out := make([]domain.Category, 0, len(raws))
	seen := make(map[int64]struct{}, len(raws))

	for _, raw := range raws {
		c, ok := n.normalizeOne(raw)
		if !ok {
			metrics.CategoriesDiscardedTotal.Inc()
			continue
		}
		if _, dup := seen[c.ID]; dup {
			metrics.CategoriesDiscardedTotal.Inc()
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}

	// Collators keep internal buffers, so one is built per call.
	col := collate.New(n.locale)
	slices.SortStableFunc(out, func(a, b domain.Category) int {
		return col.CompareString(a.Label, b.Label)
	})
	return out
}

func (n *Normalizer) normalizeOne(raw domain.RawCategory) (domain.Category, bool) {
	if raw == nil {
		return domain.Category{}, false
	}

	id, ok := parseID(raw["id"])
	if !ok {
		return domain.Category{}, false
	}

	slug := normalizeSlug(scalarString(raw["slug"]))
	if slug == "" || !n.Allows(slug) {
		return domain.Category{}, false
	}

	label := strings.TrimSpace(scalarString(raw["name"]))
	if label == "" {
		label = strings.TrimSpace(scalarString(raw["label"]))
	}
	if label == "" {
		label = slug
	}

	return domain.Category{ID: id, Slug: slug, Label: label}, true
}

func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// parseID accepts any finite number, including numeric strings, and
// truncates it to an integer.
func parseID(v any) (int64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		return int64(x), true
	case int64:
		return x, true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, true
		}
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	case int:
		return strconv.Itoa(x)
	default:
		return ""
	}
}
