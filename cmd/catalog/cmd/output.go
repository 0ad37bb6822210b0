package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductsTable(w io.Writer, products []domain.Product) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTITLE\tPRICE\tCATEGORY\n")
	for i := range products {
		tw.writef("%d\t%s\t%s\t%s\n",
			products[i].ID,
			truncate(products[i].Title, 50),
			price(&products[i]),
			category(&products[i]),
		)
	}
	return tw.finish()
}

func printProductDetail(w io.Writer, p *domain.Product) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", p.ID)
	tw.writef("Title:\t%s\n", p.Title)
	tw.writef("Price:\t%s\n", price(p))
	tw.writef("Category:\t%s\n", category(p))
	if d := p.String("description"); d != "" {
		tw.writef("Description:\t%s\n", truncate(d, 120))
	}

	fields := p.Fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		switch k {
		case "id", "title", "price", "category", "description":
		default:
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		tw.writef("%s:\t%s\n", k, truncate(string(fields[k]), 80))
	}
	return tw.finish()
}

func printCategoriesTable(w io.Writer, cats []domain.Category) error {
	tw := newTabWriter(w)
	tw.writef("ID\tSLUG\tLABEL\n")
	for _, c := range cats {
		tw.writef("%d\t%s\t%s\n", c.ID, c.Slug, c.Label)
	}
	return tw.finish()
}

func price(p *domain.Product) string {
	if v, ok := p.Float("price"); ok {
		return fmt.Sprintf("$%.2f", v)
	}
	return "-"
}

// category reads a slug string (dummyjson) or a nested object with a name
// (platzi).
func category(p *domain.Product) string {
	if s := p.String("category"); s != "" {
		return s
	}
	raw, ok := p.Field("category")
	if !ok {
		return "-"
	}
	var nested struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil {
		if nested.Slug != "" {
			return nested.Slug
		}
		if nested.Name != "" {
			return nested.Name
		}
	}
	return "-"
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
