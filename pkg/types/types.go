// Package domain defines the core catalog types shared by the query engine,
// the upstream gateways and the HTTP API.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"
)

// DefaultPage and DefaultPageSize are applied when a QuerySpec carries a
// page or page size below 1.
const (
	DefaultPage     = 1
	DefaultPageSize = 30
)

// Product is an upstream catalog item. Only ID and Title are interpreted;
// every other upstream field is kept verbatim and re-emitted on encode.
type Product struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`

	raw map[string]json.RawMessage
}

// UnmarshalJSON decodes id and title and retains all other fields.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding product: %w", err)
	}

	var out Product
	if v, ok := raw["id"]; ok {
		id, err := parseJSONInt(v)
		if err != nil {
			return fmt.Errorf("decoding product id: %w", err)
		}
		out.ID = id
	}
	if v, ok := raw["title"]; ok && !isJSONNull(v) {
		if err := json.Unmarshal(v, &out.Title); err != nil {
			return fmt.Errorf("decoding product title: %w", err)
		}
	}
	out.raw = raw

	*p = out
	return nil
}

// MarshalJSON emits the upstream fields unchanged, with id and title taken
// from the struct.
func (p Product) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.raw)+2)
	for k, v := range p.raw {
		out[k] = v
	}
	out["id"] = p.ID
	out["title"] = p.Title
	return json.Marshal(out)
}

// Field returns the raw JSON of an upstream field.
func (p *Product) Field(name string) (json.RawMessage, bool) {
	v, ok := p.raw[name]
	return v, ok
}

// String returns an upstream string field, or "" when absent or not a string.
func (p *Product) String(name string) string {
	v, ok := p.raw[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}

// Float returns an upstream numeric field.
func (p *Product) Float(name string) (float64, bool) {
	v, ok := p.raw[name]
	if !ok {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		return 0, false
	}
	return f, true
}

// Fields returns a copy of the upstream fields.
func (p *Product) Fields() map[string]json.RawMessage {
	return maps.Clone(p.raw)
}

// Category is a normalized, allow-listed upstream category.
type Category struct {
	ID    int64  `json:"id"`
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

// RawCategory is an upstream category record as decoded JSON. Field types
// are not trusted; see catalog.Normalizer.
type RawCategory map[string]any

// QuerySpec describes one logical list request.
type QuerySpec struct {
	Text     string `json:"q,omitempty"`
	Category string `json:"category,omitempty"` // slug or numeric id
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// Normalize trims text and category and coerces page and page size below 1
// to the defaults. A defaultPageSize below 1 falls back to DefaultPageSize.
func (q QuerySpec) Normalize(defaultPageSize int) QuerySpec {
	if defaultPageSize < 1 {
		defaultPageSize = DefaultPageSize
	}
	q.Text = strings.TrimSpace(q.Text)
	q.Category = strings.TrimSpace(q.Category)
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	return q
}

// Skip returns the number of candidates preceding the requested page. It
// saturates at math.MaxInt instead of overflowing.
func (q QuerySpec) Skip() int {
	if q.Page < 2 || q.PageSize < 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.PageSize {
		return math.MaxInt
	}
	return (q.Page - 1) * q.PageSize
}

// QueryResult is one page of a filtered candidate set. Total is the size of
// the whole filtered set.
type QueryResult struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
}

// EmptyResult returns a result with no items and a zero total.
func EmptyResult() QueryResult {
	return QueryResult{Items: []Product{}, Total: 0}
}

// ProductRef identifies a single product. When the original identifier
// parses as a finite number it is sent in numeric form.
type ProductRef struct {
	Literal string
	Number  float64
	Numeric bool
}

// ParseProductRef normalizes a product identifier.
func ParseProductRef(id string) ProductRef {
	trimmed := strings.TrimSpace(id)
	if trimmed != "" {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return ProductRef{Literal: id, Number: f, Numeric: true}
		}
	}
	return ProductRef{Literal: id}
}

// String returns the form sent upstream.
func (r ProductRef) String() string {
	if r.Numeric {
		return strconv.FormatFloat(r.Number, 'f', -1, 64)
	}
	return r.Literal
}

// IsZero reports whether the reference carries no identifier.
func (r ProductRef) IsZero() bool {
	return !r.Numeric && strings.TrimSpace(r.Literal) == ""
}

func parseJSONInt(v json.RawMessage) (int64, error) {
	if isJSONNull(v) {
		return 0, nil
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(v))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		var s string
		if json.Unmarshal(v, &s) != nil {
			return 0, err
		}
		n = json.Number(strings.TrimSpace(s))
	}
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

func isJSONNull(v json.RawMessage) bool {
	return len(bytes.TrimSpace(v)) == 0 || bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
