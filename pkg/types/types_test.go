package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        string
		wantID    int64
		wantTitle string
		wantErr   bool
	}{
		{name: "integer id", in: `{"id":5,"title":"Lamp"}`, wantID: 5, wantTitle: "Lamp"},
		{name: "float id", in: `{"id":5.0,"title":"Lamp"}`, wantID: 5, wantTitle: "Lamp"},
		{name: "string id", in: `{"id":" 12 ","title":"Desk"}`, wantID: 12, wantTitle: "Desk"},
		{name: "null title", in: `{"id":1,"title":null}`, wantID: 1},
		{name: "missing id", in: `{"title":"Orphan"}`, wantTitle: "Orphan"},
		{name: "bad id", in: `{"id":"abc"}`, wantErr: true},
		{name: "bad title", in: `{"id":1,"title":{}}`, wantErr: true},
		{name: "not an object", in: `[1,2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var p Product
			err := json.Unmarshal([]byte(tt.in), &p)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, p.ID)
			assert.Equal(t, tt.wantTitle, p.Title)
		})
	}
}

func TestProduct_PassesFieldsThrough(t *testing.T) {
	t.Parallel()

	in := `{"id":3,"title":"Mascara","price":9.99,"brand":"Essence","tags":["beauty"],"meta":{"barcode":"123"}}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(in), &p))

	assert.Equal(t, "Essence", p.String("brand"))
	assert.Empty(t, p.String("price"))
	assert.Empty(t, p.String("missing"))

	price, ok := p.Float("price")
	assert.True(t, ok)
	assert.InDelta(t, 9.99, price, 0.0001)
	_, ok = p.Float("brand")
	assert.False(t, ok)

	raw, ok := p.Field("tags")
	require.True(t, ok)
	assert.JSONEq(t, `["beauty"]`, string(raw))

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))

	fields := p.Fields()
	delete(fields, "brand")
	assert.Equal(t, "Essence", p.String("brand"))
}

func TestProduct_MarshalWithoutUpstreamFields(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(Product{ID: 9, Title: "Local"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9,"title":"Local"}`, string(out))
}

func TestQuerySpec_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		in              QuerySpec
		defaultPageSize int
		want            QuerySpec
	}{
		{
			name: "zero value",
			in:   QuerySpec{},
			want: QuerySpec{Page: 1, PageSize: 30},
		},
		{
			name:            "configured default page size",
			in:              QuerySpec{Page: 3},
			defaultPageSize: 12,
			want:            QuerySpec{Page: 3, PageSize: 12},
		},
		{
			name: "negative values coerced",
			in:   QuerySpec{Page: -1, PageSize: -10},
			want: QuerySpec{Page: 1, PageSize: 30},
		},
		{
			name: "text and category trimmed",
			in:   QuerySpec{Text: "  red shoes ", Category: " 4 ", Page: 2, PageSize: 5},
			want: QuerySpec{Text: "red shoes", Category: "4", Page: 2, PageSize: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.Normalize(tt.defaultPageSize))
		})
	}
}

func TestQuerySpec_Skip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   QuerySpec
		want int
	}{
		{name: "first page", in: QuerySpec{Page: 1, PageSize: 30}, want: 0},
		{name: "third page", in: QuerySpec{Page: 3, PageSize: 30}, want: 60},
		{name: "unnormalized page", in: QuerySpec{Page: 0, PageSize: 30}, want: 0},
		{name: "unnormalized page size", in: QuerySpec{Page: 4, PageSize: 0}, want: 0},
		{name: "largest exact product", in: QuerySpec{Page: math.MaxInt/2 + 1, PageSize: 2}, want: math.MaxInt - 1},
		{name: "overflow saturates", in: QuerySpec{Page: math.MaxInt/2 + 2, PageSize: 2}, want: math.MaxInt},
		{name: "max page", in: QuerySpec{Page: math.MaxInt, PageSize: 30}, want: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.Skip())
		})
	}
}

func TestEmptyResult(t *testing.T) {
	t.Parallel()

	res := EmptyResult()
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
	assert.Zero(t, res.Total)

	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"total":0}`, string(out))
}

func TestParseProductRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in          string
		wantNumeric bool
		wantString  string
		wantZero    bool
	}{
		{in: "42", wantNumeric: true, wantString: "42"},
		{in: " 42 ", wantNumeric: true, wantString: "42"},
		{in: "4.50", wantNumeric: true, wantString: "4.5"},
		{in: "1e3", wantNumeric: true, wantString: "1000"},
		{in: "abc-sku", wantString: "abc-sku"},
		{in: "Inf", wantString: "Inf"},
		{in: "NaN", wantString: "NaN"},
		{in: "", wantString: "", wantZero: true},
		{in: "  ", wantString: "  ", wantZero: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			ref := ParseProductRef(tt.in)
			assert.Equal(t, tt.wantNumeric, ref.Numeric)
			assert.Equal(t, tt.wantString, ref.String())
			assert.Equal(t, tt.wantZero, ref.IsZero())
			assert.Equal(t, tt.in, ref.Literal)
		})
	}
}
