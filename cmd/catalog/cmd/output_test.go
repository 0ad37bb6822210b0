package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

func decodeProduct(t *testing.T, raw string) domain.Product {
	t.Helper()
	var p domain.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func TestCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "slug string", raw: `{"id":1,"category":"beauty"}`, want: "beauty"},
		{name: "nested with slug", raw: `{"id":1,"category":{"id":2,"name":"Shoes","slug":"shoes"}}`, want: "shoes"},
		{name: "nested with name only", raw: `{"id":1,"category":{"id":2,"name":"Shoes"}}`, want: "Shoes"},
		{name: "missing", raw: `{"id":1}`, want: "-"},
		{name: "unusable", raw: `{"id":1,"category":42}`, want: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := decodeProduct(t, tt.raw)
			assert.Equal(t, tt.want, category(&p))
		})
	}
}

func TestPageCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total, pageSize, want int
	}{
		{total: 0, pageSize: 30, want: 1},
		{total: 30, pageSize: 30, want: 1},
		{total: 31, pageSize: 30, want: 2},
		{total: 10, pageSize: 0, want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pageCount(tt.total, tt.pageSize))
	}
}

func TestPrintProductsTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := printProductsTable(&buf, []domain.Product{
		decodeProduct(t, `{"id":1,"title":"Essence Mascara","price":9.99,"category":"beauty"}`),
		decodeProduct(t, `{"id":2,"title":"No Price"}`),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Essence Mascara")
	assert.Contains(t, out, "$9.99")
	assert.Contains(t, out, "beauty")
	assert.Contains(t, out, "No Price")
}

func TestPrintProductDetail(t *testing.T) {
	t.Parallel()

	p := decodeProduct(t, `{"id":7,"title":"Lamp","price":12,"description":"Bright","brand":"Acme","stock":3}`)

	var buf bytes.Buffer
	require.NoError(t, printProductDetail(&buf, &p))

	out := buf.String()
	assert.Contains(t, out, "Lamp")
	assert.Contains(t, out, "$12.00")
	assert.Contains(t, out, "Bright")
	assert.Contains(t, out, `"Acme"`)
	assert.Contains(t, out, "stock:")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("brand:")), bytes.Index(buf.Bytes(), []byte("stock:")))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

// Command tests share viper's global state and run sequentially.
func TestProductsListCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		assert.Equal(t, "red shoe", r.URL.Query().Get("q"))
		assert.Equal(t, "shoes", r.URL.Query().Get("category"))
		_, _ = w.Write([]byte(`{"items":[{"id":3,"title":"Red Shoe","price":20}],"total":31,"page":1,"page_size":30}`))
	}))
	defer srv.Close()

	viper.Set("server", srv.URL)
	viper.Set("output", "table")
	t.Cleanup(viper.Reset)

	cmd := productsListCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--category", "shoes", "red", "shoe"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Page 1 of 2 (31 products)")
	assert.Contains(t, out.String(), "Red Shoe")
}

func TestProductsGetCommand_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Product not found"}`))
	}))
	defer srv.Close()

	viper.Set("server", srv.URL)
	t.Cleanup(viper.Reset)

	cmd := productsGetCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"999"})

	err := cmd.Execute()
	require.EqualError(t, err, `product "999" not found`)
}

func TestCategoriesCommand_JSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"categories":[{"id":1,"slug":"beauty","label":"Beauty"}]}`))
	}))
	defer srv.Close()

	viper.Set("server", srv.URL)
	viper.Set("output", "json")
	t.Cleanup(viper.Reset)

	cmd := categoriesCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"slug": "beauty"`)
}
