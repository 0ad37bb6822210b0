package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListCategories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListCategories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestClient_ListProducts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    *ListProductsParams
		wantQuery string
	}{
		{name: "no params", params: nil, wantQuery: ""},
		{name: "zero values omitted", params: &ListProductsParams{}, wantQuery: ""},
		{
			name:      "all params",
			params:    &ListProductsParams{Query: "red shoe", Category: "shoes", Page: 2, PageSize: 10},
			wantQuery: "category=shoes&page=2&page_size=10&q=red+shoe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/products", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"items":[{"id":1,"title":"Red Shoe","price":20}],"total":11,"page":2,"page_size":10}`))
			}))
			defer srv.Close()

			resp, err := New(srv.URL).ListProducts(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, 11, resp.Total)
			require.Len(t, resp.Items, 1)
			assert.Equal(t, "Red Shoe", resp.Items[0].Title)

			price, ok := resp.Items[0].Float("price")
			require.True(t, ok)
			assert.InDelta(t, 20.0, price, 0)
		})
	}
}

func TestClient_ListProducts_InlineError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"total":0,"page":1,"page_size":30,"error":"Failed to load products: the catalog service is unavailable"}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).ListProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.NotNil(t, resp.Items)
	assert.Contains(t, resp.Error, "unavailable")
}

func TestClient_GetProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		id        string
		status    int
		body      string
		wantPath  string
		wantErr   error
		wantTitle string
	}{
		{
			name:      "found",
			id:        "7",
			status:    http.StatusOK,
			body:      `{"product":{"id":7,"title":"Lamp"}}`,
			wantPath:  "/api/v1/products/7",
			wantTitle: "Lamp",
		},
		{
			name:     "id is path escaped",
			id:       "a/b",
			status:   http.StatusNotFound,
			body:     `{"detail":"Product not found"}`,
			wantPath: "/api/v1/products/a%2Fb",
			wantErr:  ErrNotFound,
		},
		{
			name:     "missing product body",
			id:       "8",
			status:   http.StatusOK,
			body:     `{}`,
			wantPath: "/api/v1/products/8",
			wantErr:  ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.EscapedPath())
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p, err := New(srv.URL).GetProduct(context.Background(), tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, p.Title)
		})
	}
}

func TestClient_GetProduct_BadGateway(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail":"Failed to load product: the catalog service returned status 500"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetProduct(context.Background(), "9")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestClient_ListCategories(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/categories", r.URL.Path)
		_, _ = w.Write([]byte(`{"categories":[{"id":1,"slug":"beauty","label":"Beauty"}]}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Categories, 1)
	assert.Equal(t, "beauty", resp.Categories[0].Slug)
	assert.Empty(t, resp.Error)
}
