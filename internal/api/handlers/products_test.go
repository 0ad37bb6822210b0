package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/catalog-browser/internal/api/handlers"
	"github.com/donaldgifford/catalog-browser/internal/upstream"
	"github.com/donaldgifford/catalog-browser/internal/upstream/mocks"
	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

func TestProductsHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*testing.T, *mocks.MockGateway)
		wantStatus int
		wantBody   []string
		notInBody  []string
	}{
		{
			name: "unfiltered listing delegates paging",
			path: "/api/v1/products",
			setupMock: func(t *testing.T, m *mocks.MockGateway) {
				m.EXPECT().
					ListProducts(mock.Anything, 30, 0).
					Return(&upstream.Page{
						Products: []domain.Product{product(t, `{"id":1,"title":"Phone","price":9.5}`)},
						Total:    194,
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"total":194`, `"page":1`, `"page_size":30`, `"price":9.5`},
			notInBody:  []string{`"error"`},
		},
		{
			name: "page and page size are forwarded as skip",
			path: "/api/v1/products?page=3&page_size=10",
			setupMock: func(_ *testing.T, m *mocks.MockGateway) {
				m.EXPECT().
					ListProducts(mock.Anything, 10, 20).
					Return(&upstream.Page{Products: []domain.Product{}, Total: 0}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"page":3`, `"page_size":10`, `"items":[]`},
		},
		{
			name: "zero page falls back to defaults",
			path: "/api/v1/products?page=0&page_size=0",
			setupMock: func(_ *testing.T, m *mocks.MockGateway) {
				m.EXPECT().
					ListProducts(mock.Anything, 30, 0).
					Return(&upstream.Page{Products: []domain.Product{}, Total: 0}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"page":1`, `"page_size":30`},
		},
		{
			name: "text search filters by word prefix",
			path: "/api/v1/products?q=ph",
			setupMock: func(t *testing.T, m *mocks.MockGateway) {
				m.EXPECT().
					SearchProducts(mock.Anything, "ph", mock.Anything, 0).
					Return(&upstream.Page{
						Products: []domain.Product{
							product(t, `{"id":1,"title":"Smart Phone"}`),
							product(t, `{"id":2,"title":"Graphite Pencil"}`),
						},
						Total: 2,
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"total":1`, `"Smart Phone"`},
			notInBody:  []string{`"Graphite Pencil"`},
		},
		{
			name:       "unknown category yields an empty page",
			path:       "/api/v1/products?category=spaceships",
			setupMock:  func(*testing.T, *mocks.MockGateway) {},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"total":0`, `"items":[]`},
			notInBody:  []string{`"error"`},
		},
		{
			name: "upstream failure is an inline error",
			path: "/api/v1/products",
			setupMock: func(_ *testing.T, m *mocks.MockGateway) {
				m.EXPECT().
					ListProducts(mock.Anything, 30, 0).
					Return(nil, fmt.Errorf("dial: %w", upstream.ErrUnavailable)).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody: []string{
				`"items":[]`,
				`"total":0`,
				`"error":"Failed to load products: the catalog service is unavailable"`,
			},
		},
		{
			name:       "negative page is rejected",
			path:       "/api/v1/products?page=-1",
			setupMock:  func(*testing.T, *mocks.MockGateway) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "page above the maximum is rejected",
			path:       "/api/v1/products?page=4611686018427387906&page_size=2",
			setupMock:  func(*testing.T, *mocks.MockGateway) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "last allowed page past the end is empty",
			path: "/api/v1/products?q=ph&page=1000000&page_size=1000",
			setupMock: func(t *testing.T, m *mocks.MockGateway) {
				m.EXPECT().
					SearchProducts(mock.Anything, "ph", mock.Anything, 0).
					Return(&upstream.Page{
						Products: []domain.Product{product(t, `{"id":1,"title":"Smart Phone"}`)},
						Total:    1,
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"items":[]`, `"total":1`, `"page":1000000`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gw := newGateway(t)
			tt.setupMock(t, gw)
			h := handlers.NewProductsHandler(newEngine(gw))

			_, api := humatest.New(t)
			handlers.RegisterProductRoutes(api, h)

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
			for _, unwanted := range tt.notInBody {
				assert.NotContains(t, resp.Body.String(), unwanted)
			}
		})
	}
}

func TestProductsHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setupMock  func(*testing.T, *mocks.MockGateway)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			id:   "7",
			setupMock: func(t *testing.T, m *mocks.MockGateway) {
				m.EXPECT().
					GetProduct(mock.Anything, domain.ParseProductRef("7")).
					Return(productPtr(t, `{"id":7,"title":"Lamp","brand":"Acme"}`), nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"product":{`,
		},
		{
			name: "non-numeric id is sent verbatim",
			id:   "abc-sku",
			setupMock: func(_ *testing.T, m *mocks.MockGateway) {
				m.EXPECT().
					GetProduct(mock.Anything, domain.ProductRef{Literal: "abc-sku"}).
					Return(nil, &upstream.StatusError{Status: http.StatusNotFound}).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `Product not found`,
		},
		{
			name: "upstream 500 is a bad gateway",
			id:   "9",
			setupMock: func(_ *testing.T, m *mocks.MockGateway) {
				m.EXPECT().
					GetProduct(mock.Anything, domain.ParseProductRef("9")).
					Return(nil, &upstream.StatusError{Status: http.StatusInternalServerError}).
					Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `status 500`,
		},
		{
			name: "malformed body is a bad gateway",
			id:   "10",
			setupMock: func(_ *testing.T, m *mocks.MockGateway) {
				m.EXPECT().
					GetProduct(mock.Anything, domain.ParseProductRef("10")).
					Return(nil, fmt.Errorf("decoding: %w", upstream.ErrBadResponse)).
					Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `invalid response`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gw := newGateway(t)
			tt.setupMock(t, gw)
			h := handlers.NewProductsHandler(newEngine(gw))

			_, api := humatest.New(t)
			handlers.RegisterProductRoutes(api, h)

			resp := api.Get("/api/v1/products/" + tt.id)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestProductsHandler_GetPassesUpstreamFields(t *testing.T) {
	t.Parallel()

	gw := newGateway(t)
	gw.EXPECT().
		GetProduct(mock.Anything, domain.ParseProductRef("7")).
		Return(productPtr(t, `{"id":7,"title":"Lamp","brand":"Acme","tags":["a","b"]}`), nil).
		Once()

	_, api := humatest.New(t)
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(newEngine(gw)))

	resp := api.Get("/api/v1/products/7")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"brand":"Acme"`)
	assert.Contains(t, resp.Body.String(), `"tags":["a","b"]`)
}

func TestProductsHandler_GetBlankID(t *testing.T) {
	t.Parallel()

	h := handlers.NewProductsHandler(newEngine(newGateway(t)))

	out, err := h.GetProduct(context.Background(), &handlers.GetProductInput{ID: "  "})
	require.Error(t, err)
	assert.Nil(t, out)

	var se huma.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.GetStatus())
	assert.Contains(t, err.Error(), "product id is required")
}
