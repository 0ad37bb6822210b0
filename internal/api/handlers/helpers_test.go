package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/catalog-browser/internal/catalog"
	"github.com/donaldgifford/catalog-browser/internal/upstream"
	"github.com/donaldgifford/catalog-browser/internal/upstream/mocks"
	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

func newGateway(t *testing.T) *mocks.MockGateway {
	t.Helper()
	gw := mocks.NewMockGateway(t)
	gw.EXPECT().Dialect().Return(upstream.DialectDummyJSON).Maybe()
	gw.EXPECT().CategoryKey().Return(upstream.KeyBySlug).Maybe()
	return gw
}

func newEngine(gw upstream.Gateway) *catalog.Engine {
	return catalog.New(gw, catalog.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func product(t *testing.T, raw string) domain.Product {
	t.Helper()
	var p domain.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func productPtr(t *testing.T, raw string) *domain.Product {
	t.Helper()
	p := product(t, raw)
	return &p
}
