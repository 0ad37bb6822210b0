// Package main implements a mock dummyjson-style catalog API for local
// development. It serves products from a JSON fixture and answers the list,
// search, category and single-product endpoints catalogd calls.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultLimit = 30

type fixtureFile struct {
	Products []json.RawMessage `json:"products"`
}

type listResponse struct {
	Products []json.RawMessage `json:"products"`
	Total    int               `json:"total"`
	Skip     int               `json:"skip"`
	Limit    int               `json:"limit"`
}

// item is a fixture product with the fields the server filters on.
type item struct {
	raw      json.RawMessage
	id       int
	title    string
	category string
}

type catalog struct {
	items      []item
	categories []string
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixturePath := flag.String("fixture", "tools/mock-upstream/testdata/products.json", "path to products fixture")
	latency := flag.Duration("latency", 0, "artificial delay added to every response")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cat, err := loadFixture(*fixturePath)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixturePath, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(cat.items), "categories", len(cat.categories))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock catalog server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, *latency, newMux(logger, cat)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second + *latency,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f fixtureFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	cat := &catalog{items: make([]item, 0, len(f.Products))}
	seen := make(map[string]bool)
	for i, raw := range f.Products {
		var p struct {
			ID       int    `json:"id"`
			Title    string `json:"title"`
			Category string `json:"category"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("parsing fixture product %d: %w", i, err)
		}
		cat.items = append(cat.items, item{
			raw:      raw,
			id:       p.ID,
			title:    strings.ToLower(p.Title),
			category: p.Category,
		})
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			cat.categories = append(cat.categories, p.Category)
		}
	}
	return cat, nil
}

func newMux(logger *slog.Logger, cat *catalog) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", listHandler(logger, cat, func(*http.Request, item) bool { return true }))
	mux.HandleFunc("GET /products/search", listHandler(logger, cat, func(r *http.Request, it item) bool {
		return strings.Contains(it.title, strings.ToLower(r.URL.Query().Get("q")))
	}))
	mux.HandleFunc("GET /products/category/{slug}", listHandler(logger, cat, func(r *http.Request, it item) bool {
		return it.category == r.PathValue("slug")
	}))
	mux.HandleFunc("GET /products/category-list", categoryListHandler(cat))
	mux.HandleFunc("GET /products/{id}", productHandler(cat))
	return mux
}

func requestLogger(logger *slog.Logger, latency time.Duration, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		if latency > 0 {
			time.Sleep(latency)
		}
		next.ServeHTTP(w, r)
	})
}

func listHandler(
	logger *slog.Logger,
	cat *catalog,
	match func(*http.Request, item) bool,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit", defaultLimit)
		if limit <= 0 {
			limit = len(cat.items)
		}
		skip := max(queryInt(r, "skip", 0), 0)

		var matched []json.RawMessage
		for _, it := range cat.items {
			if match(r, it) {
				matched = append(matched, it.raw)
			}
		}
		total := len(matched)

		if skip >= len(matched) {
			matched = []json.RawMessage{}
		} else {
			matched = matched[skip:min(skip+limit, len(matched))]
		}

		writeJSON(w, http.StatusOK, listResponse{
			Products: matched,
			Total:    total,
			Skip:     skip,
			Limit:    limit,
		})
		logger.Info("list", "path", r.URL.Path, "matched", total, "returned", len(matched), "skip", skip, "limit", limit)
	}
}

func categoryListHandler(cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, cat.categories)
	}
}

func productHandler(cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := r.PathValue("id")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"message": fmt.Sprintf("Invalid product id '%s'", idStr),
			})
			return
		}
		for _, it := range cat.items {
			if it.id == id {
				writeJSON(w, http.StatusOK, it.raw)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{
			"message": fmt.Sprintf("Product with id '%d' not found", id),
		})
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}
