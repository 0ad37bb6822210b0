// Package catalog implements the catalog query engine: it routes a QuerySpec
// to the upstream gateway, filters and paginates the candidates the upstream
// cannot filter itself, and normalizes categories.
package catalog

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/catalog-browser/internal/metrics"
	"github.com/donaldgifford/catalog-browser/internal/upstream"
	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

// Operation names carried by *Error.
const (
	opFetchList       = "fetch_list"
	opFetchCategories = "fetch_categories"
	opFetchProduct    = "fetch_product"
)

// Branch names the routing decision taken for a QuerySpec.
type Branch string

// Routing branches, in priority order.
const (
	BranchTextCategory Branch = "text_category"
	BranchText         Branch = "text"
	BranchCategory     Branch = "category"
	BranchAll          Branch = "all"
)

// Route returns the branch a normalized QuerySpec is served by.
func Route(q domain.QuerySpec) Branch {
	switch {
	case q.Text != "" && q.Category != "":
		return BranchTextCategory
	case q.Text != "":
		return BranchText
	case q.Category != "":
		return BranchCategory
	default:
		return BranchAll
	}
}

// Engine translates queries into gateway calls. It keeps no per-call state,
// so one Engine may serve concurrent callers.
type Engine struct {
	gateway         upstream.Gateway
	paginator       *upstream.Paginator
	normalizer      *Normalizer
	matchMode       MatchMode
	defaultPageSize int
	log             *slog.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithPaginator sets the paginator used for exhaustive fetches.
func WithPaginator(p *upstream.Paginator) Option {
	return func(e *Engine) {
		e.paginator = p
	}
}

// WithNormalizer sets the category normalizer.
func WithNormalizer(n *Normalizer) Option {
	return func(e *Engine) {
		e.normalizer = n
	}
}

// WithMatchMode overrides the dialect's default text match mode.
func WithMatchMode(m MatchMode) Option {
	return func(e *Engine) {
		if m != "" {
			e.matchMode = m
		}
	}
}

// WithDefaultPageSize sets the page size applied when a query carries none.
func WithDefaultPageSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.defaultPageSize = n
		}
	}
}

// New creates an Engine for gw. Unless overridden, the allow-list and match
// mode follow the gateway's dialect.
func New(gw upstream.Gateway, opts ...Option) *Engine {
	e := &Engine{
		gateway:         gw,
		matchMode:       DefaultMatchMode(gw.Dialect()),
		defaultPageSize: domain.DefaultPageSize,
		log:             slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.paginator == nil {
		e.paginator = upstream.NewPaginator(upstream.WithPaginatorLogger(e.log))
	}
	if e.normalizer == nil {
		e.normalizer = NewNormalizer(DefaultAllowedCategories(gw.Dialect()), "en")
	}
	return e
}

// FetchList serves one list query. It always returns a usable result: on
// failure the result is empty and the error is an *Error.
func (e *Engine) FetchList(ctx context.Context, q domain.QuerySpec) (domain.QueryResult, error) {
	start := time.Now()
	q = q.Normalize(e.defaultPageSize)
	branch := Route(q)

	res, err := e.fetchList(ctx, q, branch)

	elapsed := time.Since(start)
	metrics.QueriesTotal.WithLabelValues(string(branch)).Inc()
	metrics.QueryDuration.WithLabelValues(string(branch)).Observe(elapsed.Seconds())

	if err != nil {
		metrics.QueryErrorsTotal.WithLabelValues(string(KindOf(err))).Inc()
		e.log.WarnContext(ctx, "catalog query failed",
			"branch", branch,
			"page", q.Page,
			"page_size", q.PageSize,
			"error", err,
		)
		return domain.EmptyResult(), err
	}

	e.log.InfoContext(ctx, "catalog query",
		"branch", branch,
		"page", q.Page,
		"page_size", q.PageSize,
		"items", len(res.Items),
		"total", res.Total,
		"duration", elapsed,
	)
	return res, nil
}

func (e *Engine) fetchList(
	ctx context.Context,
	q domain.QuerySpec,
	branch Branch,
) (domain.QueryResult, error) {
	switch branch {
	case BranchTextCategory:
		ref, ok, err := e.resolveCategory(ctx, q.Category)
		if err != nil || !ok {
			return domain.EmptyResult(), err
		}
		return e.filtered(ctx, q, func(ctx context.Context, limit, skip int) (*upstream.Page, error) {
			return e.gateway.ListProductsByCategory(ctx, ref, limit, skip)
		})

	case BranchText:
		return e.filtered(ctx, q, func(ctx context.Context, limit, skip int) (*upstream.Page, error) {
			return e.gateway.SearchProducts(ctx, q.Text, limit, skip)
		})

	case BranchCategory:
		ref, ok, err := e.resolveCategory(ctx, q.Category)
		if err != nil || !ok {
			return domain.EmptyResult(), err
		}
		return e.delegated(ctx, q, func(ctx context.Context, limit, skip int) (*upstream.Page, error) {
			return e.gateway.ListProductsByCategory(ctx, ref, limit, skip)
		})

	default:
		return e.delegated(ctx, q, e.gateway.ListProducts)
	}
}

// filtered fetches the whole candidate set, applies the text filter and
// slices the requested page locally.
func (e *Engine) filtered(
	ctx context.Context,
	q domain.QuerySpec,
	fetch upstream.FetchFunc,
) (domain.QueryResult, error) {
	all, err := e.paginator.FetchAll(ctx, fetch)
	if err != nil {
		return domain.EmptyResult(), classify(opFetchList, err)
	}

	candidates := filterProducts(all.Products, NewMatcher(e.matchMode, q.Text))
	metrics.QueryCandidates.Observe(float64(len(candidates)))

	return domain.QueryResult{
		Items: Slice(candidates, q.Skip(), q.PageSize),
		Total: len(candidates),
	}, nil
}

// delegated passes limit and skip to the gateway. When the gateway does not
// report a total the candidate set is walked to count it.
func (e *Engine) delegated(
	ctx context.Context,
	q domain.QuerySpec,
	fetch upstream.FetchFunc,
) (domain.QueryResult, error) {
	skip := q.Skip()
	page, err := fetch(ctx, q.PageSize, skip)
	if err != nil {
		return domain.EmptyResult(), classify(opFetchList, err)
	}

	items := Slice(page.Products, 0, q.PageSize)

	switch {
	case page.Total != upstream.TotalUnknown:
		return domain.QueryResult{Items: items, Total: max(page.Total, 0)}, nil
	case !page.HasMore && (len(page.Products) > 0 || skip == 0):
		// Last page reached: everything before it was full.
		return domain.QueryResult{Items: items, Total: skip + len(page.Products)}, nil
	}

	all, err := e.paginator.FetchAll(ctx, fetch)
	if err != nil {
		return domain.EmptyResult(), classify(opFetchList, err)
	}
	return domain.QueryResult{
		Items: Slice(all.Products, skip, q.PageSize),
		Total: len(all.Products),
	}, nil
}

// resolveCategory turns a slug or numeric id into the key the gateway reads.
// ok is false when the category is unknown or not allow-listed.
func (e *Engine) resolveCategory(
	ctx context.Context,
	category string,
) (ref upstream.CategoryRef, ok bool, err error) {
	id, numErr := strconv.ParseInt(category, 10, 64)
	numeric := numErr == nil
	slug := normalizeSlug(category)

	switch e.gateway.CategoryKey() {
	case upstream.KeyByID:
		if numeric {
			return upstream.CategoryRef{ID: id}, true, nil
		}
	default:
		if !numeric {
			return upstream.CategoryRef{Slug: slug}, e.normalizer.Allows(slug), nil
		}
	}

	cats, err := e.categories(ctx)
	if err != nil {
		return upstream.CategoryRef{}, false, err
	}
	for _, c := range cats {
		if (numeric && c.ID == id) || (!numeric && strings.EqualFold(c.Slug, slug)) {
			return upstream.CategoryRef{ID: c.ID, Slug: c.Slug}, true, nil
		}
	}

	e.log.DebugContext(ctx, "unknown category", "category", category)
	return upstream.CategoryRef{}, false, nil
}

// FetchCategories returns the normalized, allow-listed category list.
func (e *Engine) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	cats, err := e.categories(ctx)
	if err != nil {
		metrics.QueryErrorsTotal.WithLabelValues(string(KindOf(err))).Inc()
		e.log.WarnContext(ctx, "fetching categories failed", "error", err)
		return []domain.Category{}, err
	}
	return cats, nil
}

func (e *Engine) categories(ctx context.Context) ([]domain.Category, error) {
	raws, err := e.gateway.ListCategories(ctx)
	if err != nil {
		return nil, classify(opFetchCategories, err)
	}
	return e.normalizer.Normalize(raws), nil
}

// FetchByID fetches one product. Identifiers that parse as finite numbers
// are sent in numeric form; anything else is sent verbatim.
func (e *Engine) FetchByID(ctx context.Context, id string) (*domain.Product, error) {
	ref := domain.ParseProductRef(id)
	if ref.IsZero() {
		return nil, invalidInput(opFetchProduct, "product id is required")
	}

	p, err := e.gateway.GetProduct(ctx, ref)
	if err != nil {
		cerr := classify(opFetchProduct, err)
		metrics.QueryErrorsTotal.WithLabelValues(string(cerr.Kind)).Inc()
		e.log.WarnContext(ctx, "fetching product failed",
			"id", ref.String(),
			"kind", cerr.Kind,
			"error", err,
		)
		return nil, cerr
	}
	if p == nil {
		return nil, &Error{Kind: KindNotFound, Op: opFetchProduct, Err: upstream.ErrBadResponse}
	}
	return p, nil
}
