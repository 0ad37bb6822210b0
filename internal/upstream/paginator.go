package upstream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

const defaultBatchSize = 100

// ErrPageLimit is returned when an exhaustive fetch hits the configured page
// guard while the upstream still reports more results.
var ErrPageLimit = errors.New("page limit reached before upstream was exhausted")

// Stop reasons reported in FetchAllResult.StoppedAt.
const (
	StopNoMoreResults = "no_more_results"
	StopEmptyPage     = "empty_page"
)

// FetchFunc fetches one upstream page.
type FetchFunc func(ctx context.Context, limit, skip int) (*Page, error)

// Paginator walks upstream listings until they are exhausted.
type Paginator struct {
	logger    *slog.Logger
	batchSize int
	maxPages  int
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithBatchSize overrides the per-request limit.
func WithBatchSize(size int) PaginatorOption {
	return func(p *Paginator) {
		if size > 0 {
			p.batchSize = size
		}
	}
}

// WithMaxPages sets a guard on the number of requests per fetch. 0 means
// unlimited.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		p.maxPages = max(n, 0)
	}
}

// WithPaginatorLogger sets the logger.
func WithPaginatorLogger(l *slog.Logger) PaginatorOption {
	return func(p *Paginator) {
		p.logger = l
	}
}

// NewPaginator creates a new Paginator.
func NewPaginator(opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		logger:    slog.Default(),
		batchSize: defaultBatchSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FetchAllResult holds the outcome of an exhaustive fetch.
type FetchAllResult struct {
	Products  []domain.Product
	PagesUsed int
	StoppedAt string
}

// FetchAll calls fetch with advancing skip until the upstream reports no
// more results or returns an empty page. It never truncates silently: when
// the page guard is hit first, ErrPageLimit is returned.
func (p *Paginator) FetchAll(ctx context.Context, fetch FetchFunc) (*FetchAllResult, error) {
	result := &FetchAllResult{Products: []domain.Product{}}
	skip := 0

	for {
		if p.maxPages > 0 && result.PagesUsed >= p.maxPages {
			return nil, fmt.Errorf("%w (%d pages, %d items)",
				ErrPageLimit, result.PagesUsed, len(result.Products))
		}

		page, err := fetch(ctx, p.batchSize, skip)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", result.PagesUsed, err)
		}
		result.PagesUsed++

		if len(page.Products) == 0 {
			result.StoppedAt = StopEmptyPage
			break
		}

		result.Products = append(result.Products, page.Products...)
		skip += len(page.Products)

		if !page.HasMore {
			result.StoppedAt = StopNoMoreResults
			break
		}
	}

	p.logger.DebugContext(ctx, "exhaustive fetch complete",
		"items", len(result.Products),
		"pages", result.PagesUsed,
		"stopped_at", result.StoppedAt,
	)
	return result, nil
}
