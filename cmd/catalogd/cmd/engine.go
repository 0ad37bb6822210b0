package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/catalog-browser/internal/catalog"
	"github.com/donaldgifford/catalog-browser/internal/config"
	"github.com/donaldgifford/catalog-browser/internal/upstream"
)

// newGateway builds the dialect client for cfg, rate limited and, unless
// disabled, behind a circuit breaker.
func newGateway(cfg *config.UpstreamConfig, log *slog.Logger) (upstream.Gateway, error) {
	opts := []upstream.Option{
		upstream.WithHTTPClient(&http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}),
		upstream.WithRateLimiter(upstream.NewRateLimiter(
			cfg.RateLimit.PerSecond,
			cfg.RateLimit.Burst,
			cfg.RateLimit.DailyLimit,
		)),
		upstream.WithLogger(log),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, upstream.WithBaseURL(cfg.BaseURL))
	}

	var gw upstream.Gateway
	switch cfg.Dialect {
	case config.DialectDummyJSON:
		gw = upstream.NewDummyJSONClient(opts...)
	case config.DialectPlatzi:
		gw = upstream.NewPlatziClient(opts...)
	default:
		return nil, fmt.Errorf("unknown upstream dialect %q", cfg.Dialect)
	}

	if cfg.Breaker.Disabled {
		return gw, nil
	}
	return upstream.NewBreakerGateway(gw, upstream.BreakerConfig{
		Name:         cfg.Dialect,
		MaxRequests:  cfg.Breaker.MaxRequests,
		Interval:     cfg.Breaker.Interval,
		Timeout:      cfg.Breaker.Timeout,
		FailureRatio: cfg.Breaker.FailureRatio,
		MinRequests:  cfg.Breaker.MinRequests,
	}, log), nil
}

// newEngine wires the query engine from configuration.
func newEngine(cfg *config.Config, log *slog.Logger) (*catalog.Engine, error) {
	gw, err := newGateway(&cfg.Upstream, log)
	if err != nil {
		return nil, err
	}

	allowed := cfg.Catalog.AllowedCategories
	if len(allowed) == 0 {
		allowed = catalog.DefaultAllowedCategories(gw.Dialect())
	}

	opts := []catalog.Option{
		catalog.WithLogger(log),
		catalog.WithDefaultPageSize(cfg.Catalog.DefaultPageSize),
		catalog.WithNormalizer(catalog.NewNormalizer(allowed, cfg.Catalog.Locale)),
		catalog.WithPaginator(upstream.NewPaginator(
			upstream.WithBatchSize(cfg.Upstream.FetchBatch),
			upstream.WithMaxPages(cfg.Upstream.MaxPages),
			upstream.WithPaginatorLogger(log),
		)),
	}

	if cfg.Catalog.MatchMode != "" {
		mode, err := catalog.ParseMatchMode(cfg.Catalog.MatchMode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, catalog.WithMatchMode(mode))
	}

	return catalog.New(gw, opts...), nil
}
