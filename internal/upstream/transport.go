package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/catalog-browser/internal/metrics"
)

const instrumentationName = "github.com/donaldgifford/catalog-browser/internal/upstream"

// transport is the JSON-over-HTTP core shared by the dialect clients.
type transport struct {
	dialect     Dialect
	baseURL     string
	client      *http.Client
	rateLimiter *RateLimiter
	logger      *slog.Logger
	tracer      trace.Tracer
	duration    metric.Float64Histogram
}

// Option configures a gateway client.
type Option func(*transport)

// WithBaseURL overrides the dialect's default API root.
func WithBaseURL(u string) Option {
	return func(t *transport) {
		t.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(t *transport) {
		t.client = hc
	}
}

// WithRateLimiter injects a rate limiter. When set, every call goes through
// Wait() first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(t *transport) {
		t.rateLimiter = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *transport) {
		t.logger = l
	}
}

func newTransport(dialect Dialect, baseURL string, opts ...Option) transport {
	t := transport{
		dialect: dialect,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  slog.Default(),
		tracer:  otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(&t)
	}

	// Creation only fails for invalid instrument names.
	t.duration, _ = otel.Meter(instrumentationName).Float64Histogram(
		"upstream.call.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of upstream catalog API calls."),
	)
	return t
}

// getJSON performs one GET and decodes a 2xx body into dst. It records a
// span and call metrics labeled with op.
func (t *transport) getJSON(
	ctx context.Context,
	op, path string,
	query url.Values,
	dst any,
) error {
	ctx, span := t.tracer.Start(ctx, "upstream."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("upstream.dialect", string(t.dialect)),
			attribute.String("upstream.path", path),
		),
	)
	defer span.End()

	start := time.Now()
	err := t.do(ctx, op, path, query, dst)
	elapsed := time.Since(start)

	metrics.UpstreamCallDuration.WithLabelValues(op).Observe(elapsed.Seconds())
	metrics.UpstreamCallsTotal.WithLabelValues(op, outcome(err)).Inc()
	t.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("upstream.op", op),
		attribute.String("upstream.outcome", outcome(err)),
	))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		t.logger.DebugContext(ctx, "upstream call failed",
			"op", op,
			"path", path,
			"duration_ms", elapsed.Milliseconds(),
			"err", err,
		)
		return err
	}

	t.logger.DebugContext(ctx, "upstream call",
		"op", op,
		"path", path,
		"duration_ms", elapsed.Milliseconds(),
	)
	return nil
}

func (t *transport) do(
	ctx context.Context,
	op, path string,
	query url.Values,
	dst any,
) error {
	if t.rateLimiter != nil {
		if err := t.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	u := t.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("%s: creating HTTP request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w: reading response body: %w", op, ErrUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{Op: op, Status: resp.StatusCode, Message: errorMessage(body)}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrBadResponse, err)
	}
	return nil
}

func outcome(err error) string {
	var se *StatusError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &se):
		return "status_" + fmt.Sprint(se.Status)
	case errors.Is(err, ErrBadResponse):
		return "bad_response"
	default:
		return "unavailable"
	}
}
