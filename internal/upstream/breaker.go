package upstream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/donaldgifford/catalog-browser/internal/metrics"
	domain "github.com/donaldgifford/catalog-browser/pkg/types"
)

// BreakerConfig holds circuit breaker settings.
type BreakerConfig struct {
	// Name identifies the breaker in metrics and logs.
	Name string

	// MaxRequests is the number of trial calls allowed while half-open.
	MaxRequests uint32

	// Interval clears failure counts while closed. 0 never clears.
	Interval time.Duration

	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration

	// FailureRatio trips the breaker once MinRequests have been seen.
	FailureRatio float64
	MinRequests  uint32
}

// DefaultBreakerConfig returns the default breaker settings.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:         name,
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.5,
		MinRequests:  5,
	}
}

// BreakerGateway decorates a Gateway with a circuit breaker. Only transport
// failures and 5xx responses count against the upstream; calls abandoned by
// the caller do not. An open breaker is reported as ErrUnavailable.
type BreakerGateway struct {
	next    Gateway
	breaker *gobreaker.CircuitBreaker[any]
}

var _ Gateway = (*BreakerGateway)(nil)

// NewBreakerGateway wraps next with a circuit breaker.
func NewBreakerGateway(next Gateway, cfg BreakerConfig, logger *slog.Logger) *BreakerGateway {
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		IsSuccessful: countsAsSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("upstream circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
			metrics.UpstreamBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	}

	metrics.UpstreamBreakerState.WithLabelValues(cfg.Name).Set(0)

	return &BreakerGateway{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[any](settings),
	}
}

// State returns the current breaker state.
func (b *BreakerGateway) State() gobreaker.State {
	return b.breaker.State()
}

// ListProducts implements Gateway.
func (b *BreakerGateway) ListProducts(ctx context.Context, limit, skip int) (*Page, error) {
	return guarded(b, func() (*Page, error) {
		return b.next.ListProducts(ctx, limit, skip)
	})
}

// ListProductsByCategory implements Gateway.
func (b *BreakerGateway) ListProductsByCategory(
	ctx context.Context,
	category CategoryRef,
	limit, skip int,
) (*Page, error) {
	return guarded(b, func() (*Page, error) {
		return b.next.ListProductsByCategory(ctx, category, limit, skip)
	})
}

// SearchProducts implements Gateway.
func (b *BreakerGateway) SearchProducts(
	ctx context.Context,
	text string,
	limit, skip int,
) (*Page, error) {
	return guarded(b, func() (*Page, error) {
		return b.next.SearchProducts(ctx, text, limit, skip)
	})
}

// ListCategories implements Gateway.
func (b *BreakerGateway) ListCategories(ctx context.Context) ([]domain.RawCategory, error) {
	return guarded(b, func() ([]domain.RawCategory, error) {
		return b.next.ListCategories(ctx)
	})
}

// GetProduct implements Gateway.
func (b *BreakerGateway) GetProduct(
	ctx context.Context,
	ref domain.ProductRef,
) (*domain.Product, error) {
	return guarded(b, func() (*domain.Product, error) {
		return b.next.GetProduct(ctx, ref)
	})
}

// CategoryKey implements Gateway.
func (b *BreakerGateway) CategoryKey() CategoryKey { return b.next.CategoryKey() }

// Dialect implements Gateway.
func (b *BreakerGateway) Dialect() Dialect { return b.next.Dialect() }

func guarded[T any](b *BreakerGateway, fn func() (T, error)) (T, error) {
	var zero T

	v, err := b.breaker.Execute(func() (any, error) {
		return fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return zero, fmt.Errorf("%w: circuit breaker %q: %w", ErrUnavailable, b.breaker.Name(), err)
	}
	if err != nil {
		return zero, err
	}

	out, ok := v.(T)
	if !ok {
		return zero, nil
	}
	return out, nil
}

func countsAsSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status < http.StatusInternalServerError
	}
	return !errors.Is(err, ErrUnavailable)
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
