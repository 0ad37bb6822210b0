package upstream

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/donaldgifford/catalog-browser/internal/metrics"
)

// ErrDailyBudgetExhausted is returned when the daily upstream call budget
// has been used up.
var ErrDailyBudgetExhausted = errors.New("daily upstream call budget exhausted")

// RateLimiter paces upstream calls with a token bucket and, optionally,
// caps them per rolling 24-hour window. A maxDaily of 0 disables the cap.
type RateLimiter struct {
	limiter  *rate.Limiter
	daily    atomic.Int64
	maxDaily int64
	resetAt  time.Time
	mu       sync.Mutex
	nowFunc  func() time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a rate limiter allowing perSecond calls with the
// given burst, and at most maxDaily calls per window.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(24 * time.Hour)
	return r
}

// Wait blocks until a call is allowed or ctx is done. Both a canceled
// context and an exhausted budget are reported as ErrUnavailable.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.checkWindow()

	if r.maxDaily > 0 && r.daily.Load() >= r.maxDaily {
		metrics.UpstreamDailyLimitHits.Inc()
		return fmt.Errorf("%w: %w (%d/%d)",
			ErrUnavailable, ErrDailyBudgetExhausted, r.daily.Load(), r.maxDaily)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter wait: %w", ErrUnavailable, err)
	}

	metrics.UpstreamDailyUsage.Set(float64(r.daily.Add(1)))
	return nil
}

// DailyCount returns the number of calls made in the current window.
func (r *RateLimiter) DailyCount() int64 {
	return r.daily.Load()
}

// Remaining returns the calls left in the current window, or -1 when the
// daily cap is disabled.
func (r *RateLimiter) Remaining() int64 {
	if r.maxDaily <= 0 {
		return -1
	}
	return max(r.maxDaily-r.daily.Load(), 0)
}

// ResetAt returns when the current window expires.
func (r *RateLimiter) ResetAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetAt
}

func (r *RateLimiter) checkWindow() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.daily.Store(0)
		r.resetAt = now.Add(24 * time.Hour)
	}
}
