// Package ratelimit throttles outbound webhook calls with a token bucket
// and an optional rolling daily quota.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily call quota is exhausted.
var ErrDailyLimitReached = errors.New("daily API limit reached")

// Limiter controls call rate and daily usage. A maxDaily of zero disables
// the quota.
type Limiter struct {
	limiter  *rate.Limiter
	daily    atomic.Int64
	maxDaily int64
	resetAt  time.Time
	mu       sync.Mutex
	nowFunc  func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(l *Limiter) {
		l.nowFunc = f
	}
}

// New creates a limiter allowing perSecond calls with the given burst. The
// daily quota window resets 24 hours after it starts.
func New(perSecond float64, burst int, maxDaily int64, opts ...Option) *Limiter {
	l := &Limiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.resetAt = l.nowFunc().Add(24 * time.Hour)
	return l
}

// Wait blocks until a call is allowed or ctx is canceled.
func (l *Limiter) Wait(ctx context.Context) error {
	l.checkDailyReset()

	if l.maxDaily > 0 && l.daily.Load() >= l.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, l.daily.Load(), l.maxDaily)
	}

	if err := l.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	l.daily.Add(1)
	return nil
}

// DailyCount returns the number of calls in the current window.
func (l *Limiter) DailyCount() int64 {
	return l.daily.Load()
}

// Remaining returns the calls left in the current window, or -1 when no
// quota is configured.
func (l *Limiter) Remaining() int64 {
	if l.maxDaily == 0 {
		return -1
	}
	return max(l.maxDaily-l.daily.Load(), 0)
}

// ResetAt returns when the current window expires.
func (l *Limiter) ResetAt() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.resetAt
}

func (l *Limiter) checkDailyReset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFunc()
	if now.After(l.resetAt) {
		l.daily.Store(0)
		l.resetAt = now.Add(24 * time.Hour)
	}
}

// Transport is an http.RoundTripper that waits on a Limiter before every
// request.
type Transport struct {
	Base    http.RoundTripper
	Limiter *Limiter
}

// NewTransport wraps base, or http.DefaultTransport when base is nil.
func NewTransport(base http.RoundTripper, l *Limiter) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{Base: base, Limiter: l}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.Limiter.Wait(req.Context()); err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, err
	}
	return t.Base.RoundTrip(req)
}
