package worker

import (
	"context"
	"path/filepath"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter throttles evaluations per case source. The source of a case file
// is the directory it lives in, so one slow share does not starve others.
type Limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a new rate limiter. A rate of zero or less disables
// throttling.
func NewLimiter(evaluationsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	limit := rate.Limit(evaluationsPerSecond)
	if evaluationsPerSecond <= 0 {
		limit = rate.Inf
	}

	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  limit,
		defaultBurst: burst,
	}
}

// Wait blocks until the source of path may be evaluated again
func (l *Limiter) Wait(ctx context.Context, path string) error {
	return l.getLimiter(sourceOf(path)).Wait(ctx)
}

// Allow reports whether the source of path may be evaluated right now
func (l *Limiter) Allow(path string) bool {
	return l.getLimiter(sourceOf(path)).Allow()
}

// Unlimited reports whether the default rate disables throttling
func (l *Limiter) Unlimited() bool {
	return l.defaultRate == rate.Inf
}

func (l *Limiter) getLimiter(source string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[source]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists := l.limiters[source]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[source] = limiter

	return limiter
}

// SetSourceRate sets a custom rate for the case files directly under dir.
// A rate of zero or less leaves that directory unthrottled.
func (l *Limiter) SetSourceRate(dir string, evaluationsPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}
	limit := rate.Limit(evaluationsPerSecond)
	if evaluationsPerSecond <= 0 {
		limit = rate.Inf
	}

	l.limiters[filepath.Clean(dir)] = rate.NewLimiter(limit, burst)
}

// sourceOf returns the directory of a case file
func sourceOf(path string) string {
	return filepath.Dir(filepath.Clean(path))
}
