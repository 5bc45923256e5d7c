package respond

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// ProviderLimiter rate-limits outbound calls per provider so a burst of
// requests cannot hammer a single remote service.
type ProviderLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rps      rate.Limit
	burst    int
}

// NewProviderLimiter creates a limiter applying the same rate to each
// provider independently.
func NewProviderLimiter(requestsPerSecond float64, burst int) *ProviderLimiter {
	if burst <= 0 {
		burst = 5
	}
	return &ProviderLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// Wait blocks until the named provider may be called, or the context is
// done.
func (l *ProviderLimiter) Wait(ctx context.Context, provider string) error {
	return l.limiterFor(provider).Wait(ctx)
}

func (l *ProviderLimiter) limiterFor(provider string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[provider]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[provider] = limiter
	}
	return limiter
}
