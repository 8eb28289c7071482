package middleware

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/crossfn/crossfn/core/handler"
	"github.com/crossfn/crossfn/core/response"
)

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific invocations
	Skip func(ctx handler.Context) bool
	// Rate is the sustained request rate per key (default: 10/s)
	Rate rate.Limit
	// Burst is the burst allowance per key (default: 20)
	Burst int
	// KeyExtractor derives the limiting key from the invocation
	// (default: the X-Forwarded-For header, falling back to a single
	// shared key)
	KeyExtractor func(ctx handler.Context) string
	// ErrorHandler maps a rejected invocation to a handler outcome
	// (default: a 429 response)
	ErrorHandler func(ctx handler.Context) (any, error)
}

// RateLimit creates a rate limiting middleware with the given rate and burst.
// Limits are tracked in memory per key, which fits the single-process
// model of a function host; share nothing across instances.
func RateLimit[C handler.Context](r rate.Limit, burst int) handler.Middleware[C] {
	return RateLimitWithConfig[C](RateLimitConfig{Rate: r, Burst: burst})
}

// RateLimitWithConfig creates a rate limiting middleware with custom configuration.
// An invocation over the limit short-circuits the chain: downstream
// middleware and the handler never run.
func RateLimitWithConfig[C handler.Context](cfg RateLimitConfig) handler.Middleware[C] {
	if cfg.Rate <= 0 {
		cfg.Rate = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = func(ctx handler.Context) string {
			if ip := ctx.Request().Header("X-Forwarded-For"); ip != "" {
				return ip
			}
			return "global"
		}
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(ctx handler.Context) (any, error) {
			return response.Respond("rate limit exceeded",
				response.WithStatus(http.StatusTooManyRequests)), nil
		}
	}

	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[key]
		if !ok {
			l = rate.NewLimiter(cfg.Rate, cfg.Burst)
			limiters[key] = l
		}
		return l
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) (any, error) {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			if !limiterFor(cfg.KeyExtractor(ctx)).Allow() {
				return cfg.ErrorHandler(ctx)
			}

			return next(ctx)
		}
	}
}
