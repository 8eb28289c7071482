package dispatcher

import (
	"log/slog"

	"github.com/crossfn/crossfn/core/handler"
)

// Option configures an App during creation.
type Option[C handler.Context] func(*App[C])

// WithErrorHandler sets a hook that observes errors escaping the chain.
// It runs before the flush, so it may still mutate the response; the
// error propagates to the host either way.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(a *App[C]) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithMiddleware registers default middleware at construction time.
func WithMiddleware[C handler.Context](middlewares ...handler.Middleware[C]) Option[C] {
	return func(a *App[C]) {
		a.middlewares = append(a.middlewares, middlewares...)
	}
}

// WithLogger sets a custom logger for dispatch diagnostics.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(a *App[C]) {
		if logger != nil {
			a.logger = logger
		}
	}
}
