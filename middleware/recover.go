package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/crossfn/crossfn/core/handler"
)

// RecoverConfig configures the panic recovery middleware.
type RecoverConfig struct {
	// Skip defines a function to skip middleware execution for specific invocations
	Skip func(ctx handler.Context) bool
	// Logger receives panic reports with stack traces (default: slog.Default())
	Logger *slog.Logger
	// ErrorHandler maps a recovered panic to a handler outcome
	// (default: an error carrying the panic value)
	ErrorHandler func(ctx handler.Context, v any) (any, error)
}

// Recover creates a panic recovery middleware with default configuration.
// The dispatcher already converts panics to errors to protect the flush
// guarantee; this middleware lets earlier chain layers observe the
// failure and map it to a response.
func Recover[C handler.Context]() handler.Middleware[C] {
	return RecoverWithConfig[C](RecoverConfig{})
}

// RecoverWithConfig creates a panic recovery middleware with custom configuration.
func RecoverWithConfig[C handler.Context](cfg RecoverConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(ctx handler.Context, v any) (any, error) {
			return nil, fmt.Errorf("panic: %v", v)
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) (v any, err error) {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			defer func() {
				if p := recover(); p != nil {
					cfg.Logger.Error("handler panicked",
						slog.Any("panic", p),
						slog.String("path", ctx.Request().Path),
						slog.String("stack", string(debug.Stack())),
					)
					v, err = cfg.ErrorHandler(ctx, p)
				}
			}()

			return next(ctx)
		}
	}
}
