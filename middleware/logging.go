package middleware

import (
	"log/slog"
	"time"

	"github.com/crossfn/crossfn/core/handler"
	"github.com/crossfn/crossfn/core/logger"
)

// LoggingConfig configures the invocation logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific invocations
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for invocation logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowThreshold logs slow invocations at warning level (default: 5s)
	SlowThreshold time.Duration

	// Component name for structured logging (default: "dispatch")
	Component string
}

// Logging creates an invocation logging middleware with default configuration.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates an invocation logging middleware with custom
// configuration. It logs one line per invocation after the chain
// settles, carrying method, path, status, duration, and the request ID
// when the request ID middleware ran earlier in the chain.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.SlowThreshold <= 0 {
		cfg.SlowThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "dispatch"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) (any, error) {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			req := ctx.Request()

			v, err := next(ctx)

			duration := time.Since(start)
			requestID, _ := GetRequestID(ctx)

			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Method(req.Method),
				logger.Path(req.Path),
				logger.StatusCode(ctx.Response().Status()),
				logger.Duration(duration),
				logger.RequestID(requestID),
				logger.Error(err),
			}

			level := cfg.LogLevel
			switch {
			case err != nil:
				level = slog.LevelError
			case duration >= cfg.SlowThreshold:
				level = slog.LevelWarn
			}

			cfg.Logger.LogAttrs(ctx, level, "invocation", attrs...)

			return v, err
		}
	}
}
