package dispatcher

import (
	"context"
	"io"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/crossfn/crossfn/core/handler"
	"github.com/crossfn/crossfn/core/logger"
)

// ContextFactory constructs the invocation context from the raw trigger
// delivered by the host runtime. The provider adapter owns trigger and
// args shapes; the dispatcher only requires that each call produces a
// fresh, isolated context.
type ContextFactory[C handler.Context] func(ctx context.Context, trigger any, args ...any) (C, error)

// Invocation is the composed invocable produced by Use. It is
// compatible with host runtime entry points: trigger is the provider's
// native event and args carries any extra positional values the
// provider needs forwarded (such as a response target).
type Invocation func(ctx context.Context, trigger any, args ...any) error

// App dispatches invocations for one provider. It holds the context
// factory strategy and the instance-wide default middleware registry.
// Multiple independent Apps can coexist; nothing is process-global.
type App[C handler.Context] struct {
	factory      ContextFactory[C]
	errorHandler handler.ErrorHandler[C]
	logger       *slog.Logger

	mu          sync.RWMutex
	middlewares []handler.Middleware[C]
}

// New creates an App that builds contexts through factory.
// Panics if factory is nil, since no invocation can be served without one.
func New[C handler.Context](factory ContextFactory[C], opts ...Option[C]) *App[C] {
	if factory == nil {
		panic(ErrNoContextFactory)
	}
	a := &App[C]{
		factory: factory,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RegisterMiddleware appends default middleware to the App. Defaults run
// ahead of per-call middleware for every invocation dispatched by this
// App, including invocables produced before registration. The registry
// is append-only and lives as long as the App.
func (a *App[C]) RegisterMiddleware(middlewares ...handler.Middleware[C]) {
	a.mu.Lock()
	a.middlewares = append(a.middlewares, middlewares...)
	a.mu.Unlock()
}

// Use binds a handler and optional per-call middleware into a single
// invocable. Per invocation the returned Invocation builds a fresh
// context, composes [defaults..., middlewares..., handler], runs the
// chain, and flushes the response exactly once on every exit path.
// Each layer's outcome is normalized into the response builder as
// control returns through it, so a short-circuiting middleware's
// result is visible to the post-processing of the layers above it.
// Errors are surfaced to the caller after the flush, never instead
// of it.
func (a *App[C]) Use(h handler.HandlerFunc[C], middlewares ...handler.Middleware[C]) Invocation {
	if h == nil {
		panic(ErrNilHandler)
	}

	return func(ctx context.Context, trigger any, args ...any) error {
		c, err := a.factory(ctx, trigger, args...)
		if err != nil {
			return err
		}

		a.mu.RLock()
		stack := make([]handler.Middleware[C], 0, len(a.middlewares)+len(middlewares))
		for _, mw := range a.middlewares {
			stack = append(stack, commitMiddleware(mw))
		}
		a.mu.RUnlock()
		for _, mw := range middlewares {
			stack = append(stack, commitMiddleware(mw))
		}

		composed := handler.Chain(stack, unwrap(h))
		runErr := a.run(composed, c)

		if runErr != nil && a.errorHandler != nil {
			a.errorHandler(c, runErr)
		}

		// Flush is the mandatory release action; it runs whether the
		// chain succeeded, failed, or panicked. A flush failure
		// supersedes the chain error.
		if ferr := c.Response().Flush(); ferr != nil {
			a.logger.ErrorContext(ctx, "response flush failed",
				logger.Error(ferr), logger.Errors(runErr))
			return ferr
		}

		if runErr != nil {
			a.logger.ErrorContext(ctx, "invocation failed", logger.Error(runErr))
		}
		return runErr
	}
}

// run executes the composed chain, converting panics into errors so the
// flush guarantee holds even when user code panics. Every chain layer
// commits its own outcome, so nothing is left to normalize here.
func (a *App[C]) run(composed handler.HandlerFunc[C], c C) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &PanicError{value: p, stack: debug.Stack()}
		}
	}()

	_, err = composed(c)
	return err
}
