package middleware_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossfn/crossfn/core/dispatcher"
	"github.com/crossfn/crossfn/core/handler"
	"github.com/crossfn/crossfn/core/request"
	"github.com/crossfn/crossfn/middleware"
)

func TestRateLimitAllowsWithinBurst(t *testing.T) {
	t.Parallel()

	log := &commitLog{}
	app := newApp(log)

	invoke := app.Use(func(ctx *dispatcher.Context) (any, error) {
		return "ok", nil
	}, middleware.RateLimit[*dispatcher.Context](1, 2))

	for i := 0; i < 2; i++ {
		require.NoError(t, invoke(context.Background(), nil))
		snap := log.last()
		require.NotNil(t, snap)
		assert.Equal(t, http.StatusOK, snap.Status)
	}
}

func TestRateLimitRejectsOverBurst(t *testing.T) {
	t.Parallel()

	log := &commitLog{}
	app := newApp(log)

	calls := 0
	invoke := app.Use(func(ctx *dispatcher.Context) (any, error) {
		calls++
		return "ok", nil
	}, middleware.RateLimit[*dispatcher.Context](1, 1))

	require.NoError(t, invoke(context.Background(), nil))
	require.NoError(t, invoke(context.Background(), nil))

	// The second invocation was short-circuited before the handler.
	assert.Equal(t, 1, calls)
	snap := log.last()
	require.NotNil(t, snap)
	assert.Equal(t, http.StatusTooManyRequests, snap.Status)
	assert.Equal(t, "rate limit exceeded", snap.Body)
}

func TestRateLimitTracksKeysIndependently(t *testing.T) {
	t.Parallel()

	log := &commitLog{}
	app := newApp(log)

	invoke := app.Use(func(ctx *dispatcher.Context) (any, error) {
		return "ok", nil
	}, middleware.RateLimit[*dispatcher.Context](1, 1))

	reqFrom := func(ip string) *request.Request {
		req := request.New("GET", "/test")
		req.Headers.Set("X-Forwarded-For", ip)
		return req
	}

	require.NoError(t, invoke(context.Background(), reqFrom("10.0.0.1")))
	require.NoError(t, invoke(context.Background(), reqFrom("10.0.0.2")))

	// Both clients fit in their own burst.
	require.Len(t, log.snaps, 2)
	for _, snap := range log.snaps {
		assert.Equal(t, http.StatusOK, snap.Status)
	}
}

func TestRateLimitCustomErrorHandler(t *testing.T) {
	t.Parallel()

	log := &commitLog{}
	app := newApp(log)

	invoke := app.Use(func(ctx *dispatcher.Context) (any, error) {
		return "ok", nil
	}, middleware.RateLimitWithConfig[*dispatcher.Context](middleware.RateLimitConfig{
		Rate:  1,
		Burst: 1,
		ErrorHandler: func(ctx handler.Context) (any, error) {
			return nil, assert.AnError
		},
	}))

	require.NoError(t, invoke(context.Background(), nil))
	require.ErrorIs(t, invoke(context.Background(), nil), assert.AnError)
}

func TestRateLimitSkip(t *testing.T) {
	t.Parallel()

	log := &commitLog{}
	app := newApp(log)

	invoke := app.Use(func(ctx *dispatcher.Context) (any, error) {
		return "ok", nil
	}, middleware.RateLimitWithConfig[*dispatcher.Context](middleware.RateLimitConfig{
		Rate:  1,
		Burst: 1,
		Skip:  func(ctx handler.Context) bool { return true },
	}))

	for i := 0; i < 5; i++ {
		require.NoError(t, invoke(context.Background(), nil))
		assert.Equal(t, http.StatusOK, log.last().Status)
	}
}
