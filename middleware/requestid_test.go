package middleware_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossfn/crossfn/core/dispatcher"
	"github.com/crossfn/crossfn/core/handler"
	"github.com/crossfn/crossfn/core/request"
	"github.com/crossfn/crossfn/middleware"
)

func TestRequestIDDefaultConfiguration(t *testing.T) {
	t.Parallel()

	log := &commitLog{}
	app := newApp(log)
	app.RegisterMiddleware(middleware.RequestID[*dispatcher.Context]())

	var capturedID string
	invoke := app.Use(func(ctx *dispatcher.Context) (any, error) {
		id, ok := middleware.GetRequestID(ctx)
		assert.True(t, ok, "Request ID should be present in context")
		capturedID = id
		return nil, nil
	})

	require.NoError(t, invoke(context.Background(), nil))

	assert.NotEmpty(t, capturedID, "Request ID should be generated")
	assert.Equal(t, capturedID, log.last().Headers.Get("X-Request-ID"),
		"Request ID should be in response header")

	// Validate UUID format (default generator)
	assert.Len(t, capturedID, 36, "Default ID should be UUID v4 format")
	assert.Contains(t, capturedID, "-", "UUID should contain hyphens")
}

func TestRequestIDCustomGenerator(t *testing.T) {
	t.Parallel()

	log := &commitLog{}
	app := newApp(log)

	customID := "custom-123-456"
	invoke := app.Use(func(ctx *dispatcher.Context) (any, error) {
		id, _ := middleware.GetRequestID(ctx)
		return id, nil
	}, middleware.RequestIDWithConfig[*dispatcher.Context](middleware.RequestIDConfig{
		Generator: func() string { return customID },
	}))

	require.NoError(t, invoke(context.Background(), nil))
	assert.Equal(t, customID, log.last().Body)
}

func TestRequestIDUseExisting(t *testing.T) {
	t.Parallel()

	log := &commitLog{}
	app := newApp(log)

	invoke := app.Use(func(ctx *dispatcher.Context) (any, error) {
		id, _ := middleware.GetRequestID(ctx)
		return id, nil
	}, middleware.RequestIDWithConfig[*dispatcher.Context](middleware.RequestIDConfig{
		UseExisting: true,
	}))

	req := request.New("GET", "/test")
	req.Headers.Set("X-Request-ID", "incoming-789")

	require.NoError(t, invoke(context.Background(), req))
	assert.Equal(t, "incoming-789", log.last().Body)
	assert.Equal(t, "incoming-789", log.last().Headers.Get("X-Request-ID"))
}

func TestRequestIDSkip(t *testing.T) {
	t.Parallel()

	log := &commitLog{}
	app := newApp(log)

	invoke := app.Use(func(ctx *dispatcher.Context) (any, error) {
		_, ok := middleware.GetRequestID(ctx)
		return ok, nil
	}, middleware.RequestIDWithConfig[*dispatcher.Context](middleware.RequestIDConfig{
		Skip: func(ctx handler.Context) bool { return true },
	}))

	require.NoError(t, invoke(context.Background(), nil))
	assert.Equal(t, false, log.last().Body, "skipped invocations carry no request ID")
	assert.Empty(t, log.last().Headers.Get("X-Request-ID"))
}
