package handler

import (
	"context"

	"github.com/crossfn/crossfn/core/request"
	"github.com/crossfn/crossfn/core/response"
)

// Context defines the contract for invocation contexts in the framework.
// Provider adapters construct one implementation per invocation; contexts
// are never pooled or shared between invocations. Use dispatcher.Context
// for the default implementation.
type Context interface {
	context.Context

	// Request returns the provider-neutral view of the trigger.
	Request() *request.Request

	// Response returns the response builder for this invocation.
	Response() *response.Writer

	// Param returns a route/binding parameter extracted by the host.
	Param(key string) string

	// SetValue stores an invocation-scoped value retrievable via Value.
	SetValue(key, val any)

	// Finish is the callback-style completion signal for handlers that
	// do not return a value. The first completion wins; calling Finish
	// after the response is already finalized is a no-op.
	Finish(body any, status int) error
}
