package dispatcher

import (
	"context"
	"sync"
	"time"

	"github.com/crossfn/crossfn/core/request"
	"github.com/crossfn/crossfn/core/response"
)

// Context is the default invocation context implementation. It delegates
// cancellation and deadlines to the host context and carries the
// normalized request, the response builder, and invocation-scoped values.
type Context struct {
	ctx  context.Context
	req  *request.Request
	resp *response.Writer

	mu     sync.RWMutex
	values map[any]any
}

// NewContext creates a Context bound to the given host context, request,
// and response writer. Provider factories call this once per invocation.
func NewContext(ctx context.Context, req *request.Request, resp *response.Writer) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{
		ctx:  ctx,
		req:  req,
		resp: resp,
	}
}

// Deadline delegates to the host context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.ctx.Deadline()
}

// Done delegates to the host context.
func (c *Context) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Err delegates to the host context.
func (c *Context) Err() error {
	return c.ctx.Err()
}

// Value returns invocation-scoped values set via SetValue, falling back
// to the host context.
func (c *Context) Value(key any) any {
	c.mu.RLock()
	if val, ok := c.values[key]; ok {
		c.mu.RUnlock()
		return val
	}
	c.mu.RUnlock()
	return c.ctx.Value(key)
}

// Request returns the normalized trigger for this invocation.
func (c *Context) Request() *request.Request {
	return c.req
}

// Response returns the response builder for this invocation.
func (c *Context) Response() *response.Writer {
	return c.resp
}

// Param returns a route/binding parameter extracted by the host.
func (c *Context) Param(key string) string {
	if c.req == nil {
		return ""
	}
	return c.req.Param(key)
}

// SetValue stores an invocation-scoped value retrievable via Value.
func (c *Context) SetValue(key, val any) {
	c.mu.Lock()
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
	c.mu.Unlock()
}

// Finish is the callback-style completion signal. It finalizes the
// response with the given body and status; the first completion wins
// and later completions are silent no-ops.
func (c *Context) Finish(body any, status int) error {
	return c.resp.Finalize(body, status)
}
