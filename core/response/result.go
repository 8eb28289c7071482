package response

import "net/http"

// resultKind discriminates the Result union.
type resultKind int

const (
	kindDeferred resultKind = iota
	kindValue
	kindResponse
)

// Result is the discriminated union of handler outcomes. Constructors
// make the handler's intent explicit so the dispatcher never has to
// guess whether a returned value is a body or a full response:
//
//	Value(v)            v is the response body, status defaults to 200
//	Respond(body, ...)  full response shape with optional status/headers
//	Deferred()          the handler committed the response itself
type Result struct {
	kind    resultKind
	body    any
	status  int
	headers map[string]string
}

// Option customizes a Respond result.
type Option func(*Result)

// WithStatus sets the response status code.
func WithStatus(code int) Option {
	return func(r *Result) { r.status = code }
}

// WithHeader adds a response header.
func WithHeader(key, value string) Option {
	return func(r *Result) {
		if r.headers == nil {
			r.headers = make(map[string]string)
		}
		r.headers[key] = value
	}
}

// Value wraps a plain body with a default success status.
func Value(v any) Result {
	return Result{kind: kindValue, body: v, status: http.StatusOK}
}

// Respond builds a full response result from a body and options.
func Respond(body any, opts ...Option) Result {
	r := Result{kind: kindResponse, body: body, status: http.StatusOK}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Deferred signals that the handler already committed its response,
// either by mutating the Writer directly or through a completion signal.
func Deferred() Result {
	return Result{kind: kindDeferred}
}

// Apply commits the result to w. Deferred results leave w untouched.
// An already-finalized writer wins over the result (first completion
// sticks), so Apply after an explicit completion is a no-op.
func (r Result) Apply(w *Writer) error {
	if r.kind == kindDeferred || w.Finalized() {
		return nil
	}
	for k, v := range r.headers {
		w.SetHeader(k, v)
	}
	return w.Finalize(r.body, r.status)
}
