package handler

// HandlerFunc is a type-safe invocation handler with custom context support.
// The returned value is normalized by the dispatcher: a response.Result
// carries explicit intent, nil means the handler already committed the
// response, and any other value becomes the response body.
type HandlerFunc[C Context] func(ctx C) (any, error)

// ErrorHandler observes errors that escape the middleware chain, before
// the response is flushed. It may mutate the response; the error still
// propagates to the host afterwards.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps handlers to add cross-cutting functionality.
// A middleware that never calls next short-circuits the chain; code
// after the next call runs as post-processing and observes the final
// response state.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
