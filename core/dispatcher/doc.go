// Package dispatcher orchestrates serverless invocations across
// provider runtimes. An App binds a provider-selected context factory
// to an instance-wide default middleware registry; Use composes default
// middleware, per-call middleware, and a terminal handler into a single
// invocable compatible with the host runtime's entry point.
//
// # Invocation lifecycle
//
// Each call to an Invocation:
//
//  1. Builds a fresh Context through the provider factory. Contexts are
//     never reused, so concurrent invocations share no mutable state.
//  2. Composes [defaults..., per-call..., handler] right-to-left.
//  3. Runs the chain. Middleware run in registration order on the way
//     in and reverse order on the way out; a middleware that skips its
//     next call short-circuits everything downstream.
//  4. Normalizes each layer's outcome into the response builder as
//     control returns through it, so post-processing middleware
//     observes the final response state even after a downstream
//     short-circuit.
//  5. Flushes the response exactly once, on every exit path, then
//     re-raises any error that no middleware handled.
//
// Panics inside middleware or handlers are recovered into a PanicError
// so the flush guarantee holds, then surfaced like any other error.
//
// # Usage
//
//	app := dispatcher.New(lambda.Factory())
//	app.RegisterMiddleware(middleware.RequestID[*dispatcher.Context]())
//
//	invoke := app.Use(func(ctx *dispatcher.Context) (any, error) {
//		var in payload
//		if err := ctx.Request().DecodeJSON(&in); err != nil {
//			return nil, err
//		}
//		return response.Respond(process(in)), nil
//	})
//
//	lambda.Start(invoke)
package dispatcher
