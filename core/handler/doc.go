// Package handler provides the core abstractions for serverless
// invocation processing: a type-safe handler signature over custom
// context types, a middleware shape with short-circuit and
// post-processing semantics, and the composition primitive that turns
// an ordered middleware list plus a terminal handler into a single
// invocable.
//
// # Middleware semantics
//
// Middleware wrap the next handler in the chain. Composition is
// right-to-left: the terminal handler is innermost, and the first
// registered middleware runs first on the way in and last on the way
// out, matching a stack discipline.
//
//	func Timing[C handler.Context]() handler.Middleware[C] {
//		return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//			return func(ctx C) (any, error) {
//				start := time.Now()
//				v, err := next(ctx) // post-processing after this call
//				log.Printf("took %v", time.Since(start))
//				return v, err
//			}
//		}
//	}
//
// A middleware that returns without calling next short-circuits the
// chain: downstream middleware and the handler never run, which is the
// supported mechanism for early exits such as auth rejections. Errors
// returned by any layer propagate outward unchanged; the framework
// provides no implicit catch. A middleware that wants to recover wraps
// its own next call.
package handler
