// Package middleware provides stock middleware for the dispatcher:
// request IDs, structured invocation logging, panic recovery, in-memory
// rate limiting, JWT bearer authentication, and Prometheus metrics.
//
// All middleware follow the same conventions: a zero-config constructor,
// a WithConfig variant, and a Skip predicate to exclude specific
// invocations. Middleware registered on an App via RegisterMiddleware
// run ahead of per-call middleware for every invocation.
package middleware
