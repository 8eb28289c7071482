// Package crossfn is a cross-cloud abstraction layer for serverless
// functions. A single handler runs unmodified on AWS Lambda, Azure
// Functions custom handlers, or a plain HTTP server: each provider
// adapter normalizes its native trigger into a uniform invocation
// context, and the dispatcher composes middleware chains around the
// handler with guaranteed exactly-once response delivery.
//
// # Package Organization
//
//	github.com/crossfn/crossfn/core/dispatcher - invocation orchestration, context factory strategy, flush guarantee
//	github.com/crossfn/crossfn/core/handler    - handler, middleware, and context contracts; chain composition
//	github.com/crossfn/crossfn/core/request    - provider-neutral request model
//	github.com/crossfn/crossfn/core/response   - response builder with exactly-once flush; handler result union
//	github.com/crossfn/crossfn/core/config     - type-safe environment configuration
//	github.com/crossfn/crossfn/core/logger     - slog attribute helpers
//	github.com/crossfn/crossfn/middleware      - request ID, logging, recovery, rate limiting, JWT, metrics
//	github.com/crossfn/crossfn/provider/lambda - AWS Lambda (API Gateway proxy) adapter
//	github.com/crossfn/crossfn/provider/azure  - Azure Functions custom handler adapter
//	github.com/crossfn/crossfn/provider/local  - net/http adapter for development and tests
package crossfn
