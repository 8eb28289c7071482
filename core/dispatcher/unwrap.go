package dispatcher

import (
	"encoding/json"
	"net/http"

	"github.com/crossfn/crossfn/core/handler"
	"github.com/crossfn/crossfn/core/response"
)

// unwrap wraps a chain layer so its outcome is committed to the
// response builder before control returns upstream. Every layer is
// wrapped, not just the terminal handler: a middleware that
// short-circuits with a value commits at its own position in the
// chain, so post-processing in the layers above it observes the final
// response state after their next call returns.
func unwrap[C handler.Context](h handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	return func(ctx C) (any, error) {
		v, err := h(ctx)
		if err != nil {
			// Error path commits nothing; the response that surfaces,
			// if any, is whatever was set before the failure.
			return nil, err
		}
		return nil, commitResult(ctx, v)
	}
}

// commitMiddleware wraps a middleware so the layer it produces commits
// its own return value on the way out.
func commitMiddleware[C handler.Context](mw handler.Middleware[C]) handler.Middleware[C] {
	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return unwrap(mw(next))
	}
}

// commitResult normalizes a handler outcome into the response builder.
//
// Resolution order mirrors the documented contract: an explicit Result
// union wins outright; nil means the handler completed out-of-band
// (direct Writer mutation or a Finish signal) and nothing is committed;
// a map with a top-level "body" key is accepted as a response shape for
// compatibility with loosely typed handlers; anything else becomes the
// response body with a default success status. A finalized writer is
// never overwritten, so an earlier explicit completion always wins.
func commitResult[C handler.Context](ctx C, v any) error {
	w := ctx.Response()

	switch r := v.(type) {
	case nil:
		return nil
	case response.Result:
		return r.Apply(w)
	case map[string]any:
		if w.Finalized() {
			return nil
		}
		// Shape detection runs before the plain-value fallback: a map
		// carrying a "body" key is a response shape even when the body
		// itself nests further. Best-effort compatibility only; typed
		// handlers should return response.Result.
		if body, ok := r["body"]; ok {
			status := statusFrom(r["status"])
			if headers, ok := r["headers"].(map[string]string); ok {
				for k, val := range headers {
					w.SetHeader(k, val)
				}
			}
			return w.Finalize(body, status)
		}
		return w.Finalize(r, http.StatusOK)
	default:
		if w.Finalized() {
			return nil
		}
		return w.Finalize(v, http.StatusOK)
	}
}

// statusFrom extracts a status code from the loosely typed response
// shape. Numeric JSON decodes to float64 (or json.Number with UseNumber),
// so all three representations are accepted; zero keeps the default.
func statusFrom(v any) int {
	switch s := v.(type) {
	case int:
		return s
	case float64:
		return int(s)
	case json.Number:
		if n, err := s.Int64(); err == nil {
			return int(n)
		}
	}
	return 0
}
