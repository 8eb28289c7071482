// Package response holds the per-invocation response builder and the
// handler result union used by the dispatcher.
//
// Writer accumulates body, status, and headers during an invocation and
// commits them to the host runtime through a provider-supplied
// CommitFunc. The commit happens exactly once: Flush delivers on its
// first call and is a no-op afterwards, so completion signals and the
// dispatcher's cleanup path can both trigger it safely.
//
// Result is the discriminated union handlers return to express their
// outcome explicitly:
//
//	func handler(ctx *dispatcher.Context) (any, error) {
//		return response.Respond(user, response.WithStatus(http.StatusCreated)), nil
//	}
//
// Handlers may also return plain values (treated as the body with a 200
// status), nil (the handler committed the response itself), or a map
// containing a top-level "body" key, which the dispatcher accepts as a
// response shape for compatibility with loosely typed handlers.
package response
