package local

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/crossfn/crossfn/core/dispatcher"
	"github.com/crossfn/crossfn/core/request"
	"github.com/crossfn/crossfn/core/response"
)

// Factory builds invocation contexts from plain *http.Request triggers.
// The first extra argument must be the http.ResponseWriter the response
// is committed to.
func Factory() dispatcher.ContextFactory[*dispatcher.Context] {
	return func(ctx context.Context, trigger any, args ...any) (*dispatcher.Context, error) {
		r, ok := trigger.(*http.Request)
		if !ok {
			return nil, fmt.Errorf("local: unexpected trigger type %T", trigger)
		}
		var w http.ResponseWriter
		for _, arg := range args {
			if rw, ok := arg.(http.ResponseWriter); ok {
				w = rw
				break
			}
		}
		if w == nil {
			return nil, fmt.Errorf("local: missing response writer argument")
		}

		req, err := fromHTTP(r)
		if err != nil {
			return nil, err
		}
		return dispatcher.NewContext(ctx, req, response.NewWriter(commitTo(w))), nil
	}
}

// Handler adapts an Invocation to http.Handler for local development
// and tests. Errors surfacing after the flush are reported through the
// standard http.Server error path only when nothing was committed yet.
func Handler(invoke dispatcher.Invocation) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		if err := invoke(r.Context(), r, ww); err != nil {
			// The flush already delivered whatever was accumulated.
			// Only a failure before the flush, such as a context
			// construction error, leaves the response untouched.
			if !ww.Written() {
				http.Error(ww, err.Error(), http.StatusInternalServerError)
			}
		}
	})
}

// fromHTTP converts an incoming HTTP request into the normalized form.
func fromHTTP(r *http.Request) (*request.Request, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("local: failed to read request body: %w", err)
	}
	req := request.New(r.Method, r.URL.Path)
	req.Headers = r.Header.Clone()
	req.Query = r.URL.Query()
	req.Body = body
	req.Trigger = r
	return req, nil
}

// commitTo writes a response snapshot to the http.ResponseWriter.
func commitTo(w http.ResponseWriter) response.CommitFunc {
	return func(snap *response.Snapshot) error {
		body, err := response.EncodeBody(snap.Body)
		if err != nil {
			return err
		}
		for key, values := range snap.Headers {
			for _, v := range values {
				w.Header().Add(key, v)
			}
		}
		w.WriteHeader(snap.Status)
		if len(body) > 0 {
			if _, err := w.Write(body); err != nil {
				return fmt.Errorf("local: failed to write response: %w", err)
			}
		}
		return nil
	}
}
