package azure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/crossfn/crossfn/core/dispatcher"
	"github.com/crossfn/crossfn/core/request"
	"github.com/crossfn/crossfn/core/response"
)

// reqBinding is the conventional name of the HTTP input binding and
// resBinding the matching output binding in function.json.
const (
	reqBinding = "req"
	resBinding = "res"
)

// Factory builds invocation contexts from Functions host invoke
// payloads. The first extra argument must be the *InvokeResponse the
// response is committed to.
func Factory() dispatcher.ContextFactory[*dispatcher.Context] {
	return func(ctx context.Context, trigger any, args ...any) (*dispatcher.Context, error) {
		invoke, ok := trigger.(*InvokeRequest)
		if !ok {
			return nil, fmt.Errorf("azure: unexpected trigger type %T", trigger)
		}
		var out *InvokeResponse
		for _, arg := range args {
			if target, ok := arg.(*InvokeResponse); ok {
				out = target
				break
			}
		}
		if out == nil {
			return nil, fmt.Errorf("azure: missing response target argument")
		}

		req, err := fromInvoke(invoke)
		if err != nil {
			return nil, err
		}
		return dispatcher.NewContext(ctx, req, response.NewWriter(commitTo(out))), nil
	}
}

// Handler adapts an Invocation to the custom handler HTTP contract: the
// host posts an InvokeRequest and expects an InvokeResponse back. An
// unhandled invocation error is reported as a host-level failure after
// the response flush already populated the output binding.
func Handler(invoke dispatcher.Invocation) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in InvokeRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, fmt.Sprintf("azure: malformed invoke payload: %v", err), http.StatusBadRequest)
			return
		}

		out := InvokeResponse{Outputs: make(map[string]any)}
		if err := invoke(r.Context(), &in, &out); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// fromInvoke converts the HTTP input binding into the normalized form.
func fromInvoke(invoke *InvokeRequest) (*request.Request, error) {
	raw, ok := invoke.Data[reqBinding]
	if !ok {
		return nil, fmt.Errorf("azure: invoke payload has no %q binding", reqBinding)
	}
	var trigger httpTrigger
	if err := json.Unmarshal(raw, &trigger); err != nil {
		return nil, fmt.Errorf("azure: failed to decode %q binding: %w", reqBinding, err)
	}

	path := trigger.URL
	if u, err := url.Parse(trigger.URL); err == nil {
		path = u.Path
	}

	req := request.New(trigger.Method, path)
	for key, values := range trigger.Headers {
		for _, v := range values {
			req.Headers.Add(key, v)
		}
	}
	for key, value := range trigger.Query {
		req.Query.Set(key, value)
	}
	for key, value := range trigger.Params {
		req.Params[key] = value
	}
	if trigger.Body != "" {
		req.Body = []byte(trigger.Body)
	}
	if raw, ok := invoke.Metadata["sys"]; ok {
		// Invocation metadata is exposed as binding params so handlers
		// can read it without touching provider types.
		var sys struct {
			UtcNow       string `json:"UtcNow"`
			RandGuid     string `json:"RandGuid"`
			MethodName   string `json:"MethodName"`
			InvocationID string `json:"InvocationId"`
		}
		if err := json.Unmarshal(raw, &sys); err == nil {
			if sys.MethodName != "" {
				req.Params["function"] = sys.MethodName
			}
			if sys.InvocationID != "" {
				req.Params["invocation_id"] = sys.InvocationID
			}
		}
	}
	req.Trigger = invoke
	return req, nil
}

// commitTo fills the HTTP output binding from a snapshot.
func commitTo(out *InvokeResponse) response.CommitFunc {
	return func(snap *response.Snapshot) error {
		body, err := response.EncodeBody(snap.Body)
		if err != nil {
			return err
		}

		headers := make(map[string]string, len(snap.Headers))
		for key := range snap.Headers {
			headers[key] = snap.Headers.Get(key)
		}

		if out.Outputs == nil {
			out.Outputs = make(map[string]any)
		}
		out.Outputs[resBinding] = httpOutput{
			StatusCode: snap.Status,
			Headers:    headers,
			Body:       string(body),
		}
		return nil
	}
}
