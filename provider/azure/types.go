package azure

import "encoding/json"

// InvokeRequest is the payload the Functions host posts to a custom
// handler. Data carries one entry per input binding; Metadata carries
// trigger metadata such as the invocation ID.
type InvokeRequest struct {
	Data     map[string]json.RawMessage `json:"Data"`
	Metadata map[string]json.RawMessage `json:"Metadata"`
}

// httpTrigger is the HTTP input binding shape inside InvokeRequest.Data.
type httpTrigger struct {
	URL     string              `json:"Url"`
	Method  string              `json:"Method"`
	Query   map[string]string   `json:"Query"`
	Headers map[string][]string `json:"Headers"`
	Params  map[string]string   `json:"Params"`
	Body    string              `json:"Body"`
}

// InvokeResponse is the payload returned to the Functions host.
// Outputs carries one entry per output binding.
type InvokeResponse struct {
	Outputs     map[string]any `json:"Outputs"`
	Logs        []string       `json:"Logs,omitempty"`
	ReturnValue any            `json:"ReturnValue,omitempty"`
}

// httpOutput is the HTTP output binding shape inside InvokeResponse.Outputs.
type httpOutput struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body,omitempty"`
}
