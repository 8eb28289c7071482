package request

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
)

// Request is the provider-neutral view of an incoming invocation.
// Provider adapters populate it from their native trigger payloads
// (API Gateway proxy events, Azure custom handler invocations, plain
// HTTP requests) so handlers and middleware never see provider types.
type Request struct {
	// Method is the HTTP method of the trigger, when the trigger is
	// HTTP-shaped. Non-HTTP triggers leave it empty.
	Method string

	// Path is the request path as reported by the host.
	Path string

	// Headers holds incoming headers with case-insensitive access.
	Headers http.Header

	// Query holds decoded query string parameters.
	Query url.Values

	// Params holds route/binding parameters extracted by the host
	// (e.g. API Gateway path parameters, Azure binding metadata).
	Params map[string]string

	// Body is the raw request payload. Providers decode transport
	// encodings (such as base64) before populating it.
	Body []byte

	// Trigger is the untouched provider event, for handlers that need
	// to reach below the abstraction. It is owned by the current
	// invocation and must not be retained after it completes.
	Trigger any
}

// New creates a Request with allocated header, query, and param maps.
func New(method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Headers: make(http.Header),
		Query:   make(url.Values),
		Params:  make(map[string]string),
	}
}

// Header returns the first value for the given header key, using
// canonical case-insensitive matching.
func (r *Request) Header(key string) string {
	if r.Headers == nil {
		return ""
	}
	return r.Headers.Get(key)
}

// QueryValue returns the first query parameter value for key.
func (r *Request) QueryValue(key string) string {
	if r.Query == nil {
		return ""
	}
	return r.Query.Get(key)
}

// Param returns the route/binding parameter for key.
func (r *Request) Param(key string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params[key]
}

// DecodeJSON unmarshals the request body into v.
// Unknown fields are rejected to surface client mistakes early.
func (r *Request) DecodeJSON(v any) error {
	dec := json.NewDecoder(bytes.NewReader(r.Body))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
