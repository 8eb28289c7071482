package response

import (
	"net/http"
	"sync"
)

// Snapshot is the immutable view of an accumulated response handed to
// the provider's commit function at flush time.
type Snapshot struct {
	Status  int
	Headers http.Header
	Body    any
}

// CommitFunc delivers a finished response to the host runtime.
// Provider adapters supply one per invocation; it is called at most once.
type CommitFunc func(*Snapshot) error

// Writer accumulates response state for a single invocation and commits
// it to the host runtime exactly once. It is exclusive to one invocation
// and must not be reused after Flush.
//
// The zero status flushes as 200. Content type is inferred at flush when
// no explicit Content-Type header was set: string and []byte bodies
// default to text/plain, anything else to application/json.
type Writer struct {
	mu        sync.Mutex
	status    int
	body      any
	headers   http.Header
	commit    CommitFunc
	finalized bool
	flushed   bool
}

// NewWriter creates a Writer that delivers its response through commit.
// A nil commit makes Flush a recording no-op, which is convenient in tests.
func NewWriter(commit CommitFunc) *Writer {
	return &Writer{
		headers: make(http.Header),
		commit:  commit,
	}
}

// SetBody replaces the response body. No-op after finalization.
func (w *Writer) SetBody(v any) *Writer {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.finalized {
		w.body = v
	}
	return w
}

// SetStatus replaces the response status code. No-op after finalization.
func (w *Writer) SetStatus(code int) *Writer {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.finalized {
		w.status = code
	}
	return w
}

// SetHeader sets a response header, replacing any existing values.
// Keys are matched case-insensitively. No-op after flush.
func (w *Writer) SetHeader(key, value string) *Writer {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.flushed {
		w.headers.Set(key, value)
	}
	return w
}

// Header returns the first value set for the given header key.
func (w *Writer) Header(key string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.headers.Get(key)
}

// Status returns the currently accumulated status code.
func (w *Writer) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Body returns the currently accumulated body.
func (w *Writer) Body() any {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.body
}

// Finalize commits body and status as the definitive response.
// The first completion wins: once a response is finalized, later
// Finalize calls and result normalization are silent no-ops, so a
// handler that both signals completion and returns a value keeps the
// explicitly signalled response.
func (w *Writer) Finalize(body any, status int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.finalized || w.flushed {
		return nil
	}
	w.body = body
	if status != 0 {
		w.status = status
	}
	w.finalized = true
	return nil
}

// Finalized reports whether an explicit completion already landed.
func (w *Writer) Finalized() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.finalized
}

// Flush commits the accumulated response to the host runtime.
// Only the first call delivers; subsequent calls return nil without
// side effects, which makes Flush safe to trigger both from completion
// signals and from the dispatcher's guaranteed cleanup path.
func (w *Writer) Flush() error {
	w.mu.Lock()
	if w.flushed {
		w.mu.Unlock()
		return nil
	}
	w.flushed = true

	status := w.status
	if status == 0 {
		status = http.StatusOK
	}
	if w.body != nil && w.headers.Get("Content-Type") == "" {
		w.headers.Set("Content-Type", inferContentType(w.body))
	}
	snap := &Snapshot{
		Status:  status,
		Headers: w.headers,
		Body:    w.body,
	}
	commit := w.commit
	w.mu.Unlock()

	if commit == nil {
		return nil
	}
	return commit(snap)
}

// Flushed reports whether the response has been committed to the host.
func (w *Writer) Flushed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.flushed
}

// inferContentType picks a default Content-Type for bodies without an
// explicit header. Textual bodies stay plain text; everything else is
// serialized as JSON by provider adapters.
func inferContentType(body any) string {
	switch body.(type) {
	case string, []byte:
		return "text/plain; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}
