package middleware_test

import (
	"context"

	"github.com/crossfn/crossfn/core/dispatcher"
	"github.com/crossfn/crossfn/core/request"
	"github.com/crossfn/crossfn/core/response"
)

// commitLog records snapshots delivered to the fake host runtime.
type commitLog struct {
	snaps []*response.Snapshot
}

func (l *commitLog) add(s *response.Snapshot) error {
	l.snaps = append(l.snaps, s)
	return nil
}

func (l *commitLog) last() *response.Snapshot {
	if len(l.snaps) == 0 {
		return nil
	}
	return l.snaps[len(l.snaps)-1]
}

// newApp builds a dispatcher whose factory normalizes *request.Request
// triggers, defaulting to GET /test, and commits into log.
func newApp(log *commitLog) *dispatcher.App[*dispatcher.Context] {
	return dispatcher.New(func(ctx context.Context, trigger any, args ...any) (*dispatcher.Context, error) {
		req, ok := trigger.(*request.Request)
		if !ok {
			req = request.New("GET", "/test")
		}
		return dispatcher.NewContext(ctx, req, response.NewWriter(log.add)), nil
	})
}
