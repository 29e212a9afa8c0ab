// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssllabs

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/ssllabs-scanner/src/config"
)

// waitRecorder is a WaitFunc that returns immediately and remembers every
// requested delay.
type waitRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (w *waitRecorder) wait(ctx context.Context, d time.Duration) error {
	w.mu.Lock()
	w.delays = append(w.delays, d)
	w.mu.Unlock()
	return ctx.Err()
}

func (w *waitRecorder) recorded() []time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]time.Duration(nil), w.delays...)
}

// scriptedAPI answers info and analyze with queued bodies. The last body
// of each queue repeats once the queue is drained.
type scriptedAPI struct {
	mu      sync.Mutex
	info    []string
	analyze []string
	order   []string
	queries []url.Values
}

func (s *scriptedAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	op := path.Base(r.URL.Path)
	s.order = append(s.order, op)

	var body string
	switch op {
	case OperationInfo:
		body = next(&s.info)
	case OperationAnalyze:
		s.queries = append(s.queries, r.URL.Query())
		body = next(&s.analyze)
	default:
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

func (s *scriptedAPI) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

func (s *scriptedAPI) analyzeQueries() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.queries...)
}

func next(queue *[]string) string {
	q := *queue
	if len(q) == 0 {
		return "{}"
	}
	if len(q) > 1 {
		*queue = q[1:]
	}
	return q[0]
}

// newTestClient starts handler behind an httptest server and returns a
// client pointed at it whose waits are recorded instead of slept.
func newTestClient(t *testing.T, handler http.Handler, opts ...ClientOption) (*Client, *waitRecorder) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.API.URL = srv.URL + "/api/v2/"

	rec := &waitRecorder{}
	base := []ClientOption{
		WithConfig(cfg),
		WithHTTPClient(srv.Client()),
		WithWaitFunc(rec.wait),
	}

	client, err := NewClient(append(base, opts...)...)
	require.NoError(t, err)
	return client, rec
}

// capturedRequest is what a handler saw, copied out of the request.
type capturedRequest struct {
	Path   string
	Query  url.Values
	Raw    string
	Header http.Header
}

// requestLog records requests for later assertions.
type requestLog struct {
	mu   sync.Mutex
	reqs []capturedRequest
}

func (l *requestLog) record(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reqs = append(l.reqs, capturedRequest{
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Raw:    r.URL.RawQuery,
		Header: r.Header.Clone(),
	})
}

func (l *requestLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.reqs)
}

func (l *requestLog) last() capturedRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.reqs) == 0 {
		return capturedRequest{}
	}
	return l.reqs[len(l.reqs)-1]
}
