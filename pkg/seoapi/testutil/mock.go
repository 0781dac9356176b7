// Package testutil provides a fake SEO backend for tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Request is a request recorded by the MockServer.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// MockServer provides a mock HTTP server standing in for the SEO backend.
type MockServer struct {
	*httptest.Server
	t        *testing.T
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	requests []Request
}

// NewMockServer creates a new mock server; it is closed when the test ends.
func NewMockServer(t *testing.T) *MockServer {
	ms := &MockServer{
		t:        t,
		handlers: make(map[string]http.HandlerFunc),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", ms.handleRequest)

	ms.Server = httptest.NewServer(mux)
	t.Cleanup(ms.Close)
	return ms
}

// On registers a handler for a specific method and path.
func (ms *MockServer) On(method, path string, handler http.HandlerFunc) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.handlers[method+" "+path] = handler
}

// OnJSON registers a handler that returns JSON for a specific method and path.
func (ms *MockServer) OnJSON(method, path string, statusCode int, response any) {
	ms.On(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if response != nil {
			if err := json.NewEncoder(w).Encode(response); err != nil {
				ms.t.Errorf("failed to encode response: %v", err)
			}
		}
	})
}

// OnError registers a handler answering {"error": message} with statusCode.
func (ms *MockServer) OnError(method, path string, statusCode int, message string) {
	ms.OnJSON(method, path, statusCode, map[string]string{"error": message})
}

// Requests returns the requests received so far.
func (ms *MockServer) Requests() []Request {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	out := make([]Request, len(ms.requests))
	copy(out, ms.requests)
	return out
}

// LastRequest returns the most recent request for method and path.
func (ms *MockServer) LastRequest(method, path string) (Request, bool) {
	reqs := ms.Requests()
	for i := len(reqs) - 1; i >= 0; i-- {
		if reqs[i].Method == method && reqs[i].Path == path {
			return reqs[i], true
		}
	}
	return Request{}, false
}

// handleRequest records the request and routes it to registered handlers.
func (ms *MockServer) handleRequest(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	ms.mu.Lock()
	ms.requests = append(ms.requests, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Body:   body,
	})
	handler, ok := ms.handlers[r.Method+" "+r.URL.Path]
	ms.mu.Unlock()

	if !ok {
		ms.t.Logf("no handler registered for %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
		return
	}
	handler(w, r)
}

// AssertMethod asserts that the request method matches expected.
func AssertMethod(t *testing.T, r *http.Request, expected string) {
	t.Helper()
	if r.Method != expected {
		t.Errorf("expected method %s, got %s", expected, r.Method)
	}
}

// DecodeBody decodes a recorded JSON request body into a map.
func DecodeBody(t *testing.T, req Request) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(req.Body, &out); err != nil {
		t.Fatalf("request body is not JSON: %v (%s)", err, req.Body)
	}
	return out
}
