// Package cmd test utilities.
//
// Commands are tested against mock HTTP servers. The pieces are:
//
//   - routeHandler: a chainable HTTP handler for routing requests to mock
//     responses
//   - setupTestEnvWithHandler: points SOLAREDGE_API_KEY/SOLAREDGE_BASE_URL
//     at the mock server with automatic cleanup
//   - captureStdout / captureStderr: output capture utilities
//   - jsonResponse: helper for creating JSON response handlers
//
// A minimal test looks like:
//
//	handler := newRouteHandler().
//	    On("GET", "/site/42/overview.json", jsonResponse(200, `{"overview": {...}}`))
//	setupTestEnvWithHandler(t, handler)
//	output := captureStdout(t, func() {
//	    if err := Execute(context.Background(), []string{"sites", "overview", "42"}); err != nil {
//	        t.Fatalf("command failed: %v", err)
//	    }
//	})
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

// routeHandler routes requests by method and path to registered handlers.
type routeHandler struct {
	routes map[string]http.HandlerFunc
}

func newRouteHandler() *routeHandler {
	return &routeHandler{routes: make(map[string]http.HandlerFunc)}
}

// On registers a handler for a method and path. Returns the handler for
// chaining.
func (h *routeHandler) On(method, path string, handler http.HandlerFunc) *routeHandler {
	h.routes[method+" "+path] = handler
	return h
}

func (h *routeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if handler, ok := h.routes[r.Method+" "+r.URL.Path]; ok {
		handler(w, r)
		return
	}
	w.WriteHeader(http.StatusNotFound)
	_, _ = fmt.Fprintf(w, "no route for %s %s", r.Method, r.URL.Path)
}

// jsonResponse returns a handler that writes a fixed JSON body.
func jsonResponse(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// setupTestEnvWithHandler starts a mock server and points the CLI's
// environment-driven configuration at it. The cache is disabled so site
// name resolution always hits the mock server.
func setupTestEnvWithHandler(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("SOLAREDGE_API_KEY", "test-key")
	t.Setenv("SOLAREDGE_BASE_URL", server.URL)
	t.Setenv("SOLAREDGE_NO_CACHE", "1")
	t.Setenv("SOLAREDGE_PROFILE", "")

	return server
}

// captureStdout executes a function and captures its stdout output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// captureStderr executes a function and captures its stderr output.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	fn()

	_ = w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}
