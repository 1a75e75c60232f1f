package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DeBrosOfficial/cachegate/pkg/cache"
	"github.com/DeBrosOfficial/cachegate/pkg/cache/cachetest"
	cachehandlers "github.com/DeBrosOfficial/cachegate/pkg/gateway/handlers/cache"
	"github.com/DeBrosOfficial/cachegate/pkg/logging"
	"github.com/google/uuid"
)

func newTestGateway(t *testing.T, mgr cache.Manager) *Gateway {
	t.Helper()
	g, err := New(nil, Config{}, cache.NewService(mgr, ""), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func do(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNew_RequiresService(t *testing.T) {
	if _, err := New(nil, Config{}, nil, nil); err == nil {
		t.Fatal("expected error without cache service")
	}
}

func TestHello(t *testing.T) {
	h := newTestGateway(t, cachetest.NewManager()).Routes()

	w := do(t, h, http.MethodGet, "/hello")

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if w.Body.String() != Greeting {
		t.Errorf("expected %q, got %q", Greeting, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("expected text/plain, got %q", ct)
	}
}

func TestCache_UnwrittenKeyNotFound(t *testing.T) {
	h := newTestGateway(t, cachetest.NewManager()).Routes()

	w := do(t, h, http.MethodGet, "/hello/cache/"+uuid.NewString())

	if w.Code != http.StatusOK || w.Body.String() != cachehandlers.MsgNotFound {
		t.Errorf("expected 200 %q, got %d %q", cachehandlers.MsgNotFound, w.Code, w.Body.String())
	}
}

func TestCache_RoundTrip(t *testing.T) {
	h := newTestGateway(t, cachetest.NewManager()).Routes()

	w := do(t, h, http.MethodGet, "/hello/cache/testKey/testValue")
	if w.Code != http.StatusOK {
		t.Fatalf("put: expected status %d, got %d", http.StatusOK, w.Code)
	}
	if want := "Cached: testKey = testValue"; w.Body.String() != want {
		t.Errorf("put: expected %q, got %q", want, w.Body.String())
	}

	w = do(t, h, http.MethodGet, "/hello/cache/testKey")
	if w.Body.String() != "testValue" {
		t.Errorf("get: expected %q, got %q", "testValue", w.Body.String())
	}

	// Overwrite keeps the latest value.
	do(t, h, http.MethodGet, "/hello/cache/testKey/other")
	w = do(t, h, http.MethodGet, "/hello/cache/testKey")
	if w.Body.String() != "other" {
		t.Errorf("get after overwrite: expected %q, got %q", "other", w.Body.String())
	}
}

func TestCache_EscapedPathSegments(t *testing.T) {
	tests := []struct {
		name      string
		putPath   string
		getPath   string
		wantPut   string
		wantValue string
	}{
		{"escaped slash", "/hello/cache/a%2Fb/v%20x", "/hello/cache/a%2Fb", "Cached: a/b = v x", "v x"},
		{"escaped space", "/hello/cache/a%20b/v", "/hello/cache/a%20b", "Cached: a b = v", "v"},
		{"non-ascii", "/hello/cache/%C3%A9t%C3%A9/caf%C3%A9", "/hello/cache/%C3%A9t%C3%A9", "Cached: été = café", "café"},
		{"literal percent", "/hello/cache/100%25/full", "/hello/cache/100%25", "Cached: 100% = full", "full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestGateway(t, cachetest.NewManager()).Routes()

			w := do(t, h, http.MethodGet, tt.putPath)
			if w.Code != http.StatusOK || w.Body.String() != tt.wantPut {
				t.Fatalf("put: expected 200 %q, got %d %q", tt.wantPut, w.Code, w.Body.String())
			}

			w = do(t, h, http.MethodGet, tt.getPath)
			if w.Body.String() != tt.wantValue {
				t.Errorf("get: expected %q, got %q", tt.wantValue, w.Body.String())
			}
		})
	}
}

func TestCache_Health(t *testing.T) {
	down := cachetest.NewManager()
	down.Store.SizeErr = errors.New("i/o timeout")

	tests := []struct {
		name string
		mgr  cache.Manager
		want string
	}{
		{"connected", cachetest.NewManager(), cachehandlers.MsgConnected},
		{"probe fails", down, cachehandlers.MsgConnectionFailed},
		{"no cache", &cachetest.Manager{}, cachehandlers.MsgConnectionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newTestGateway(t, tt.mgr).Routes(), http.MethodGet, "/hello/cache/health")
			if w.Code != http.StatusOK {
				t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
			}
			if w.Body.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, w.Body.String())
			}
		})
	}
}

func TestCache_HealthIsNotAKey(t *testing.T) {
	h := newTestGateway(t, cachetest.NewManager()).Routes()

	do(t, h, http.MethodGet, "/hello/cache/health/stored")

	w := do(t, h, http.MethodGet, "/hello/cache/health")
	if w.Body.String() != cachehandlers.MsgConnected {
		t.Errorf("expected health message, got %q", w.Body.String())
	}
}

func TestCache_PutErrors(t *testing.T) {
	failing := cachetest.NewManager()
	failing.Store.PutErr = errors.New("write timeout")

	tests := []struct {
		name       string
		mgr        cache.Manager
		wantStatus int
		wantBody   string
	}{
		{"cache unavailable", &cachetest.Manager{}, http.StatusServiceUnavailable, "not available"},
		{"write error", failing, http.StatusInternalServerError, "write timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newTestGateway(t, tt.mgr).Routes(), http.MethodGet, "/hello/cache/k/v")
			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("expected body to contain %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRouting_UnknownAndMethod(t *testing.T) {
	h := newTestGateway(t, cachetest.NewManager()).Routes()

	if w := do(t, h, http.MethodGet, "/nope"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if w := do(t, h, http.MethodGet, "/hello/cache/a/b/c"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for extra segment, got %d", w.Code)
	}
	if w := do(t, h, http.MethodPost, "/hello"); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("logging.New failed: %v", err)
	}
	g, err := New(logger, Config{}, cache.NewService(cachetest.NewManager(), ""), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	do(t, g.Routes(), http.MethodGet, "/hello")

	var entry map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var e map[string]any
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		if e["path"] == "/hello" {
			entry = e
		}
	}
	if entry == nil {
		t.Fatalf("no request log entry in %q", buf.String())
	}
	if entry["method"] != http.MethodGet {
		t.Errorf("expected method GET, got %v", entry["method"])
	}
	if entry["status"] != float64(http.StatusOK) {
		t.Errorf("expected status 200, got %v", entry["status"])
	}
	if entry["bytes"] != float64(len(Greeting)) {
		t.Errorf("expected bytes %d, got %v", len(Greeting), entry["bytes"])
	}
	if id, _ := entry["request_id"].(string); id == "" {
		t.Error("expected request id")
	}
}

func TestServe_GracefulShutdown(t *testing.T) {
	g, err := New(nil, Config{ShutdownTimeout: 2 * time.Second}, cache.NewService(cachetest.NewManager(), ""), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}

	// Uptime counts from Serve, not from construction.
	time.Sleep(20 * time.Millisecond)
	beforeServe := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- g.Serve(ctx, ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/hello")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != Greeting {
		t.Errorf("expected %q, got %q", Greeting, string(body))
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	if g.startedAt.Before(beforeServe) {
		t.Errorf("expected start time at or after %v, got %v", beforeServe, g.startedAt)
	}
}

type recordingBackend struct {
	closed int
	err    error
}

func (b *recordingBackend) Close(context.Context) error {
	b.closed++
	return b.err
}

func TestClose_ReleasesBackend(t *testing.T) {
	backend := &recordingBackend{err: errors.New("already closed")}
	g, err := New(nil, Config{}, cache.NewService(cachetest.NewManager(), ""), backend)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	g.Close(context.Background())

	if backend.closed != 1 {
		t.Errorf("expected backend closed once, got %d", backend.closed)
	}

	// No backend is fine.
	newTestGateway(t, cachetest.NewManager()).Close(context.Background())
}
