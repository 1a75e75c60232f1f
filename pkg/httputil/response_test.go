package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteText(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		body       string
		wantStatus int
	}{
		{"ok", http.StatusOK, "Hello", http.StatusOK},
		{"empty body", http.StatusOK, "", http.StatusOK},
		{"unavailable", http.StatusServiceUnavailable, "cache 'c' is not available", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteText(w, tt.code, tt.body)

			if w.Code != tt.wantStatus {
				t.Errorf("WriteText() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
				t.Errorf("WriteText() Content-Type = %v, want text/plain", ct)
			}
			if got := w.Body.String(); got != tt.body {
				t.Errorf("WriteText() body = %q, want %q", got, tt.body)
			}
		})
	}
}

func TestWriteOK(t *testing.T) {
	w := httptest.NewRecorder()
	WriteOK(w, "Cached: a = b")

	if w.Code != http.StatusOK {
		t.Errorf("WriteOK() status = %v, want 200", w.Code)
	}
	if w.Body.String() != "Cached: a = b" {
		t.Errorf("WriteOK() body = %q", w.Body.String())
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	NotFound(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound || w.Body.String() != "Not Found" {
		t.Errorf("NotFound() = %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	MethodNotAllowed(w, httptest.NewRequest(http.MethodPost, "/hello", nil))
	if w.Code != http.StatusMethodNotAllowed || w.Body.String() != "Method Not Allowed" {
		t.Errorf("MethodNotAllowed() = %d %q", w.Code, w.Body.String())
	}
}
