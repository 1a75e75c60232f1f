package httputil

import (
	"net/http"
)

// WriteText writes body as a plain-text response with the given status code.
// Write errors are ignored (best-effort).
func WriteText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

// WriteOK writes body with status 200.
func WriteOK(w http.ResponseWriter, body string) {
	WriteText(w, http.StatusOK, body)
}

// NotFound answers unknown routes with the plain status text.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	WriteText(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

// MethodNotAllowed answers known routes hit with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	WriteText(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}
