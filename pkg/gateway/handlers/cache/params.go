package cache

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// pathParam returns the decoded URL parameter name.
//
// chi matches on r.URL.RawPath when it is set, and the parameter is then
// still percent-encoded. When RawPath is empty the router already saw the
// decoded path, so the value is returned as is.
func pathParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}
