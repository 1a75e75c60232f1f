package cache

import (
	"net/http"

	"github.com/DeBrosOfficial/cachegate/pkg/httputil"
)

// GetHandler handles GET /hello/cache/{key}. It answers with the stored
// value, or "Not found" when the key is absent or the cache is unreachable.
func (h *CacheHandlers) GetHandler(w http.ResponseWriter, r *http.Request) {
	key, err := pathParam(r, "key")
	if err != nil {
		httputil.WriteText(w, http.StatusBadRequest, "invalid key encoding")
		return
	}

	value, ok := h.service.Get(r.Context(), key)
	if !ok {
		httputil.WriteOK(w, MsgNotFound)
		return
	}
	httputil.WriteOK(w, value)
}
