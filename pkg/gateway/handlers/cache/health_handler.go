package cache

import (
	"net/http"

	"github.com/DeBrosOfficial/cachegate/pkg/httputil"
)

// HealthHandler handles GET /hello/cache/health. It always answers 200; the
// body says whether the cache answered its liveness probe.
func (h *CacheHandlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.service.IsConnected(r.Context()) {
		httputil.WriteOK(w, MsgConnected)
		return
	}
	httputil.WriteOK(w, MsgConnectionFailed)
}
