package cache

import (
	"fmt"
	"net/http"

	apperrors "github.com/DeBrosOfficial/cachegate/pkg/errors"
	"github.com/DeBrosOfficial/cachegate/pkg/httputil"
	"github.com/DeBrosOfficial/cachegate/pkg/logging"
	"go.uber.org/zap"
)

// SetHandler handles GET /hello/cache/{key}/{value}, storing value under key.
//
// A missing cache answers 503 and any other write failure 500, with the
// error message as the body.
func (h *CacheHandlers) SetHandler(w http.ResponseWriter, r *http.Request) {
	key, err := pathParam(r, "key")
	if err != nil {
		httputil.WriteText(w, http.StatusBadRequest, "invalid key encoding")
		return
	}
	value, err := pathParam(r, "value")
	if err != nil {
		httputil.WriteText(w, http.StatusBadRequest, "invalid value encoding")
		return
	}

	if err := h.service.Put(r.Context(), key, value); err != nil {
		fields := []zap.Field{
			zap.String("key", key),
			zap.String("code", apperrors.GetErrorCode(err)),
			zap.Int("status", apperrors.StatusCode(err)),
			zap.Error(err),
		}
		if apperrors.IsCacheUnavailable(err) {
			h.logger.ComponentWarn(logging.ComponentGateway, "cache unavailable, value not stored", fields...)
		} else {
			h.logger.ComponentError(logging.ComponentGateway, "failed to put value", fields...)
		}
		apperrors.WriteHTTPError(w, err)
		return
	}

	httputil.WriteOK(w, fmt.Sprintf("Cached: %s = %s", key, value))
}
