package gateway

import (
	"net/http"

	"github.com/DeBrosOfficial/cachegate/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes returns the http.Handler with all routes and middleware configured
func (g *Gateway) Routes() http.Handler {
	return g.router
}

func (g *Gateway) newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(g.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.NotFound(httputil.NotFound)
	r.MethodNotAllowed(httputil.MethodNotAllowed)

	r.Get("/hello", g.helloHandler)
	// Static segment wins over {key}, so "health" is never read as a key.
	r.Get("/hello/cache/health", g.cache.HealthHandler)
	r.Get("/hello/cache/{key}", g.cache.GetHandler)
	r.Get("/hello/cache/{key}/{value}", g.cache.SetHandler)

	return r
}

func (g *Gateway) helloHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteOK(w, Greeting)
}
