package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clusterlens/clusterlens/pkg/serializer"
)

// routes wires the HTTP mux. The inventory endpoint carries the full
// middleware chain; health and metrics stay unthrottled so probes and
// scrapers are never rejected.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleDefault)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/v1/inventory",
		rateLimit(s.limiter,
			cacheControl(s.cfg.CacheMaxAge,
				http.HandlerFunc(s.handleInventory))))

	return requestID(mux)
}

// handleDefault lists the available endpoints at the root path and 404s
// everything else.
func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, CodeInvalidRequest,
			"not found", "unknown path "+r.URL.Path, false)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, map[string]any{
		"name":    s.name,
		"version": s.version,
		"endpoints": []string{
			"/health",
			"/ready",
			"/metrics",
			"/v1/inventory",
		},
	})
}
