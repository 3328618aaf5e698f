package server

import (
	"net/http"

	"github.com/clusterlens/clusterlens/pkg/serializer"
)

type healthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// handleHealth reports liveness. It always succeeds while the process
// is serving.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Name:    s.name,
		Version: s.version,
	})
}

// handleReady reports readiness. The server is ready once the first
// audit has completed.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()

	if !ready {
		writeError(w, r, http.StatusServiceUnavailable, CodeServiceUnavailable,
			"not ready", "waiting for the first audit to complete", true)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, healthResponse{
		Status:  "ready",
		Name:    s.name,
		Version: s.version,
	})
}
