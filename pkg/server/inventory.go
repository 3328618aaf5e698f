package server

import (
	"fmt"
	"net/http"

	"github.com/clusterlens/clusterlens/pkg/auditor"
	"github.com/clusterlens/clusterlens/pkg/serializer"
)

// handleInventory serves the latest audit report. An optional kind query
// parameter (pods, configmaps, nodes) restricts the response to a single
// resource kind.
func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, CodeMethodNotAllowed,
			"method not allowed", fmt.Sprintf("method %s is not supported", r.Method), false)
		return
	}

	s.mu.RLock()
	report := s.latest
	s.mu.RUnlock()

	if report == nil {
		writeError(w, r, http.StatusServiceUnavailable, CodeServiceUnavailable,
			"no report available", "waiting for the first audit to complete", true)
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind == "" {
		serializer.RespondJSON(w, http.StatusOK, report)
		return
	}

	switch kind {
	case "pods":
		serializer.RespondJSON(w, http.StatusOK, report.Inventory.Pods)
	case "configmaps":
		serializer.RespondJSON(w, http.StatusOK, report.Inventory.ConfigMaps)
	case "nodes":
		serializer.RespondJSON(w, http.StatusOK, report.Inventory.Nodes)
	default:
		writeError(w, r, http.StatusBadRequest, CodeInvalidRequest,
			"invalid kind", fmt.Sprintf("unknown resource kind %q, expected pods, configmaps or nodes", kind), false)
	}
}

// setReport stores the result of an audit run and marks the server ready.
func (s *Server) setReport(report *auditor.Report) {
	s.mu.Lock()
	s.latest = report
	s.ready = true
	s.mu.Unlock()
}
