package api

import (
	"net/http"
)

func (s *Server) handleNERStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		jsonError(w, "ner stats unavailable", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"backend": s.cfg.NERBackend,
		"stats":   s.stats.Snapshot(),
	})
}
