package handlers

import (
	"log/slog"
	"net/http"
)

// WorldsHandler lists the worlds available for new sessions.
//
// GET /v1/worlds returns a map of world name to source filename.
type WorldsHandler struct {
	logger *slog.Logger
	worlds map[string]string
}

func NewWorldsHandler(logger *slog.Logger, worlds map[string]string) *WorldsHandler {
	return &WorldsHandler{
		logger: logger,
		worlds: worlds,
	}
}

func (h *WorldsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		writeJSON(w, h.logger, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
		return
	}
	writeJSON(w, h.logger, http.StatusOK, h.worlds)
}
