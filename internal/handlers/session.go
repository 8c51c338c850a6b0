package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/hollowoak/manor-engine/internal/storage"
	"github.com/hollowoak/manor-engine/pkg/state"
	"github.com/hollowoak/manor-engine/pkg/world"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes a response body, logging encode failures.
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// SessionHandler manages game session lifecycle.
//
// Routes:
// POST /v1/session         - Create a new session
// GET /v1/session/{id}     - Read a session by ID
// DELETE /v1/session/{id}  - Delete a session by ID
type SessionHandler struct {
	storage      storage.Storage
	logger       *slog.Logger
	worlds       map[string]*world.World // World name → loaded catalog
	defaultWorld string
}

func NewSessionHandler(logger *slog.Logger, s storage.Storage, worlds map[string]*world.World, defaultWorld string) *SessionHandler {
	return &SessionHandler{
		storage:      s,
		logger:       logger,
		worlds:       worlds,
		defaultWorld: defaultWorld,
	}
}

type createSessionRequest struct {
	World string `json:"world,omitempty"`
}

func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.TrimPrefix(r.URL.Path, "/v1/session")
	var sessionID uuid.UUID
	if idStr := strings.Trim(path, "/"); idStr != "" {
		var err error
		sessionID, err = uuid.Parse(idStr)
		if err != nil {
			h.logger.Warn("Invalid session ID", "id", idStr, "error", err)
			writeJSON(w, h.logger, http.StatusBadRequest, ErrorResponse{Error: "Invalid session ID format"})
			return
		}
	}

	switch r.Method {
	case http.MethodPost:
		h.handleCreate(w, r)
	case http.MethodGet:
		if sessionID == uuid.Nil {
			writeJSON(w, h.logger, http.StatusBadRequest, ErrorResponse{Error: "Session ID is required"})
			return
		}
		h.handleRead(w, r, sessionID)
	case http.MethodDelete:
		if sessionID == uuid.Nil {
			writeJSON(w, h.logger, http.StatusBadRequest, ErrorResponse{Error: "Session ID is required"})
			return
		}
		h.handleDelete(w, r, sessionID)
	default:
		writeJSON(w, h.logger, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
	}
}

func (h *SessionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.Body != nil {
		// An empty body starts a session in the default world.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	name := req.World
	if name == "" {
		name = h.defaultWorld
	}
	wld, ok := h.worlds[name]
	if !ok {
		writeJSON(w, h.logger, http.StatusNotFound, ErrorResponse{Error: "Unknown world: " + name})
		return
	}

	gs := state.NewGameState(wld)
	if err := h.storage.SaveGameState(r.Context(), gs.ID, gs); err != nil {
		h.logger.Error("Failed to save new session", "error", err)
		writeJSON(w, h.logger, http.StatusInternalServerError, ErrorResponse{Error: "Failed to create session"})
		return
	}

	h.logger.Info("Session created", "session_id", gs.ID.String(), "world", name)
	writeJSON(w, h.logger, http.StatusCreated, gs)
}

func (h *SessionHandler) handleRead(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	gs, err := h.storage.LoadGameState(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load session", "session_id", id.String(), "error", err)
		writeJSON(w, h.logger, http.StatusInternalServerError, ErrorResponse{Error: "Failed to load session"})
		return
	}
	if gs == nil {
		writeJSON(w, h.logger, http.StatusNotFound, ErrorResponse{Error: "Session not found"})
		return
	}
	writeJSON(w, h.logger, http.StatusOK, gs)
}

func (h *SessionHandler) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.storage.DeleteGameState(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete session", "session_id", id.String(), "error", err)
		writeJSON(w, h.logger, http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete session"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
