package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/hollowoak/manor-engine/internal/storage"
	"github.com/hollowoak/manor-engine/pkg/command"
	"github.com/hollowoak/manor-engine/pkg/engine"
	"github.com/hollowoak/manor-engine/pkg/state"
)

// CommandHandler runs one player command against a stored session.
//
// POST /v1/command
type CommandHandler struct {
	storage storage.Storage
	logger  *slog.Logger
	engines map[string]*engine.Engine // World name → engine
}

func NewCommandHandler(logger *slog.Logger, s storage.Storage, engines map[string]*engine.Engine) *CommandHandler {
	return &CommandHandler{
		storage: s,
		logger:  logger,
		engines: engines,
	}
}

type commandRequest struct {
	SessionID uuid.UUID `json:"session_id"`
	Text      string    `json:"text"`
}

type commandResponse struct {
	Result *engine.ActionResult `json:"result"`
	State  *state.GameState     `json:"state"`
}

func (h *CommandHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeJSON(w, h.logger, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
		return
	}

	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.SessionID == uuid.Nil {
		writeJSON(w, h.logger, http.StatusBadRequest, ErrorResponse{Error: "session_id is required"})
		return
	}
	if req.Text == "" {
		writeJSON(w, h.logger, http.StatusBadRequest, ErrorResponse{Error: "text is required"})
		return
	}

	gs, err := h.storage.LoadGameState(r.Context(), req.SessionID)
	if err != nil {
		h.logger.Error("Failed to load session", "session_id", req.SessionID.String(), "error", err)
		writeJSON(w, h.logger, http.StatusInternalServerError, ErrorResponse{Error: "Failed to load session"})
		return
	}
	if gs == nil {
		writeJSON(w, h.logger, http.StatusNotFound, ErrorResponse{Error: "Session not found"})
		return
	}

	eng, ok := h.engines[gs.World]
	if !ok {
		h.logger.Error("Session references unknown world", "session_id", req.SessionID.String(), "world", gs.World)
		writeJSON(w, h.logger, http.StatusInternalServerError, ErrorResponse{Error: "World not available: " + gs.World})
		return
	}

	cmd := command.Parse(req.Text)
	result := eng.Execute(cmd, gs)

	// Failed commands leave the session untouched, so only successful
	// turns are written back.
	if result.Success {
		if err := h.storage.SaveGameState(r.Context(), gs.ID, gs); err != nil {
			h.logger.Error("Failed to save session", "session_id", gs.ID.String(), "error", err)
			writeJSON(w, h.logger, http.StatusInternalServerError, ErrorResponse{Error: "Failed to save session"})
			return
		}
	}

	h.logger.Debug("Command executed",
		"session_id", gs.ID.String(),
		"verb", string(cmd.Verb),
		"success", result.Success,
		"turn", gs.Turns)
	writeJSON(w, h.logger, http.StatusOK, commandResponse{Result: result, State: gs})
}
