package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowoak/manor-engine/internal/storage"
	"github.com/hollowoak/manor-engine/pkg/engine"
	"github.com/hollowoak/manor-engine/pkg/state"
)

func newCommandHandler(t *testing.T) (*CommandHandler, *storage.MockStorage, *state.GameState) {
	t.Helper()
	w := handlersTestWorld()
	mock := storage.NewMockStorage()
	engines := map[string]*engine.Engine{
		w.Name: engine.New(w, testLogger()),
	}

	gs := state.NewGameState(w)
	require.NoError(t, mock.SaveGameState(context.Background(), gs.ID, gs))

	return NewCommandHandler(testLogger(), mock, engines), mock, gs
}

func postCommand(t *testing.T, handler *CommandHandler, id uuid.UUID, text string) *httptest.ResponseRecorder {
	t.Helper()
	body := fmt.Sprintf(`{"session_id": %q, "text": %q}`, id, text)
	req := httptest.NewRequest(http.MethodPost, "/v1/command", bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCommandMovesAndPersists(t *testing.T) {
	handler, mock, gs := newCommandHandler(t)

	rec := postCommand(t, handler, gs.ID, "go north")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp commandResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Result.Success)
	assert.True(t, resp.Result.RoomChanged)
	assert.Equal(t, "study", resp.State.Room)
	assert.Equal(t, 1, resp.State.Turns)

	saved, err := mock.LoadGameState(context.Background(), gs.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "study", saved.Room)
	assert.Equal(t, 1, saved.Turns)
}

func TestFailedCommandNotPersisted(t *testing.T) {
	handler, mock, gs := newCommandHandler(t)

	rec := postCommand(t, handler, gs.ID, "go west")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp commandResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Result.Success)
	assert.Equal(t, engine.FailPrecondition, resp.Result.Code)

	saved, err := mock.LoadGameState(context.Background(), gs.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "hall", saved.Room, "failed command must not move the stored session")
	assert.Equal(t, 0, saved.Turns, "failed command must not spend a turn")
}

func TestUnknownVerbReportedNotPersisted(t *testing.T) {
	handler, mock, gs := newCommandHandler(t)

	rec := postCommand(t, handler, gs.ID, "tango loudly")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp commandResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Result.Success)
	assert.Equal(t, engine.FailUnknownVerb, resp.Result.Code)

	saved, err := mock.LoadGameState(context.Background(), gs.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, saved.Turns)
}

func TestCommandSessionNotFound(t *testing.T) {
	handler, _, _ := newCommandHandler(t)

	rec := postCommand(t, handler, uuid.New(), "look")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommandBadRequest(t *testing.T) {
	handler, _, gs := newCommandHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"session_id": `},
		{"missing session", `{"text": "look"}`},
		{"missing text", fmt.Sprintf(`{"session_id": %q}`, gs.ID)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/command", bytes.NewReader([]byte(tc.body)))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCommandMethodNotAllowed(t *testing.T) {
	handler, _, _ := newCommandHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/command", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
