package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/hollowoak/manor-engine/pkg/state"
	"github.com/hollowoak/manor-engine/pkg/world"
)

// MockStorage is an in-memory Storage for tests and local development.
type MockStorage struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*state.GameState
	worlds   map[string]*world.World
}

var _ Storage = (*MockStorage)(nil)

func NewMockStorage() *MockStorage {
	return &MockStorage{
		sessions: make(map[uuid.UUID]*state.GameState),
		worlds:   make(map[string]*world.World),
	}
}

// AddWorld registers a world under a filename for GetWorld lookups.
func (m *MockStorage) AddWorld(filename string, w *world.World) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.worlds[filename] = w
}

func (m *MockStorage) Ping(ctx context.Context) error { return nil }
func (m *MockStorage) Close() error                   { return nil }

func (m *MockStorage) SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = gs.Clone()
	return nil
}

func (m *MockStorage) LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	gs, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	return gs.Clone(), nil
}

func (m *MockStorage) DeleteGameState(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MockStorage) ListWorlds(ctx context.Context) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.worlds))
	for filename, w := range m.worlds {
		out[w.Name] = filename
	}
	return out, nil
}

func (m *MockStorage) GetWorld(ctx context.Context, filename string) (*world.World, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.worlds[filename]
	if !ok {
		return nil, fmt.Errorf("world not found: %s", filename)
	}
	return w, nil
}
