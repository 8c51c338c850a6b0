package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/hollowoak/manor-engine/pkg/state"
	"github.com/hollowoak/manor-engine/pkg/world"
)

// Storage combines session persistence (Redis) with world catalog
// loading (filesystem). The engine never touches this interface; the
// HTTP layer owns the load-execute-save cycle.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Session operations (Redis-backed)
	SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error
	LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error)
	DeleteGameState(ctx context.Context, id uuid.UUID) error

	// World catalog operations (filesystem-backed)
	ListWorlds(ctx context.Context) (map[string]string, error)
	GetWorld(ctx context.Context, filename string) (*world.World, error)
}
