package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hollowoak/manor-engine/pkg/state"
	"github.com/hollowoak/manor-engine/pkg/world"
)

// Session records expire if untouched; every save refreshes the TTL.
const sessionTTL = 24 * time.Hour

// RedisStorage implements Storage using Redis for game sessions and the
// filesystem for world catalogs.
type RedisStorage struct {
	client  *redis.Client
	logger  *slog.Logger
	dataDir string
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance
func NewRedisStorage(redisURL string, dataDir string, logger *slog.Logger) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	if dataDir == "" {
		dataDir = "./data"
	}

	return &RedisStorage{
		client:  rdb,
		logger:  logger,
		dataDir: dataDir,
	}
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

// Session operations (Redis-backed)

func sessionKey(id uuid.UUID) string {
	return "session:" + id.String()
}

func (r *RedisStorage) SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error {
	gs.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(gs)
	if err != nil {
		r.logger.Error("Failed to marshal game state", "uuid", id, "error", err)
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(id), string(data), sessionTTL).Err(); err != nil {
		r.logger.Error("Failed to save game state", "uuid", id, "error", err)
		return fmt.Errorf("failed to save game state: %w", err)
	}
	return nil
}

func (r *RedisStorage) LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error) {
	cmd := r.client.Get(ctx, sessionKey(id))
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			r.logger.Warn("Game state not found", "uuid", id)
			return nil, nil // Not found is not an error
		}
		r.logger.Error("Failed to load game state", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load game state: %w", err)
	}

	data := cmd.Val()
	if data == "" {
		r.logger.Warn("Game state not found", "uuid", id)
		return nil, nil
	}

	var gs state.GameState
	if err := json.Unmarshal([]byte(data), &gs); err != nil {
		r.logger.Error("Failed to unmarshal game state", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}
	return &gs, nil
}

func (r *RedisStorage) DeleteGameState(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		r.logger.Error("Failed to delete game state", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete game state: %w", err)
	}
	return nil
}

// World catalog operations (filesystem-backed)

func (r *RedisStorage) ListWorlds(ctx context.Context) (map[string]string, error) {
	worldsDir := filepath.Join(r.dataDir, "worlds")
	worlds := make(map[string]string)

	err := filepath.WalkDir(worldsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		w, err := world.Load(path)
		if err != nil {
			r.logger.Warn("Skipping invalid world file", "path", path, "error", err)
			return nil
		}

		worlds[w.Name] = filepath.Base(path)
		return nil
	})

	if err != nil {
		r.logger.Error("Failed to walk worlds directory", "error", err)
		return nil, fmt.Errorf("failed to list worlds: %w", err)
	}

	return worlds, nil
}

func (r *RedisStorage) GetWorld(ctx context.Context, filename string) (*world.World, error) {
	path := filepath.Join(r.dataDir, "worlds", filename)
	w, err := world.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load world %s: %w", filename, err)
	}
	return w, nil
}
