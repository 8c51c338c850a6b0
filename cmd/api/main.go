package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hollowoak/manor-engine/internal/config"
	"github.com/hollowoak/manor-engine/internal/handlers"
	"github.com/hollowoak/manor-engine/internal/logger"
	"github.com/hollowoak/manor-engine/internal/middleware"
	"github.com/hollowoak/manor-engine/internal/storage"
	"github.com/hollowoak/manor-engine/pkg/engine"
	"github.com/hollowoak/manor-engine/pkg/world"
)

func main() {
	cfg := config.Load()

	log := logger.Setup(cfg)

	log.Info("Starting Manor Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"data_dir", cfg.DataDir)

	store := storage.NewRedisStorage(cfg.RedisURL, cfg.DataDir, log)
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()

	if err := store.WaitForConnection(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}

	// World files are validated and loaded once at startup; sessions
	// only ever reference worlds loaded here.
	available, err := store.ListWorlds(storageCtx)
	if err != nil {
		log.Error("Failed to list worlds", "error", err)
		os.Exit(1)
	}
	if len(available) == 0 {
		log.Error("No valid world files found", "data_dir", cfg.DataDir)
		os.Exit(1)
	}

	worlds := make(map[string]*world.World, len(available))
	engines := make(map[string]*engine.Engine, len(available))
	defaultWorld := ""
	for name, filename := range available {
		w, err := store.GetWorld(storageCtx, filename)
		if err != nil {
			log.Error("Failed to load world", "file", filename, "error", err)
			os.Exit(1)
		}
		worlds[name] = w
		engines[name] = engine.New(w, log)
		if filename == cfg.WorldFile {
			defaultWorld = name
		}
		log.Info("World loaded", "name", name, "file", filename,
			"rooms", len(w.Rooms), "objects", len(w.Objects))
	}
	if defaultWorld == "" {
		log.Error("Default world file not found", "file", cfg.WorldFile)
		os.Exit(1)
	}

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(log, store)
	mux.Handle("/health", healthHandler)

	sessionHandler := handlers.NewSessionHandler(log, store, worlds, defaultWorld)
	mux.Handle("/v1/session", sessionHandler)
	mux.Handle("/v1/session/", sessionHandler)

	commandHandler := handlers.NewCommandHandler(log, store, engines)
	mux.Handle("/v1/command", commandHandler)

	worldsHandler := handlers.NewWorldsHandler(log, available)
	mux.Handle("/v1/worlds", worldsHandler)

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
