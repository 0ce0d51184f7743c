package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SpicyMarinara/rpg-companion/internal/config"
	"github.com/SpicyMarinara/rpg-companion/internal/handlers"
	"github.com/SpicyMarinara/rpg-companion/internal/logger"
	"github.com/SpicyMarinara/rpg-companion/internal/middleware"
	"github.com/SpicyMarinara/rpg-companion/internal/storage"
	"github.com/SpicyMarinara/rpg-companion/pkg/archetype"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	log.Info("Starting RPG Companion API",
		"port", cfg.Port,
		"environment", cfg.Environment)

	if err := archetype.Validate(); err != nil {
		log.Error("Archetype catalog is inconsistent", "error", err)
		os.Exit(1)
	}

	store := storage.NewRedisStorage(cfg.RedisURL, cfg.SessionTTL, log)

	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()
	if err := store.WaitForConnection(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, log)
	mux.Handle("/health", healthHandler)

	archetypeHandler := handlers.NewArchetypeHandler(log)
	mux.Handle("/v1/archetypes", archetypeHandler)
	mux.Handle("/v1/archetypes/", archetypeHandler)

	compatibilityHandler := handlers.NewCompatibilityHandler(log)
	mux.Handle("/v1/compatibility", compatibilityHandler)

	sessionHandler := handlers.NewSessionHandler(log, store)
	mux.Handle("/v1/sessions", sessionHandler)
	mux.Handle("/v1/sessions/", sessionHandler)

	handler := middleware.Logger(log, mux)
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
