package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/storyforge/server/internal/api"
	"github.com/storyforge/server/internal/config"
	"github.com/storyforge/server/internal/narrative"
	"github.com/storyforge/server/internal/repository"
	"github.com/storyforge/server/internal/repository/postgres"
	"github.com/storyforge/server/internal/service"
	"github.com/storyforge/server/internal/websocket"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize storage
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	stores := repository.NewStores(postgres.NewStore(db))

	// Narrative generation degrades to templates without an API key.
	var gen narrative.Generator = narrative.Disabled{}
	if cfg.OpenRouterAPIKey != "" {
		gen = narrative.NewOpenRouterClient(narrative.OpenRouterConfig{
			BaseURL: cfg.OpenRouterBaseURL,
			APIKey:  cfg.OpenRouterAPIKey,
			Model:   cfg.OpenRouterModel,
		})
	} else {
		log.Println("OPENROUTER_API_KEY not set; narrative generation disabled, using templates")
	}

	// Initialize WebSocket hub
	hub := websocket.NewHub()

	// Initialize services
	rng := service.NewGameRand(time.Now().UnixNano())
	services := service.NewServices(stores, cfg, gen, rng, hub)

	// Initialize router
	router := api.NewRouter(services, hub)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	hub.Stop()

	log.Println("Server stopped")
}
