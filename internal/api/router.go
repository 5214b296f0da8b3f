package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/storyforge/server/internal/api/handlers"
	"github.com/storyforge/server/internal/api/middleware"
	"github.com/storyforge/server/internal/service"
	"github.com/storyforge/server/internal/websocket"
)

func NewRouter(services *service.Services, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Auth)
	profileHandler := handlers.NewProfileHandler(services.Profile, services.Progression)
	cardHandler := handlers.NewCardHandler(services.Companion)
	deckHandler := handlers.NewDeckHandler(services.Deck)
	sessionHandler := handlers.NewSessionHandler(services.Session)
	encounterHandler := handlers.NewEncounterHandler(services.Encounter)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Auth)

	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.GetProfile)
				r.Post("/reset", profileHandler.Reset)
				r.Put("/difficulty", profileHandler.SelectDifficulty)
				r.Get("/difficulties", profileHandler.GetDifficulties)
				r.Get("/perks", profileHandler.GetPerks)
				r.Post("/perks/{id}", profileHandler.ApplyPerk)
				r.Get("/achievements", profileHandler.GetAchievements)
			})

			r.Get("/cards", cardHandler.GetAll)

			r.Route("/decks", func(r chi.Router) {
				r.Get("/", deckHandler.List)
				r.Post("/", deckHandler.Create)
				r.Put("/active", deckHandler.SetActive)
				r.Get("/{id}", deckHandler.Get)
				r.Put("/{id}", deckHandler.Update)
				r.Delete("/{id}", deckHandler.Delete)
			})

			r.Route("/sessions", func(r chi.Router) {
				r.Get("/", sessionHandler.List)
				r.Post("/", sessionHandler.Save)
				r.Get("/{id}", sessionHandler.Load)
				r.Delete("/{id}", sessionHandler.Delete)
			})

			r.Route("/narrator", func(r chi.Router) {
				r.Get("/", profileHandler.GetNarratorPrefs)
				r.Put("/", profileHandler.SetNarratorPrefs)
			})

			r.Route("/encounter", func(r chi.Router) {
				r.Get("/", encounterHandler.Current)
				r.Post("/start", encounterHandler.Start)
				r.Post("/continue", encounterHandler.Continue)
				r.Post("/play", encounterHandler.Play)
				r.Post("/choose", encounterHandler.Choose)
				r.Post("/next", encounterHandler.Next)
				r.Post("/recruit", encounterHandler.Recruit)
				r.Post("/end", encounterHandler.End)
			})
		})

		// WebSocket endpoint
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
