package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storyforge/server/internal/api/middleware"
	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/service"
)

type DeckHandler struct {
	deckService *service.DeckService
}

func NewDeckHandler(deckService *service.DeckService) *DeckHandler {
	return &DeckHandler{deckService: deckService}
}

type DeckRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CardIDs     []string `json:"cardIds"`
}

type SetActiveDeckRequest struct {
	DeckID string `json:"deckId"`
}

func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	decks, err := h.deckService.GetDecks(r.Context(), playerID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(decks)
}

func (h *DeckHandler) Create(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req DeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Deck name is required", http.StatusBadRequest)
		return
	}

	deck, err := h.deckService.CreateDeck(r.Context(), playerID, req.Name, req.Description, req.CardIDs)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(deck)
}

func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	deck, err := h.deckService.GetDeck(r.Context(), playerID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrDeckNotFound) {
			http.Error(w, "Deck not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(deck)
}

func (h *DeckHandler) Update(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req DeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	deck, err := h.deckService.UpdateDeck(r.Context(), playerID, chi.URLParam(r, "id"), req.Name, req.Description, req.CardIDs)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDefaultDeck):
			http.Error(w, "Default deck cannot be modified", http.StatusForbidden)
		case errors.Is(err, domain.ErrDeckNotFound):
			http.Error(w, "Deck not found", http.StatusNotFound)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(deck)
}

func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	err := h.deckService.DeleteDeck(r.Context(), playerID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDefaultDeck):
			http.Error(w, "Default deck cannot be deleted", http.StatusForbidden)
		case errors.Is(err, domain.ErrDeckNotFound):
			http.Error(w, "Deck not found", http.StatusNotFound)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DeckHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SetActiveDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.deckService.SetActiveDeck(r.Context(), playerID, req.DeckID); err != nil {
		if errors.Is(err, domain.ErrDeckNotFound) {
			http.Error(w, "Deck not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
