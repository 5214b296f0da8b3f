package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/storyforge/server/internal/api/middleware"
	"github.com/storyforge/server/internal/service"
)

type CardHandler struct {
	companionService *service.CompanionService
}

func NewCardHandler(companionService *service.CompanionService) *CardHandler {
	return &CardHandler{companionService: companionService}
}

// GetAll returns the full collection with companion overlays merged in.
func (h *CardHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cards, err := h.companionService.EnrichedCollection(r.Context(), playerID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}
