package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/storyforge/server/internal/api/middleware"
	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/service"
)

type EncounterHandler struct {
	encounterService *service.EncounterService
}

func NewEncounterHandler(encounterService *service.EncounterService) *EncounterHandler {
	return &EncounterHandler{encounterService: encounterService}
}

func encounterError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNoActiveSession):
		http.Error(w, "No active session", http.StatusConflict)
	case errors.Is(err, domain.ErrWrongPhase):
		http.Error(w, "Action not valid in current phase", http.StatusConflict)
	case errors.Is(err, domain.ErrCardNotInHand):
		http.Error(w, "Card not in hand", http.StatusBadRequest)
	case errors.Is(err, domain.ErrTooManyCards):
		http.Error(w, "Invalid number of cards", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidPath):
		http.Error(w, "Invalid skill path", http.StatusBadRequest)
	case errors.Is(err, domain.ErrNoPendingRecruit):
		http.Error(w, "No pending recruit offer", http.StatusConflict)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *EncounterHandler) Current(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	session, err := h.encounterService.Current(r.Context(), playerID)
	if err != nil {
		encounterError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

func (h *EncounterHandler) Start(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	session, err := h.encounterService.StartSession(r.Context(), playerID)
	if err != nil {
		encounterError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(session)
}

func (h *EncounterHandler) Continue(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	session, err := h.encounterService.ContinueToChallenge(r.Context(), playerID)
	if err != nil {
		encounterError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

type PlayCardsRequest struct {
	CardIDs []string `json:"cardIds"`
}

func (h *EncounterHandler) Play(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req PlayCardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.encounterService.PlayCards(r.Context(), playerID, req.CardIDs)
	if err != nil {
		encounterError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

type ChooseActionRequest struct {
	Path domain.SkillPath `json:"path"`
}

func (h *EncounterHandler) Choose(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req ChooseActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	outcome, err := h.encounterService.ChooseAction(r.Context(), playerID, req.Path)
	if err != nil {
		encounterError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(outcome)
}

func (h *EncounterHandler) Next(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	session, err := h.encounterService.NextEncounter(r.Context(), playerID)
	if err != nil {
		encounterError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

func (h *EncounterHandler) Recruit(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	card, err := h.encounterService.AcceptRecruit(r.Context(), playerID)
	if err != nil {
		encounterError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(card)
}

func (h *EncounterHandler) End(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.encounterService.EndSession(r.Context(), playerID); err != nil {
		encounterError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
