package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storyforge/server/internal/api/middleware"
	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/service"
)

type ProfileHandler struct {
	profileService     *service.ProfileService
	progressionService *service.ProgressionService
}

func NewProfileHandler(profileService *service.ProfileService, progressionService *service.ProgressionService) *ProfileHandler {
	return &ProfileHandler{
		profileService:     profileService,
		progressionService: progressionService,
	}
}

type ProfileResponse struct {
	Profile    *domain.PlayerProfile `json:"profile"`
	XPProgress domain.XPProgress     `json:"xpProgress"`
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.profileService.Get(r.Context(), playerID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ProfileResponse{
		Profile:    profile,
		XPProgress: domain.XPProgressInLevel(profile.TotalXP),
	})
}

func (h *ProfileHandler) Reset(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.profileService.Reset(r.Context(), playerID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ProfileResponse{
		Profile:    profile,
		XPProgress: domain.XPProgressInLevel(profile.TotalXP),
	})
}

type SelectDifficultyRequest struct {
	Difficulty domain.DifficultyID `json:"difficulty"`
}

func (h *ProfileHandler) SelectDifficulty(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SelectDifficultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.profileService.SelectDifficulty(r.Context(), playerID, req.Difficulty)
	if err != nil {
		if errors.Is(err, domain.ErrDifficultyLocked) {
			http.Error(w, "Difficulty not yet unlocked", http.StatusForbidden)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

type DifficultyEntry struct {
	domain.DifficultyTier
	Unlocked bool `json:"unlocked"`
	Selected bool `json:"selected"`
}

type DifficultiesResponse struct {
	Tiers        []DifficultyEntry      `json:"tiers"`
	NextToUnlock *domain.DifficultyTier `json:"nextToUnlock,omitempty"`
}

func (h *ProfileHandler) GetDifficulties(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.profileService.Get(r.Context(), playerID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	entries := make([]DifficultyEntry, 0, len(domain.DifficultyTiers))
	for _, tier := range domain.DifficultyTiers {
		entries = append(entries, DifficultyEntry{
			DifficultyTier: tier,
			Unlocked:       profile.Glory >= tier.UnlockGlory,
			Selected:       tier.ID == profile.SelectedDifficulty,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DifficultiesResponse{
		Tiers:        entries,
		NextToUnlock: domain.NextDifficultyToUnlock(profile.Glory),
	})
}

type PerkEntry struct {
	domain.PlayerPerk
	Available bool `json:"available"`
}

type PerksResponse struct {
	Perks               []PerkEntry `json:"perks"`
	AvailablePerkPoints int         `json:"availablePerkPoints"`
}

func (h *ProfileHandler) GetPerks(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.profileService.Get(r.Context(), playerID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	entries := make([]PerkEntry, 0, len(domain.PerkCatalog))
	for _, perk := range domain.PerkCatalog {
		acquired := profile.HasPerk(perk.ID)
		entry := PerkEntry{PlayerPerk: perk}
		entry.Acquired = acquired
		entry.Available = !acquired &&
			profile.AvailablePerkPoints > 0 &&
			profile.Level >= perk.Requirement
		entries = append(entries, entry)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PerksResponse{
		Perks:               entries,
		AvailablePerkPoints: profile.AvailablePerkPoints,
	})
}

func (h *ProfileHandler) ApplyPerk(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	perkID := chi.URLParam(r, "id")
	profile, err := h.progressionService.ApplyPerk(r.Context(), playerID, perkID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownPerk):
			http.Error(w, "Unknown perk", http.StatusNotFound)
		case errors.Is(err, domain.ErrPerkAlreadyOwned):
			http.Error(w, "Perk already acquired", http.StatusConflict)
		case errors.Is(err, domain.ErrNoPerkPoints):
			http.Error(w, "No available perk points", http.StatusConflict)
		case errors.Is(err, domain.ErrPerkLevelTooLow):
			http.Error(w, "Level too low for this perk", http.StatusConflict)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

func (h *ProfileHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.profileService.Get(r.Context(), playerID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.Achievements)
}

// Narrator preferences are an opaque JSON blob owned by the client.
func (h *ProfileHandler) GetNarratorPrefs(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	raw, err := h.profileService.GetNarratorPrefs(r.Context(), playerID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if raw == "" {
		raw = "{}"
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(raw))
}

func (h *ProfileHandler) SetNarratorPrefs(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.GetPlayerID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 64*1024))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !json.Valid(body) {
		http.Error(w, "Body must be valid JSON", http.StatusBadRequest)
		return
	}

	if err := h.profileService.SetNarratorPrefs(r.Context(), playerID, string(body)); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
