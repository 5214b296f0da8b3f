package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/repository"
)

// ProfileService owns the progression profile record: creation, difficulty
// selection, and narrator preference passthrough. XP and perk math lives in
// ProgressionService.
type ProfileService struct {
	profiles *repository.ProfileStore
	narrator *repository.NarratorStore
}

func NewProfileService(profiles *repository.ProfileStore, narrator *repository.NarratorStore) *ProfileService {
	return &ProfileService{profiles: profiles, narrator: narrator}
}

// Bootstrap creates a fresh profile for a new account. The profile shares the
// account's ID.
func (s *ProfileService) Bootstrap(ctx context.Context, playerID uuid.UUID, name string) (*domain.PlayerProfile, error) {
	profile := domain.NewPlayerProfile(name)
	profile.ID = playerID
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Get loads the profile, recreating a default one if the record is absent or
// unreadable. A player never sees a missing profile.
func (s *ProfileService) Get(ctx context.Context, playerID uuid.UUID) (*domain.PlayerProfile, error) {
	profile, err := s.profiles.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return s.Bootstrap(ctx, playerID, "")
	}
	return profile, nil
}

func (s *ProfileService) Save(ctx context.Context, profile *domain.PlayerProfile) error {
	profile.UpdatedAt = time.Now().UnixMilli()
	return s.profiles.Save(ctx, profile)
}

// Reset wipes progression back to a fresh profile, keeping the player's name.
func (s *ProfileService) Reset(ctx context.Context, playerID uuid.UUID) (*domain.PlayerProfile, error) {
	existing, err := s.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return s.Bootstrap(ctx, playerID, existing.Name)
}

// SelectDifficulty switches the active tier. Unknown ids resolve to the
// first tier; locked tiers are rejected, not silently downgraded.
func (s *ProfileService) SelectDifficulty(ctx context.Context, playerID uuid.UUID, id domain.DifficultyID) (*domain.PlayerProfile, error) {
	id = domain.DifficultyByID(id).ID

	profile, err := s.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !domain.IsDifficultyUnlocked(id, profile.Glory) {
		return nil, domain.ErrDifficultyLocked
	}

	profile.SelectedDifficulty = id
	if err := s.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Narrator preferences are an opaque client blob; the server stores and
// returns them verbatim.
func (s *ProfileService) GetNarratorPrefs(ctx context.Context, playerID uuid.UUID) (string, error) {
	return s.narrator.Get(ctx, playerID)
}

func (s *ProfileService) SetNarratorPrefs(ctx context.Context, playerID uuid.UUID, raw string) error {
	return s.narrator.Set(ctx, playerID, raw)
}
