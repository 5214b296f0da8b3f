package service

import (
	"math/rand"

	"github.com/storyforge/server/internal/config"
	"github.com/storyforge/server/internal/narrative"
	"github.com/storyforge/server/internal/repository"
)

type Services struct {
	Auth        *AuthService
	Profile     *ProfileService
	Progression *ProgressionService
	Challenge   *ChallengeService
	Companion   *CompanionService
	Deck        *DeckService
	Session     *SessionService
	Encounter   *EncounterService
}

func NewServices(stores *repository.Stores, cfg *config.Config, gen narrative.Generator, rng *rand.Rand, events EventSink) *Services {
	profile := NewProfileService(stores.Profile, stores.Narrator)
	progression := NewProgressionService(profile)
	challenge := NewChallengeService(gen, rng)
	companion := NewCompanionService(stores.Companion, gen)
	deck := NewDeckService(stores.Deck, stores.Companion, rng)
	session := NewSessionService(stores.Game)

	return &Services{
		Auth:        NewAuthService(stores.Player, stores.Session, profile, cfg),
		Profile:     profile,
		Progression: progression,
		Challenge:   challenge,
		Companion:   companion,
		Deck:        deck,
		Session:     session,
		Encounter:   NewEncounterService(profile, progression, challenge, companion, deck, session, gen, rng, events),
	}
}
