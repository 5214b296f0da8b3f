package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/storyforge/server/internal/domain"
)

// Key layout. One logical record per key; player-scoped records embed the
// player id.
const (
	keyPlayerByID    = "player:id:%s"
	keyPlayerByName  = "player:name:%s"
	keyAuthSession   = "authsession:%s"
	keyProfile       = "profile:%s"
	keyCompanions    = "companions:%s"
	keyRecruits      = "recruits:%s"
	keyDecks         = "decks:%s"
	keyActiveDeck    = "activedeck:%s"
	keySessions      = "sessions:%s"
	keyAutosave      = "autosave:%s"
	keyNarratorPrefs = "narrator:%s"
)

// Stores bundles the typed record stores the services depend on.
type Stores struct {
	Player    *PlayerStore
	Session   *AuthSessionStore
	Profile   *ProfileStore
	Companion *CompanionStore
	Deck      *DeckStore
	Game      *GameSessionStore
	Narrator  *NarratorStore
}

func NewStores(kv KVStore) *Stores {
	return &Stores{
		Player:    &PlayerStore{kv: kv},
		Session:   &AuthSessionStore{kv: kv},
		Profile:   &ProfileStore{kv: kv},
		Companion: &CompanionStore{kv: kv},
		Deck:      &DeckStore{kv: kv},
		Game:      &GameSessionStore{kv: kv},
		Narrator:  &NarratorStore{kv: kv},
	}
}

func getJSON[T any](ctx context.Context, kv KVStore, key string, out *T) (bool, error) {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		// Corrupt stored JSON degrades to "record absent"; callers fall back
		// to fresh defaults.
		log.Printf("ERROR [repository.getJSON] corrupt record at %s: %v", key, err)
		return false, nil
	}
	return true, nil
}

func setJSON(ctx context.Context, kv KVStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, string(raw))
}

// PlayerStore persists accounts plus a display-name index key.
type PlayerStore struct {
	kv KVStore
}

func (s *PlayerStore) Create(ctx context.Context, player *domain.Player) error {
	if err := setJSON(ctx, s.kv, fmt.Sprintf(keyPlayerByID, player.ID), player); err != nil {
		return err
	}
	return setJSON(ctx, s.kv, fmt.Sprintf(keyPlayerByName, player.DisplayName), player.ID.String())
}

func (s *PlayerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	var player domain.Player
	ok, err := getJSON(ctx, s.kv, fmt.Sprintf(keyPlayerByID, id), &player)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &player, nil
}

func (s *PlayerStore) GetByDisplayName(ctx context.Context, name string) (*domain.Player, error) {
	var idStr string
	ok, err := getJSON(ctx, s.kv, fmt.Sprintf(keyPlayerByName, name), &idStr)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// AuthSessionStore keeps one refresh session per player.
type AuthSessionStore struct {
	kv KVStore
}

func (s *AuthSessionStore) Put(ctx context.Context, session *domain.AuthSession) error {
	return setJSON(ctx, s.kv, fmt.Sprintf(keyAuthSession, session.PlayerID), session)
}

func (s *AuthSessionStore) GetByPlayerID(ctx context.Context, playerID uuid.UUID) (*domain.AuthSession, error) {
	var session domain.AuthSession
	ok, err := getJSON(ctx, s.kv, fmt.Sprintf(keyAuthSession, playerID), &session)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &session, nil
}

func (s *AuthSessionStore) DeleteByPlayerID(ctx context.Context, playerID uuid.UUID) error {
	return s.kv.Delete(ctx, fmt.Sprintf(keyAuthSession, playerID))
}

// ProfileStore persists the progression profile.
type ProfileStore struct {
	kv KVStore
}

func (s *ProfileStore) Save(ctx context.Context, profile *domain.PlayerProfile) error {
	return setJSON(ctx, s.kv, fmt.Sprintf(keyProfile, profile.ID), profile)
}

// Get returns the stored profile, or nil when absent or unreadable.
func (s *ProfileStore) Get(ctx context.Context, playerID uuid.UUID) (*domain.PlayerProfile, error) {
	var profile domain.PlayerProfile
	ok, err := getJSON(ctx, s.kv, fmt.Sprintf(keyProfile, playerID), &profile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (s *ProfileStore) Delete(ctx context.Context, playerID uuid.UUID) error {
	return s.kv.Delete(ctx, fmt.Sprintf(keyProfile, playerID))
}

// CompanionStore persists the per-card companion overlay map.
type CompanionStore struct {
	kv KVStore
}

func (s *CompanionStore) GetAll(ctx context.Context, playerID uuid.UUID) (map[string]*domain.CompanionState, error) {
	states := make(map[string]*domain.CompanionState)
	if _, err := getJSON(ctx, s.kv, fmt.Sprintf(keyCompanions, playerID), &states); err != nil {
		return nil, err
	}
	if states == nil {
		states = make(map[string]*domain.CompanionState)
	}
	return states, nil
}

func (s *CompanionStore) SaveAll(ctx context.Context, playerID uuid.UUID, states map[string]*domain.CompanionState) error {
	return setJSON(ctx, s.kv, fmt.Sprintf(keyCompanions, playerID), states)
}

// Recruited cards extend the static catalog per player; they are the only
// card templates that live in storage.
func (s *CompanionStore) GetRecruits(ctx context.Context, playerID uuid.UUID) ([]domain.LoreCard, error) {
	var recruits []domain.LoreCard
	if _, err := getJSON(ctx, s.kv, fmt.Sprintf(keyRecruits, playerID), &recruits); err != nil {
		return nil, err
	}
	return recruits, nil
}

func (s *CompanionStore) SaveRecruits(ctx context.Context, playerID uuid.UUID, recruits []domain.LoreCard) error {
	return setJSON(ctx, s.kv, fmt.Sprintf(keyRecruits, playerID), recruits)
}

// DeckStore persists deck lists and the active-deck selection.
type DeckStore struct {
	kv KVStore
}

func (s *DeckStore) GetAll(ctx context.Context, playerID uuid.UUID) ([]domain.Deck, error) {
	var decks []domain.Deck
	if _, err := getJSON(ctx, s.kv, fmt.Sprintf(keyDecks, playerID), &decks); err != nil {
		return nil, err
	}
	return decks, nil
}

func (s *DeckStore) SaveAll(ctx context.Context, playerID uuid.UUID, decks []domain.Deck) error {
	return setJSON(ctx, s.kv, fmt.Sprintf(keyDecks, playerID), decks)
}

func (s *DeckStore) GetActiveDeckID(ctx context.Context, playerID uuid.UUID) (string, error) {
	var id string
	ok, err := getJSON(ctx, s.kv, fmt.Sprintf(keyActiveDeck, playerID), &id)
	if err != nil {
		return "", err
	}
	if !ok || id == "" {
		return domain.DefaultDeckID, nil
	}
	return id, nil
}

func (s *DeckStore) SetActiveDeckID(ctx context.Context, playerID uuid.UUID, deckID string) error {
	return setJSON(ctx, s.kv, fmt.Sprintf(keyActiveDeck, playerID), deckID)
}

// GameSessionStore persists saved sessions and the autosave slot.
type GameSessionStore struct {
	kv KVStore
}

func (s *GameSessionStore) GetAll(ctx context.Context, playerID uuid.UUID) ([]domain.GameSession, error) {
	var sessions []domain.GameSession
	if _, err := getJSON(ctx, s.kv, fmt.Sprintf(keySessions, playerID), &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *GameSessionStore) SaveAll(ctx context.Context, playerID uuid.UUID, sessions []domain.GameSession) error {
	return setJSON(ctx, s.kv, fmt.Sprintf(keySessions, playerID), sessions)
}

func (s *GameSessionStore) GetAutosave(ctx context.Context, playerID uuid.UUID) (*domain.GameSession, error) {
	var session domain.GameSession
	ok, err := getJSON(ctx, s.kv, fmt.Sprintf(keyAutosave, playerID), &session)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *GameSessionStore) SaveAutosave(ctx context.Context, playerID uuid.UUID, session *domain.GameSession) error {
	return setJSON(ctx, s.kv, fmt.Sprintf(keyAutosave, playerID), session)
}

func (s *GameSessionStore) ClearAutosave(ctx context.Context, playerID uuid.UUID) error {
	return s.kv.Delete(ctx, fmt.Sprintf(keyAutosave, playerID))
}

// NarratorStore passes narrator/voice preference blobs through verbatim; the
// server never interprets them.
type NarratorStore struct {
	kv KVStore
}

func (s *NarratorStore) Get(ctx context.Context, playerID uuid.UUID) (string, error) {
	raw, err := s.kv.Get(ctx, fmt.Sprintf(keyNarratorPrefs, playerID))
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return raw, err
}

func (s *NarratorStore) Set(ctx context.Context, playerID uuid.UUID, raw string) error {
	return s.kv.Set(ctx, fmt.Sprintf(keyNarratorPrefs, playerID), raw)
}
