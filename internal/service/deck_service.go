package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/storyforge/server/internal/data"
	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/repository"
)

// DeckService manages custom decks and hand draws. The default deck is
// virtual: it always contains the full catalog plus recruited cards and is
// never persisted or editable.
type DeckService struct {
	decks      *repository.DeckStore
	companions *repository.CompanionStore
	rng        *rand.Rand
}

func NewDeckService(decks *repository.DeckStore, companions *repository.CompanionStore, rng *rand.Rand) *DeckService {
	return &DeckService{decks: decks, companions: companions, rng: rng}
}

// collection is the full set of cards the player owns: static catalog plus
// recruits.
func (s *DeckService) collection(ctx context.Context, playerID uuid.UUID) ([]domain.LoreCard, error) {
	recruits, err := s.companions.GetRecruits(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return append(append([]domain.LoreCard(nil), data.LoreDeck...), recruits...), nil
}

func (s *DeckService) cardByID(ctx context.Context, playerID uuid.UUID, id string) (domain.LoreCard, bool) {
	if card, ok := data.CardByID(id); ok {
		return card, true
	}
	recruits, err := s.companions.GetRecruits(ctx, playerID)
	if err != nil {
		return domain.LoreCard{}, false
	}
	for _, card := range recruits {
		if card.ID == id {
			return card, true
		}
	}
	return domain.LoreCard{}, false
}

func (s *DeckService) defaultDeck(ctx context.Context, playerID uuid.UUID) (domain.Deck, error) {
	cards, err := s.collection(ctx, playerID)
	if err != nil {
		return domain.Deck{}, err
	}
	return domain.Deck{
		ID:          domain.DefaultDeckID,
		Name:        "Full Collection",
		Description: "Every card you own.",
		Cards:       cards,
	}, nil
}

// GetDecks returns the default deck followed by the player's custom decks.
func (s *DeckService) GetDecks(ctx context.Context, playerID uuid.UUID) ([]domain.Deck, error) {
	full, err := s.defaultDeck(ctx, playerID)
	if err != nil {
		return nil, err
	}
	custom, err := s.decks.GetAll(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return append([]domain.Deck{full}, custom...), nil
}

func (s *DeckService) GetDeck(ctx context.Context, playerID uuid.UUID, deckID string) (*domain.Deck, error) {
	if deckID == domain.DefaultDeckID {
		deck, err := s.defaultDeck(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return &deck, nil
	}
	custom, err := s.decks.GetAll(ctx, playerID)
	if err != nil {
		return nil, err
	}
	for i := range custom {
		if custom[i].ID == deckID {
			return &custom[i], nil
		}
	}
	return nil, domain.ErrDeckNotFound
}

// CreateDeck builds a deck from owned card ids; unknown ids are skipped.
func (s *DeckService) CreateDeck(ctx context.Context, playerID uuid.UUID, name, description string, cardIDs []string) (*domain.Deck, error) {
	cards := make([]domain.LoreCard, 0, len(cardIDs))
	for _, id := range cardIDs {
		if card, ok := s.cardByID(ctx, playerID, id); ok {
			cards = append(cards, card)
		}
	}

	now := time.Now().UnixMilli()
	deck := domain.Deck{
		ID:          "deck_" + uuid.NewString(),
		Name:        name,
		Description: description,
		Cards:       cards,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	custom, err := s.decks.GetAll(ctx, playerID)
	if err != nil {
		return nil, err
	}
	custom = append(custom, deck)
	if err := s.decks.SaveAll(ctx, playerID, custom); err != nil {
		return nil, err
	}
	return &deck, nil
}

func (s *DeckService) UpdateDeck(ctx context.Context, playerID uuid.UUID, deckID, name, description string, cardIDs []string) (*domain.Deck, error) {
	if deckID == domain.DefaultDeckID {
		return nil, domain.ErrDefaultDeck
	}
	custom, err := s.decks.GetAll(ctx, playerID)
	if err != nil {
		return nil, err
	}
	for i := range custom {
		if custom[i].ID != deckID {
			continue
		}
		if name != "" {
			custom[i].Name = name
		}
		if description != "" {
			custom[i].Description = description
		}
		if cardIDs != nil {
			cards := make([]domain.LoreCard, 0, len(cardIDs))
			for _, id := range cardIDs {
				if card, ok := s.cardByID(ctx, playerID, id); ok {
					cards = append(cards, card)
				}
			}
			custom[i].Cards = cards
		}
		custom[i].UpdatedAt = time.Now().UnixMilli()
		if err := s.decks.SaveAll(ctx, playerID, custom); err != nil {
			return nil, err
		}
		return &custom[i], nil
	}
	return nil, domain.ErrDeckNotFound
}

// DeleteDeck removes a custom deck. Deleting the active deck falls the
// selection back to the default.
func (s *DeckService) DeleteDeck(ctx context.Context, playerID uuid.UUID, deckID string) error {
	if deckID == domain.DefaultDeckID {
		return domain.ErrDefaultDeck
	}
	custom, err := s.decks.GetAll(ctx, playerID)
	if err != nil {
		return err
	}
	kept := custom[:0]
	found := false
	for _, deck := range custom {
		if deck.ID == deckID {
			found = true
			continue
		}
		kept = append(kept, deck)
	}
	if !found {
		return domain.ErrDeckNotFound
	}
	if err := s.decks.SaveAll(ctx, playerID, kept); err != nil {
		return err
	}

	active, err := s.decks.GetActiveDeckID(ctx, playerID)
	if err != nil {
		return err
	}
	if active == deckID {
		return s.decks.SetActiveDeckID(ctx, playerID, domain.DefaultDeckID)
	}
	return nil
}

func (s *DeckService) GetActiveDeck(ctx context.Context, playerID uuid.UUID) (*domain.Deck, error) {
	id, err := s.decks.GetActiveDeckID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	deck, err := s.GetDeck(ctx, playerID, id)
	if err == domain.ErrDeckNotFound {
		// Stale selection; fall back to the default deck.
		fallback, err := s.defaultDeck(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return &fallback, nil
	}
	return deck, err
}

func (s *DeckService) SetActiveDeck(ctx context.Context, playerID uuid.UUID, deckID string) error {
	if _, err := s.GetDeck(ctx, playerID, deckID); err != nil {
		return err
	}
	return s.decks.SetActiveDeckID(ctx, playerID, deckID)
}

// DrawHand deals handSize cards from the active deck. Cards from the
// previous hand are excluded when the deck is large enough to allow it, so
// back-to-back hands feel fresh.
func (s *DeckService) DrawHand(ctx context.Context, playerID uuid.UUID, handSize int, excludeIDs []string) ([]domain.LoreCard, error) {
	deck, err := s.GetActiveDeck(ctx, playerID)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	pool := make([]domain.LoreCard, 0, len(deck.Cards))
	for _, card := range deck.Cards {
		if !excluded[card.ID] {
			pool = append(pool, card)
		}
	}
	if len(pool) < handSize {
		pool = append([]domain.LoreCard(nil), deck.Cards...)
	}

	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if handSize > len(pool) {
		handSize = len(pool)
	}
	return pool[:handSize], nil
}
