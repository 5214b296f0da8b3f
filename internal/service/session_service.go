package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/repository"
)

const maxSavedSessions = 10

// SessionService manages named save slots and the autosave. The autosave is
// written by the encounter state machine on every phase transition; named
// saves are explicit snapshots of it.
type SessionService struct {
	games *repository.GameSessionStore
}

func NewSessionService(games *repository.GameSessionStore) *SessionService {
	return &SessionService{games: games}
}

func (s *SessionService) List(ctx context.Context, playerID uuid.UUID) ([]domain.GameSession, error) {
	return s.games.GetAll(ctx, playerID)
}

// Save snapshots the current autosave into a named slot. Oldest saves are
// evicted past the slot cap.
func (s *SessionService) Save(ctx context.Context, playerID uuid.UUID, name string) (*domain.GameSession, error) {
	current, err := s.games.GetAutosave(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNoActiveSession
	}

	snapshot := *current
	snapshot.ID = "save_" + uuid.NewString()
	snapshot.Name = name
	snapshot.Timestamp = time.Now().UnixMilli()

	saved, err := s.games.GetAll(ctx, playerID)
	if err != nil {
		return nil, err
	}
	saved = append(saved, snapshot)
	if len(saved) > maxSavedSessions {
		saved = saved[len(saved)-maxSavedSessions:]
	}
	if err := s.games.SaveAll(ctx, playerID, saved); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Load restores a named save into the autosave slot, making it the active
// session.
func (s *SessionService) Load(ctx context.Context, playerID uuid.UUID, sessionID string) (*domain.GameSession, error) {
	saved, err := s.games.GetAll(ctx, playerID)
	if err != nil {
		return nil, err
	}
	for i := range saved {
		if saved[i].ID == sessionID {
			session := saved[i]
			if err := s.games.SaveAutosave(ctx, playerID, &session); err != nil {
				return nil, err
			}
			return &session, nil
		}
	}
	return nil, domain.ErrSessionNotFound
}

func (s *SessionService) Delete(ctx context.Context, playerID uuid.UUID, sessionID string) error {
	saved, err := s.games.GetAll(ctx, playerID)
	if err != nil {
		return err
	}
	kept := saved[:0]
	found := false
	for _, session := range saved {
		if session.ID == sessionID {
			found = true
			continue
		}
		kept = append(kept, session)
	}
	if !found {
		return domain.ErrSessionNotFound
	}
	return s.games.SaveAll(ctx, playerID, kept)
}

func (s *SessionService) Autosave(ctx context.Context, playerID uuid.UUID) (*domain.GameSession, error) {
	return s.games.GetAutosave(ctx, playerID)
}

func (s *SessionService) WriteAutosave(ctx context.Context, playerID uuid.UUID, session *domain.GameSession) error {
	session.Timestamp = time.Now().UnixMilli()
	return s.games.SaveAutosave(ctx, playerID, session)
}

func (s *SessionService) ClearAutosave(ctx context.Context, playerID uuid.UUID) error {
	return s.games.ClearAutosave(ctx, playerID)
}
