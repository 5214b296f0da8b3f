package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/repository"
	"github.com/storyforge/server/internal/repository/memory"
)

func newStores() (*repository.Stores, *memory.Store) {
	kv := memory.New()
	return repository.NewStores(kv), kv
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, kv.Set(ctx, "k", "v"))
	value, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
	assert.Equal(t, 1, kv.Len())

	require.NoError(t, kv.Delete(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlayerStore(t *testing.T) {
	ctx := context.Background()
	stores, _ := newStores()

	player := &domain.Player{ID: uuid.New(), DisplayName: "Riley", PasswordHash: "hash"}
	require.NoError(t, stores.Player.Create(ctx, player))

	byID, err := stores.Player.GetByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, "Riley", byID.DisplayName)

	byName, err := stores.Player.GetByDisplayName(ctx, "Riley")
	require.NoError(t, err)
	assert.Equal(t, player.ID, byName.ID)

	_, err = stores.Player.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = stores.Player.GetByDisplayName(ctx, "Nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileStoreAbsentAndCorrupt(t *testing.T) {
	ctx := context.Background()
	stores, kv := newStores()
	playerID := uuid.New()

	profile, err := stores.Profile.Get(ctx, playerID)
	require.NoError(t, err)
	assert.Nil(t, profile, "absent profile reads as nil, not an error")

	saved := domain.NewPlayerProfile("Riley")
	saved.ID = playerID
	require.NoError(t, stores.Profile.Save(ctx, saved))

	loaded, err := stores.Profile.Get(ctx, playerID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Riley", loaded.Name)

	// A corrupt record degrades to absent so callers rebuild defaults.
	require.NoError(t, kv.Set(ctx, fmt.Sprintf("profile:%s", playerID), "{not json"))
	loaded, err = stores.Profile.Get(ctx, playerID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestAuthSessionStore(t *testing.T) {
	ctx := context.Background()
	stores, _ := newStores()
	playerID := uuid.New()

	_, err := stores.Session.GetByPlayerID(ctx, playerID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	session := &domain.AuthSession{ID: uuid.New(), PlayerID: playerID, RefreshTokenHash: "hash"}
	require.NoError(t, stores.Session.Put(ctx, session))

	loaded, err := stores.Session.GetByPlayerID(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, loaded.ID)

	require.NoError(t, stores.Session.DeleteByPlayerID(ctx, playerID))
	_, err = stores.Session.GetByPlayerID(ctx, playerID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCompanionStore(t *testing.T) {
	ctx := context.Background()
	stores, _ := newStores()
	playerID := uuid.New()

	states, err := stores.Companion.GetAll(ctx, playerID)
	require.NoError(t, err)
	assert.NotNil(t, states, "absent record yields an empty, usable map")

	states["char_001"] = &domain.CompanionState{Loyalty: 40}
	require.NoError(t, stores.Companion.SaveAll(ctx, playerID, states))

	loaded, err := stores.Companion.GetAll(ctx, playerID)
	require.NoError(t, err)
	require.NotNil(t, loaded["char_001"])
	assert.Equal(t, 40, loaded["char_001"].Loyalty)

	recruits, err := stores.Companion.GetRecruits(ctx, playerID)
	require.NoError(t, err)
	assert.Empty(t, recruits)

	require.NoError(t, stores.Companion.SaveRecruits(ctx, playerID,
		[]domain.LoreCard{{ID: "recruit_1", Name: "Reformed Goblin"}}))
	recruits, err = stores.Companion.GetRecruits(ctx, playerID)
	require.NoError(t, err)
	require.Len(t, recruits, 1)
}

func TestDeckStoreActiveDefault(t *testing.T) {
	ctx := context.Background()
	stores, _ := newStores()
	playerID := uuid.New()

	active, err := stores.Deck.GetActiveDeckID(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDeckID, active, "no selection falls back to the default deck")

	require.NoError(t, stores.Deck.SetActiveDeckID(ctx, playerID, "deck_1"))
	active, err = stores.Deck.GetActiveDeckID(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, "deck_1", active)
}

func TestGameSessionStoreAutosave(t *testing.T) {
	ctx := context.Background()
	stores, _ := newStores()
	playerID := uuid.New()

	session, err := stores.Game.GetAutosave(ctx, playerID)
	require.NoError(t, err)
	assert.Nil(t, session)

	require.NoError(t, stores.Game.SaveAutosave(ctx, playerID, &domain.GameSession{ID: "session_1"}))
	session, err = stores.Game.GetAutosave(ctx, playerID)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "session_1", session.ID)

	require.NoError(t, stores.Game.ClearAutosave(ctx, playerID))
	session, err = stores.Game.GetAutosave(ctx, playerID)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestNarratorStorePassthrough(t *testing.T) {
	ctx := context.Background()
	stores, _ := newStores()
	playerID := uuid.New()

	raw, err := stores.Narrator.Get(ctx, playerID)
	require.NoError(t, err)
	assert.Empty(t, raw)

	blob := `{"voice":"gravelly","pace":1.2}`
	require.NoError(t, stores.Narrator.Set(ctx, playerID, blob))
	raw, err = stores.Narrator.Get(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, blob, raw, "preference blobs are stored verbatim")
}
