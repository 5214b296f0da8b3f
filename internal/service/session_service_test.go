package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/testutil"
)

func TestSaveRequiresActiveSession(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)
	playerID := uuid.New()

	_, err := f.Services.Session.Save(ctx, playerID, "my save")
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestSaveSnapshotsAutosave(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)
	playerID := uuid.New()

	active := &domain.GameSession{ID: "session_1", Phase: domain.PhaseChallenge, IntroScene: "it begins"}
	require.NoError(t, f.Services.Session.WriteAutosave(ctx, playerID, active))

	snapshot, err := f.Services.Session.Save(ctx, playerID, "before the dragon")
	require.NoError(t, err)

	assert.NotEqual(t, active.ID, snapshot.ID)
	assert.Contains(t, snapshot.ID, "save_")
	assert.Equal(t, "before the dragon", snapshot.Name)
	assert.Equal(t, domain.PhaseChallenge, snapshot.Phase)
	assert.NotZero(t, snapshot.Timestamp)

	saved, err := f.Services.Session.List(ctx, playerID)
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestSaveEvictsOldestPastCap(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)
	playerID := uuid.New()

	require.NoError(t, f.Services.Session.WriteAutosave(ctx, playerID, &domain.GameSession{ID: "session_1"}))
	for i := 0; i < 12; i++ {
		_, err := f.Services.Session.Save(ctx, playerID, fmt.Sprintf("save %d", i))
		require.NoError(t, err)
	}

	saved, err := f.Services.Session.List(ctx, playerID)
	require.NoError(t, err)
	require.Len(t, saved, 10)
	assert.Equal(t, "save 2", saved[0].Name, "oldest saves are evicted first")
	assert.Equal(t, "save 11", saved[9].Name)
}

func TestLoadRestoresIntoAutosave(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)
	playerID := uuid.New()

	require.NoError(t, f.Services.Session.WriteAutosave(ctx, playerID,
		&domain.GameSession{ID: "session_1", IntroScene: "scene A"}))
	snapshot, err := f.Services.Session.Save(ctx, playerID, "checkpoint")
	require.NoError(t, err)

	// Move the live session on, then load the checkpoint back.
	require.NoError(t, f.Services.Session.WriteAutosave(ctx, playerID,
		&domain.GameSession{ID: "session_1", IntroScene: "scene B"}))

	loaded, err := f.Services.Session.Load(ctx, playerID, snapshot.ID)
	require.NoError(t, err)
	assert.Equal(t, "scene A", loaded.IntroScene)

	current, err := f.Services.Session.Autosave(ctx, playerID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "scene A", current.IntroScene)

	_, err = f.Services.Session.Load(ctx, playerID, "save_missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestDeleteSavedSession(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)
	playerID := uuid.New()

	require.NoError(t, f.Services.Session.WriteAutosave(ctx, playerID, &domain.GameSession{ID: "session_1"}))
	snapshot, err := f.Services.Session.Save(ctx, playerID, "checkpoint")
	require.NoError(t, err)

	require.NoError(t, f.Services.Session.Delete(ctx, playerID, snapshot.ID))

	saved, err := f.Services.Session.List(ctx, playerID)
	require.NoError(t, err)
	assert.Empty(t, saved)

	assert.ErrorIs(t, f.Services.Session.Delete(ctx, playerID, snapshot.ID), domain.ErrSessionNotFound)
}

func TestClearAutosave(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)
	playerID := uuid.New()

	require.NoError(t, f.Services.Session.WriteAutosave(ctx, playerID, &domain.GameSession{ID: "session_1"}))
	require.NoError(t, f.Services.Session.ClearAutosave(ctx, playerID))

	current, err := f.Services.Session.Autosave(ctx, playerID)
	require.NoError(t, err)
	assert.Nil(t, current)
}
