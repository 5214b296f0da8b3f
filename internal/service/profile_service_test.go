package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/testutil"
)

func TestSelectDifficultyUnknownResolvesToNormal(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)
	playerID, _, err := f.NewPlayer(ctx, "Riley")
	require.NoError(t, err)

	profile, err := f.Services.Profile.SelectDifficulty(ctx, playerID, "NoSuchTier")
	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyNormal, profile.SelectedDifficulty)
}

func TestSelectDifficultyRejectsLockedTier(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)
	playerID, _, err := f.NewPlayer(ctx, "Riley")
	require.NoError(t, err)

	_, err = f.Services.Profile.SelectDifficulty(ctx, playerID, domain.DifficultyHard)
	assert.ErrorIs(t, err, domain.ErrDifficultyLocked)

	reloaded, err := f.Services.Profile.Get(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyNormal, reloaded.SelectedDifficulty)
}

func TestSelectDifficultySwitchesUnlockedTier(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)
	playerID, profile, err := f.NewPlayer(ctx, "Riley")
	require.NoError(t, err)

	profile.Glory = 500
	require.NoError(t, f.Stores.Profile.Save(ctx, profile))

	selected, err := f.Services.Profile.SelectDifficulty(ctx, playerID, domain.DifficultyHard)
	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyHard, selected.SelectedDifficulty)

	reloaded, err := f.Services.Profile.Get(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyHard, reloaded.SelectedDifficulty)
}

func TestResetKeepsName(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)
	playerID, profile, err := f.NewPlayer(ctx, "Riley")
	require.NoError(t, err)

	profile.TotalXP = 1000
	profile.Glory = 700
	require.NoError(t, f.Stores.Profile.Save(ctx, profile))

	fresh, err := f.Services.Profile.Reset(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, "Riley", fresh.Name)
	assert.Equal(t, 1, fresh.Level)
	assert.Zero(t, fresh.TotalXP)
	assert.Zero(t, fresh.Glory)
}
