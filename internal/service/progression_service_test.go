package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/service"
	"github.com/storyforge/server/internal/testutil"
)

func TestEncounterXP(t *testing.T) {
	assert.Equal(t, 50, service.EncounterXP(50))
	assert.Equal(t, 20, service.EncounterXP(0))
	assert.Equal(t, 20, service.EncounterXP(-30))
}

func TestAwardXPSingleLevel(t *testing.T) {
	f := testutil.NewFixture(nil, 1, nil)
	profile := domain.NewPlayerProfile("Riley")

	result := f.Services.Progression.AwardXP(profile, 150)
	require.NotNil(t, result)

	assert.Equal(t, 2, result.NewLevel)
	assert.Equal(t, 1, result.PerkPointsEarned)
	assert.Equal(t, domain.CardStats{Might: 1, Fortune: 1, Cunning: 1}, result.StatBoosts)
	assert.Len(t, result.PerksUnlocked, 3, "the three adept perks unlock at level 2")

	assert.Equal(t, 2, profile.Level)
	assert.Equal(t, 150, profile.TotalXP)
	assert.Equal(t, 50, profile.CurrentXP)
	assert.Equal(t, 1, profile.AvailablePerkPoints)
	assert.Equal(t, domain.CardStats{Might: 1, Fortune: 1, Cunning: 1}, profile.BonusStats)
}

func TestAwardXPMilestonePoints(t *testing.T) {
	f := testutil.NewFixture(nil, 1, nil)
	profile := domain.NewPlayerProfile("Riley")

	result := f.Services.Progression.AwardXP(profile, domain.TotalXPForLevel(10))
	require.NotNil(t, result)

	assert.Equal(t, 10, result.NewLevel)
	// Nine levels gained, plus one at level 5, one at level 10 (fifth level),
	// and one more for the level-10 milestone.
	assert.Equal(t, 12, result.PerkPointsEarned)
	assert.Equal(t, domain.CardStats{Might: 9, Fortune: 9, Cunning: 9}, profile.BonusStats)

	// Crossing level 10 unlocks the milestone achievement in the same call
	// and applies its reward on top of the leveling points.
	require.Len(t, result.AchievementsUnlocked, 1)
	assert.Equal(t, domain.AchievementLevel10, result.AchievementsUnlocked[0].ID)
	assert.Equal(t, 13, profile.AvailablePerkPoints)
	assert.Equal(t, 200, profile.NarrativeDice)

	// Re-checking afterwards unlocks nothing new.
	assert.Empty(t, f.Services.Progression.CheckAchievements(profile))
}

func TestAwardXPNoLevelChange(t *testing.T) {
	f := testutil.NewFixture(nil, 1, nil)
	profile := domain.NewPlayerProfile("Riley")

	assert.Nil(t, f.Services.Progression.AwardXP(profile, 50))
	assert.Equal(t, 50, profile.TotalXP)
	assert.Equal(t, 1, profile.Level)

	assert.Nil(t, f.Services.Progression.AwardXP(profile, 0))
	assert.Equal(t, 50, profile.TotalXP)
}

func TestApplyPerk(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)
	playerID, profile, err := f.NewPlayer(ctx, "Riley")
	require.NoError(t, err)

	profile.Level = 2
	profile.AvailablePerkPoints = 1
	require.NoError(t, f.Services.Profile.Save(ctx, profile))

	updated, err := f.Services.Progression.ApplyPerk(ctx, playerID, "might_adept")
	require.NoError(t, err)

	assert.True(t, updated.HasPerk("might_adept"))
	assert.Equal(t, 0, updated.AvailablePerkPoints)
	assert.Equal(t, 2, updated.BonusStats.Might)
	require.Len(t, updated.Perks, 1)
	assert.True(t, updated.Perks[0].Acquired)

	// The acquisition persisted.
	reloaded, err := f.Services.Profile.Get(ctx, playerID)
	require.NoError(t, err)
	assert.True(t, reloaded.HasPerk("might_adept"))
}

func TestApplyPerkResourceEffectFoldsOnce(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)
	playerID, profile, err := f.NewPlayer(ctx, "Riley")
	require.NoError(t, err)

	profile.Level = 5
	profile.AvailablePerkPoints = 1
	require.NoError(t, f.Services.Profile.Save(ctx, profile))

	updated, err := f.Services.Progression.ApplyPerk(ctx, playerID, "narrative_wellspring")
	require.NoError(t, err)
	assert.Equal(t, 120, updated.NarrativeDice)
}

func TestApplyPerkValidation(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)
	playerID, profile, err := f.NewPlayer(ctx, "Riley")
	require.NoError(t, err)

	_, err = f.Services.Progression.ApplyPerk(ctx, playerID, "no_such_perk")
	assert.ErrorIs(t, err, domain.ErrUnknownPerk)

	// No points yet.
	_, err = f.Services.Progression.ApplyPerk(ctx, playerID, "might_adept")
	assert.ErrorIs(t, err, domain.ErrNoPerkPoints)

	// Points but level too low.
	profile.AvailablePerkPoints = 1
	require.NoError(t, f.Services.Profile.Save(ctx, profile))
	_, err = f.Services.Progression.ApplyPerk(ctx, playerID, "might_adept")
	assert.ErrorIs(t, err, domain.ErrPerkLevelTooLow)

	// Already owned.
	profile.Level = 2
	require.NoError(t, f.Services.Profile.Save(ctx, profile))
	_, err = f.Services.Progression.ApplyPerk(ctx, playerID, "might_adept")
	require.NoError(t, err)
	_, err = f.Services.Progression.ApplyPerk(ctx, playerID, "might_adept")
	assert.ErrorIs(t, err, domain.ErrPerkAlreadyOwned)

	// Failed attempts never mutated the stored profile.
	reloaded, err := f.Services.Profile.Get(ctx, playerID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Perks, 1)
}

func TestUpdateEncounterStatsFirstWin(t *testing.T) {
	f := testutil.NewFixture(nil, 1, nil)
	profile := domain.NewPlayerProfile("Riley")

	unlocked := f.Services.Progression.UpdateEncounterStats(profile, true, domain.PathMight, 50, 2)

	assert.Equal(t, 1, profile.Stats.EncountersCompleted)
	assert.Equal(t, 1, profile.Stats.EncountersSucceeded)
	assert.Equal(t, 1, profile.Stats.MightPathsTaken)
	assert.Equal(t, 50, profile.Stats.TotalGloryEarned)
	assert.Equal(t, 2, profile.Stats.CardsPlayed)
	assert.Equal(t, 1, profile.Stats.CurrentStreak)

	require.Len(t, unlocked, 1)
	assert.Equal(t, domain.AchievementFirstSteps, unlocked[0].ID)
	assert.Equal(t, 50, profile.TotalXP, "first-steps reward XP applied")
}

func TestUpdateEncounterStatsLossAndFumble(t *testing.T) {
	f := testutil.NewFixture(nil, 1, nil)
	profile := domain.NewPlayerProfile("Riley")
	profile.Stats.CurrentStreak = 3
	profile.Stats.HighestStreak = 3

	f.Services.Progression.UpdateEncounterStats(profile, false, domain.PathFumble, -50, 1)

	assert.Equal(t, 1, profile.Stats.EncountersFailed)
	assert.Equal(t, 0, profile.Stats.CurrentStreak)
	assert.Equal(t, 3, profile.Stats.HighestStreak)
	assert.Equal(t, 0, profile.Stats.TotalGloryEarned, "penalties never count as glory earned")
	assert.Equal(t, 0, profile.Stats.MightPathsTaken)
	assert.Equal(t, 0, profile.Stats.FortunePathsTaken)
	assert.Equal(t, 0, profile.Stats.CunningPathsTaken)
}

func TestUpdateEncounterStatsCountsPathOnLoss(t *testing.T) {
	f := testutil.NewFixture(nil, 1, nil)
	profile := domain.NewPlayerProfile("Riley")

	f.Services.Progression.UpdateEncounterStats(profile, false, domain.PathCunning, -30, 1)
	assert.Equal(t, 1, profile.Stats.CunningPathsTaken, "risky failures still count the chosen path")
}

func TestPerfectRunStreakAchievement(t *testing.T) {
	f := testutil.NewFixture(nil, 1, nil)
	profile := domain.NewPlayerProfile("Riley")

	var all []domain.Achievement
	for i := 0; i < 5; i++ {
		all = append(all, f.Services.Progression.UpdateEncounterStats(profile, true, domain.PathMight, 10, 1)...)
	}

	ids := make(map[string]bool)
	for _, a := range all {
		ids[a.ID] = true
	}
	assert.True(t, ids[domain.AchievementPerfectRun])
	assert.Equal(t, 5, profile.Stats.HighestStreak)
}

func TestCheckAchievementsIdempotent(t *testing.T) {
	f := testutil.NewFixture(nil, 1, nil)
	profile := domain.NewPlayerProfile("Riley")
	profile.Stats.EncountersCompleted = 1

	first := f.Services.Progression.CheckAchievements(profile)
	assert.NotEmpty(t, first)
	assert.Empty(t, f.Services.Progression.CheckAchievements(profile))
}

func TestCheckAchievementsAppliesRewards(t *testing.T) {
	f := testutil.NewFixture(nil, 1, nil)
	profile := domain.NewPlayerProfile("Riley")
	profile.Level = 10
	pointsBefore := profile.AvailablePerkPoints
	diceBefore := profile.NarrativeDice

	unlocked := f.Services.Progression.CheckAchievements(profile)

	require.Len(t, unlocked, 1)
	assert.Equal(t, domain.AchievementLevel10, unlocked[0].ID)
	assert.Equal(t, pointsBefore+1, profile.AvailablePerkPoints)
	assert.Equal(t, diceBefore+100, profile.NarrativeDice)
}

func TestTickInjuries(t *testing.T) {
	f := testutil.NewFixture(nil, 1, nil)
	profile := domain.NewPlayerProfile("Riley")
	profile.ActiveInjuries = []domain.Injury{
		{ID: "sprain", EncountersRemaining: 1},
		{ID: "bruise", EncountersRemaining: 3},
	}

	f.Services.Progression.TickInjuries(profile)

	require.Len(t, profile.ActiveInjuries, 1)
	assert.Equal(t, "bruise", profile.ActiveInjuries[0].ID)
	assert.Equal(t, 2, profile.ActiveInjuries[0].EncountersRemaining)
}
