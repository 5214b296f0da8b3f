package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyforge/server/internal/domain"
)

func TestXPRequiredForLevel(t *testing.T) {
	assert.Equal(t, 100, domain.XPRequiredForLevel(1))
	assert.Equal(t, 282, domain.XPRequiredForLevel(2))
	assert.Equal(t, 800, domain.XPRequiredForLevel(4))
}

func TestLevelFromXPMatchesThresholds(t *testing.T) {
	assert.Equal(t, 1, domain.LevelFromXP(0))
	assert.Equal(t, 1, domain.LevelFromXP(99))

	for level := 2; level <= 25; level++ {
		threshold := domain.TotalXPForLevel(level)
		assert.Equal(t, level, domain.LevelFromXP(threshold), "at exact threshold for level %d", level)
		assert.Equal(t, level-1, domain.LevelFromXP(threshold-1), "one XP short of level %d", level)
	}
}

func TestXPProgressInLevel(t *testing.T) {
	progress := domain.XPProgressInLevel(150)
	assert.Equal(t, 50, progress.Current)
	assert.Equal(t, 282, progress.Required)
	assert.InDelta(t, 17.73, progress.Percentage, 0.01)

	fresh := domain.XPProgressInLevel(0)
	assert.Equal(t, 0, fresh.Current)
	assert.Equal(t, 100, fresh.Required)
}

func TestPerkByID(t *testing.T) {
	perk, ok := domain.PerkByID("might_adept")
	require.True(t, ok)
	assert.Equal(t, "Might Adept", perk.Name)
	require.NotNil(t, perk.Effect)
	assert.Equal(t, 2, perk.Effect.MightBonus)

	_, ok = domain.PerkByID("nonexistent")
	assert.False(t, ok)
}

func TestNewPlayerProfileDefaults(t *testing.T) {
	profile := domain.NewPlayerProfile("Riley")
	assert.Equal(t, "Riley", profile.Name)
	assert.Equal(t, 1, profile.Level)
	assert.Equal(t, 100, profile.NarrativeDice)
	assert.Equal(t, 3, profile.HandSize)
	assert.Equal(t, 1, profile.PlayAreaSize)
	assert.Equal(t, domain.DifficultyNormal, profile.SelectedDifficulty)
	assert.Len(t, profile.Achievements, len(domain.AchievementCatalog))

	unnamed := domain.NewPlayerProfile("")
	assert.Equal(t, "Hero", unnamed.Name)
}

func TestAddGloryFloorsAtZero(t *testing.T) {
	profile := domain.NewPlayerProfile("Riley")
	profile.AddGlory(30)
	assert.Equal(t, 30, profile.Glory)
	profile.AddGlory(-50)
	assert.Equal(t, 0, profile.Glory)
}

func TestSpendNarrativeDiceFloorsAtZero(t *testing.T) {
	profile := domain.NewPlayerProfile("Riley")
	profile.SpendNarrativeDice(40)
	assert.Equal(t, 60, profile.NarrativeDice)
	profile.SpendNarrativeDice(200)
	assert.Equal(t, 0, profile.NarrativeDice)
}
