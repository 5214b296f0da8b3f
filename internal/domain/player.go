package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlayerProfile is the persistent progression record for one player.
// Level is always derived from TotalXP; it is stored for convenience but
// recomputed on every XP award.
type PlayerProfile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	CurrentXP int       `json:"currentXP"`
	TotalXP   int       `json:"totalXP"`

	Glory         int `json:"glory"`
	NarrativeDice int `json:"narrativeDice"`

	SelectedDifficulty DifficultyID `json:"selectedDifficulty"`

	BonusStats CardStats `json:"bonusStats"`

	HandSize     int `json:"handSize"`
	PlayAreaSize int `json:"playAreaSize"`

	Perks               []PlayerPerk `json:"perks"`
	AvailablePerkPoints int          `json:"availablePerkPoints"`

	Achievements []Achievement `json:"achievements"`

	Stats PlayerStats `json:"stats"`

	ThreatLevel              int      `json:"threatLevel,omitempty"`
	ActiveInjuries           []Injury `json:"activeInjuries,omitempty"`
	PendingEncounterModifier int      `json:"pendingEncounterModifier,omitempty"`

	CollectedCompanions []string `json:"collectedCompanions,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// Injury is a time-limited stat debuff. StatDebuff values are stored as
// negative contributions and added straight into stat totals.
type Injury struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	StatDebuff          CardStats `json:"statDebuff"`
	EncountersRemaining int       `json:"encountersRemaining"`
}

type PerkType string

const (
	PerkTypeStatBoost   PerkType = "stat-boost"
	PerkTypeResource    PerkType = "resource"
	PerkTypeSpecial     PerkType = "special"
	PerkTypeProgression PerkType = "progression"
)

// PerkEffect holds the additive deltas a perk folds into the profile once,
// at acquisition time.
type PerkEffect struct {
	MightBonus         int `json:"mightBonus,omitempty"`
	FortuneBonus       int `json:"fortuneBonus,omitempty"`
	CunningBonus       int `json:"cunningBonus,omitempty"`
	NarrativeDiceBonus int `json:"narrativeDiceBonus,omitempty"`
	HandSizeBonus      int `json:"handSizeBonus,omitempty"`
	PlayAreaBonus      int `json:"playAreaBonus,omitempty"`
}

type PlayerPerk struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Type        PerkType    `json:"type"`
	Requirement int         `json:"requirement"`
	Acquired    bool        `json:"acquired"`
	Effect      *PerkEffect `json:"effect,omitempty"`
}

type AchievementReward struct {
	XP            int `json:"xp,omitempty"`
	PerkPoints    int `json:"perkPoints,omitempty"`
	NarrativeDice int `json:"narrativeDice,omitempty"`
}

type Achievement struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Unlocked    bool               `json:"unlocked"`
	UnlockedAt  int64              `json:"unlockedAt,omitempty"`
	Reward      *AchievementReward `json:"reward,omitempty"`
}

type PlayerStats struct {
	EncountersCompleted int `json:"encountersCompleted"`
	EncountersSucceeded int `json:"encountersSucceeded"`
	EncountersFailed    int `json:"encountersFailed"`
	TotalGloryEarned    int `json:"totalGloryEarned"`
	MightPathsTaken     int `json:"mightPathsTaken"`
	FortunePathsTaken   int `json:"fortunePathsTaken"`
	CunningPathsTaken   int `json:"cunningPathsTaken"`
	CardsPlayed         int `json:"cardsPlayed"`
	SessionsStarted     int `json:"sessionsStarted"`
	SessionsCompleted   int `json:"sessionsCompleted"`
	HighestStreak       int `json:"highestStreak"`
	CurrentStreak       int `json:"currentStreak"`
}

// LevelUpResult reports what a single XP award unlocked.
type LevelUpResult struct {
	NewLevel             int           `json:"newLevel"`
	PerksUnlocked        []PlayerPerk  `json:"perksUnlocked"`
	PerkPointsEarned     int           `json:"perkPointsEarned"`
	StatBoosts           CardStats     `json:"statBoosts"`
	AchievementsUnlocked []Achievement `json:"achievementsUnlocked"`
}

// NewPlayerProfile creates a fresh profile with starting resources and a
// copy of the achievement catalog.
func NewPlayerProfile(name string) *PlayerProfile {
	if name == "" {
		name = "Hero"
	}
	now := time.Now().UnixMilli()
	achievements := make([]Achievement, len(AchievementCatalog))
	copy(achievements, AchievementCatalog)
	return &PlayerProfile{
		ID:                 uuid.New(),
		Name:               name,
		Level:              1,
		NarrativeDice:      100,
		SelectedDifficulty: DifficultyNormal,
		HandSize:           3,
		PlayAreaSize:       1,
		Perks:              []PlayerPerk{},
		Achievements:       achievements,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// HasPerk reports whether the profile already acquired the given perk.
func (p *PlayerProfile) HasPerk(perkID string) bool {
	for _, perk := range p.Perks {
		if perk.ID == perkID {
			return true
		}
	}
	return false
}

// Achievement returns a pointer into the profile's achievement list, or nil.
func (p *PlayerProfile) Achievement(id string) *Achievement {
	for i := range p.Achievements {
		if p.Achievements[i].ID == id {
			return &p.Achievements[i]
		}
	}
	return nil
}

// AddGlory applies a signed glory delta, floor-clamped at zero.
func (p *PlayerProfile) AddGlory(delta int) {
	p.Glory += delta
	if p.Glory < 0 {
		p.Glory = 0
	}
}

// SpendNarrativeDice deducts dice, floor-clamped at zero.
func (p *PlayerProfile) SpendNarrativeDice(n int) {
	p.NarrativeDice -= n
	if p.NarrativeDice < 0 {
		p.NarrativeDice = 0
	}
}
