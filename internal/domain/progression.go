package domain

import "math"

// XPRequiredForLevel is the XP cost to advance from the given level to the
// next one: floor(100 * level^1.5).
func XPRequiredForLevel(level int) int {
	return int(math.Floor(100 * math.Pow(float64(level), 1.5)))
}

// TotalXPForLevel is the lifetime XP needed to reach a level from level 1.
func TotalXPForLevel(level int) int {
	total := 0
	for i := 1; i < level; i++ {
		total += XPRequiredForLevel(i)
	}
	return total
}

// LevelFromXP returns the highest level whose total XP threshold is at or
// below the given lifetime XP.
func LevelFromXP(totalXP int) int {
	level := 1
	xpNeeded := 0
	for xpNeeded <= totalXP {
		level++
		xpNeeded += XPRequiredForLevel(level - 1)
	}
	return level - 1
}

// XPProgress describes progress within the current level.
type XPProgress struct {
	Current    int     `json:"current"`
	Required   int     `json:"required"`
	Percentage float64 `json:"percentage"`
}

func XPProgressInLevel(totalXP int) XPProgress {
	level := LevelFromXP(totalXP)
	floor := TotalXPForLevel(level)
	ceil := TotalXPForLevel(level + 1)
	current := totalXP - floor
	required := ceil - floor
	return XPProgress{
		Current:    current,
		Required:   required,
		Percentage: float64(current) / float64(required) * 100,
	}
}

// PerkCatalog is the fixed set of acquirable perks. Entries are copied into
// a profile on acquisition; the catalog itself is read-only.
var PerkCatalog = []PlayerPerk{
	{ID: "might_adept", Name: "Might Adept", Description: "+2 Might to all card combinations", Type: PerkTypeStatBoost, Requirement: 2, Effect: &PerkEffect{MightBonus: 2}},
	{ID: "fortune_adept", Name: "Fortune Adept", Description: "+2 Fortune to all card combinations", Type: PerkTypeStatBoost, Requirement: 2, Effect: &PerkEffect{FortuneBonus: 2}},
	{ID: "cunning_adept", Name: "Cunning Adept", Description: "+2 Cunning to all card combinations", Type: PerkTypeStatBoost, Requirement: 2, Effect: &PerkEffect{CunningBonus: 2}},
	{ID: "second_card_slot", Name: "Second Card Slot", Description: "Unlock ability to play 2 cards (up from 1)", Type: PerkTypeProgression, Requirement: 5, Effect: &PerkEffect{PlayAreaBonus: 1}},
	{ID: "narrative_wellspring", Name: "Narrative Wellspring", Description: "Start each session with +20 Narrative Dice", Type: PerkTypeResource, Requirement: 5, Effect: &PerkEffect{NarrativeDiceBonus: 20}},
	{ID: "expanded_hand", Name: "Expanded Hand", Description: "Draw 4 cards instead of 3 (+1 hand size)", Type: PerkTypeProgression, Requirement: 7, Effect: &PerkEffect{HandSizeBonus: 1}},
	{ID: "third_card_slot", Name: "Third Card Slot", Description: "Unlock ability to play 3 cards (up from 2)", Type: PerkTypeProgression, Requirement: 10, Effect: &PerkEffect{PlayAreaBonus: 1}},
	{ID: "might_master", Name: "Might Master", Description: "+5 Might to all card combinations", Type: PerkTypeStatBoost, Requirement: 10, Effect: &PerkEffect{MightBonus: 5}},
	{ID: "fortune_master", Name: "Fortune Master", Description: "+5 Fortune to all card combinations", Type: PerkTypeStatBoost, Requirement: 10, Effect: &PerkEffect{FortuneBonus: 5}},
	{ID: "cunning_master", Name: "Cunning Master", Description: "+5 Cunning to all card combinations", Type: PerkTypeStatBoost, Requirement: 10, Effect: &PerkEffect{CunningBonus: 5}},
	{ID: "master_hand", Name: "Master Hand", Description: "Draw 5 cards instead of 4 (+1 hand size)", Type: PerkTypeProgression, Requirement: 12, Effect: &PerkEffect{HandSizeBonus: 1}},
	{ID: "legend_in_making", Name: "Legend in the Making", Description: "+3 to ALL stats", Type: PerkTypeStatBoost, Requirement: 15, Effect: &PerkEffect{MightBonus: 3, FortuneBonus: 3, CunningBonus: 3}},
	{ID: "master_storyteller", Name: "Master Storyteller", Description: "Gain double Narrative Dice from encounters", Type: PerkTypeSpecial, Requirement: 15},
	{ID: "grandmaster", Name: "Grandmaster", Description: "+10 to your chosen primary stat", Type: PerkTypeStatBoost, Requirement: 20},
}

// PerkByID looks up a catalog perk; ok is false for unknown ids.
func PerkByID(id string) (PlayerPerk, bool) {
	for _, perk := range PerkCatalog {
		if perk.ID == id {
			return perk, true
		}
	}
	return PlayerPerk{}, false
}

// Achievement ids checked by the progression engine.
const (
	AchievementFirstSteps        = "first_steps"
	AchievementMightSpecialist   = "might_specialist"
	AchievementFortuneSpecialist = "fortune_specialist"
	AchievementCunningSpecialist = "cunning_specialist"
	AchievementPerfectRun        = "perfect_run"
	AchievementCenturyClub       = "century_club"
	AchievementLevel10           = "level_10"
	AchievementLevel20           = "level_20"
)

// AchievementCatalog is copied into each new profile.
var AchievementCatalog = []Achievement{
	{ID: AchievementFirstSteps, Name: "First Steps", Description: "Complete your first encounter", Reward: &AchievementReward{XP: 50}},
	{ID: AchievementMightSpecialist, Name: "Might Specialist", Description: "Complete 10 encounters using the Might path", Reward: &AchievementReward{XP: 100, PerkPoints: 1}},
	{ID: AchievementFortuneSpecialist, Name: "Fortune Specialist", Description: "Complete 10 encounters using the Fortune path", Reward: &AchievementReward{XP: 100, PerkPoints: 1}},
	{ID: AchievementCunningSpecialist, Name: "Cunning Specialist", Description: "Complete 10 encounters using the Cunning path", Reward: &AchievementReward{XP: 100, PerkPoints: 1}},
	{ID: AchievementPerfectRun, Name: "Perfect Run", Description: "Win 5 encounters in a row without failure", Reward: &AchievementReward{XP: 200, PerkPoints: 1, NarrativeDice: 50}},
	{ID: AchievementCenturyClub, Name: "Century Club", Description: "Complete 100 encounters", Reward: &AchievementReward{XP: 500, PerkPoints: 2}},
	{ID: AchievementLevel10, Name: "Rising Legend", Description: "Reach level 10", Reward: &AchievementReward{NarrativeDice: 100, PerkPoints: 1}},
	{ID: AchievementLevel20, Name: "Living Myth", Description: "Reach level 20", Reward: &AchievementReward{NarrativeDice: 200, PerkPoints: 2}},
}
