package domain

type DifficultyID string

const (
	DifficultyNormal    DifficultyID = "Normal"
	DifficultyHard      DifficultyID = "Hard"
	DifficultyExpert    DifficultyID = "Expert"
	DifficultyNightmare DifficultyID = "Nightmare"
	DifficultyLegendary DifficultyID = "Legendary"
)

// DifficultyTier scales challenge requirements and rewards. Tiers unlock by
// lifetime glory.
type DifficultyTier struct {
	ID                    DifficultyID `json:"id"`
	Name                  string       `json:"name"`
	UnlockGlory           int          `json:"unlockGlory"`
	RequirementMultiplier float64      `json:"requirementMultiplier"`
	RewardMultiplier      float64      `json:"rewardMultiplier"`
	Description           string       `json:"description"`
}

// DifficultyTiers is ordered by unlock threshold, lowest first.
var DifficultyTiers = []DifficultyTier{
	{ID: DifficultyNormal, Name: "Casual Campaign", UnlockGlory: 0, RequirementMultiplier: 1.0, RewardMultiplier: 1.0,
		Description: "Standard difficulty. Good for learning the game and trying new decks."},
	{ID: DifficultyHard, Name: "Seasoned Adventurer", UnlockGlory: 500, RequirementMultiplier: 1.5, RewardMultiplier: 2.0,
		Description: "Challenges require better card combos. Double glory rewards."},
	{ID: DifficultyExpert, Name: "Legendary Hero", UnlockGlory: 2000, RequirementMultiplier: 2.0, RewardMultiplier: 3.5,
		Description: "Near-perfect card selection needed. Massive glory rewards."},
	{ID: DifficultyNightmare, Name: "Living Myth", UnlockGlory: 5000, RequirementMultiplier: 3.0, RewardMultiplier: 5.0,
		Description: "Requires optimized decks and perks. Epic rewards for the brave."},
	{ID: DifficultyLegendary, Name: "Impossible Odds", UnlockGlory: 10000, RequirementMultiplier: 5.0, RewardMultiplier: 10.0,
		Description: "For masochists only. Can you beat the unbeatable?"},
}

// DifficultyByID resolves a tier id; unknown ids fall back to the first
// (Normal) tier rather than failing.
func DifficultyByID(id DifficultyID) DifficultyTier {
	for _, tier := range DifficultyTiers {
		if tier.ID == id {
			return tier
		}
	}
	return DifficultyTiers[0]
}

// UnlockedDifficulties returns every tier whose threshold the given glory
// meets.
func UnlockedDifficulties(glory int) []DifficultyTier {
	var unlocked []DifficultyTier
	for _, tier := range DifficultyTiers {
		if glory >= tier.UnlockGlory {
			unlocked = append(unlocked, tier)
		}
	}
	return unlocked
}

// NextDifficultyToUnlock returns the lowest locked tier, or nil when all
// tiers are unlocked.
func NextDifficultyToUnlock(glory int) *DifficultyTier {
	for _, tier := range DifficultyTiers {
		if glory < tier.UnlockGlory {
			t := tier
			return &t
		}
	}
	return nil
}

func IsDifficultyUnlocked(id DifficultyID, glory int) bool {
	return glory >= DifficultyByID(id).UnlockGlory
}
