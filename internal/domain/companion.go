package domain

// CompanionState is the mutable overlay tracked per Character card.
// Loyalty never goes below zero.
type CompanionState struct {
	Loyalty        int   `json:"loyalty"`
	TimesPlayed    int   `json:"timesPlayed"`
	EncountersWon  int   `json:"encountersWon"`
	EncountersLost int   `json:"encountersLost"`
	LastPlayedAt   int64 `json:"lastPlayedAt"`
}

type LoyaltyTier string

const (
	TierStranger     LoyaltyTier = "stranger"
	TierAcquaintance LoyaltyTier = "acquaintance"
	TierFriend       LoyaltyTier = "friend"
	TierTrusted      LoyaltyTier = "trusted"
	TierLegendary    LoyaltyTier = "legendary"
)

// Loyalty deltas applied by RecordCardPlay.
const (
	LoyaltyKeyStatWin = 15
	LoyaltyOffStatWin = 5
	LoyaltyLoss       = -20
)

func GetLoyaltyTier(loyalty int) LoyaltyTier {
	switch {
	case loyalty >= 1000:
		return TierLegendary
	case loyalty >= 500:
		return TierTrusted
	case loyalty >= 250:
		return TierFriend
	case loyalty >= 100:
		return TierAcquaintance
	}
	return TierStranger
}

// GetLoyaltyBonus maps loyalty to the flat stat triple a companion adds to
// card totals.
func GetLoyaltyBonus(loyalty int) CardStats {
	switch {
	case loyalty >= 1000:
		return CardStats{Might: 4, Fortune: 3, Cunning: 2}
	case loyalty >= 500:
		return CardStats{Might: 3, Fortune: 2, Cunning: 1}
	case loyalty >= 250:
		return CardStats{Might: 2, Fortune: 1, Cunning: 0}
	case loyalty >= 100:
		return CardStats{Might: 1, Fortune: 0, Cunning: 0}
	}
	return CardStats{}
}

// CompanionAbilities lists the abilities unlocked at the card's current
// loyalty, lowest tier first.
func CompanionAbilities(loyalty int) []string {
	var abilities []string
	if loyalty >= 100 {
		abilities = append(abilities, "stat_focus")
	}
	if loyalty >= 250 {
		abilities = append(abilities, "key_stat_insight")
	}
	if loyalty >= 500 {
		abilities = append(abilities, "stat_conversion")
	}
	if loyalty >= 1000 {
		abilities = append(abilities, "perfect_execution")
	}
	return abilities
}
