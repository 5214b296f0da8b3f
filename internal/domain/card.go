package domain

type CardType string

const (
	CardTypeCharacter CardType = "Character"
	CardTypeItem      CardType = "Item"
	CardTypeLocation  CardType = "Location"
)

type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityLegendary Rarity = "Legendary"
)

// SkillPath is one of the three ways a player can answer a challenge.
type SkillPath string

const (
	PathMight   SkillPath = "might"
	PathFortune SkillPath = "fortune"
	PathCunning SkillPath = "cunning"
	// PathFumble marks a resolution where no real path applied.
	PathFumble SkillPath = "fumble"
)

var AllSkillPaths = []SkillPath{PathMight, PathFortune, PathCunning}

func (p SkillPath) IsValid() bool {
	return p == PathMight || p == PathFortune || p == PathCunning
}

type CardStats struct {
	Might   int `json:"might"`
	Fortune int `json:"fortune"`
	Cunning int `json:"cunning"`
}

func (s CardStats) Add(other CardStats) CardStats {
	return CardStats{
		Might:   s.Might + other.Might,
		Fortune: s.Fortune + other.Fortune,
		Cunning: s.Cunning + other.Cunning,
	}
}

func (s CardStats) Get(path SkillPath) int {
	switch path {
	case PathMight:
		return s.Might
	case PathFortune:
		return s.Fortune
	case PathCunning:
		return s.Cunning
	}
	return 0
}

// CardDialogue holds canned companion lines keyed by moment.
type CardDialogue struct {
	OnPlay       []string `json:"onPlay"`
	OnWin        []string `json:"onWin"`
	OnLose       []string `json:"onLose"`
	OnKeyStat    []string `json:"onKeyStat"`
	OnNonKeyStat []string `json:"onNonKeyStat"`
}

// LoreCard is an immutable card template. Companion progress for Character
// cards lives in a separate CompanionState overlay keyed by the same ID;
// the template itself is never mutated.
type LoreCard struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Type          CardType      `json:"type"`
	Stats         CardStats     `json:"stats"`
	Rarity        Rarity        `json:"rarity"`
	Flavor        string        `json:"flavor"`
	ArtURL        string        `json:"artUrl,omitempty"`
	PreferredPath SkillPath     `json:"preferredPath,omitempty"`
	Dialogue      *CardDialogue `json:"dialogue,omitempty"`
}

// EnrichedCard is a card template merged with its companion overlay at read
// time. Loyalty fields are zero for non-Character cards and for characters
// that have never been played.
type EnrichedCard struct {
	LoreCard
	Loyalty        int         `json:"loyalty"`
	LoyaltyTier    LoyaltyTier `json:"loyaltyTier"`
	TimesPlayed    int         `json:"timesPlayed"`
	EncountersWon  int         `json:"encountersWon"`
	EncountersLost int         `json:"encountersLost"`
	HasCompanion   bool        `json:"hasCompanion"`
}

// Enrich merges a companion overlay onto a card template without mutating
// either. A nil state yields a bare enriched card.
func Enrich(template LoreCard, state *CompanionState) EnrichedCard {
	card := EnrichedCard{LoreCard: template, LoyaltyTier: TierStranger}
	if template.Type != CardTypeCharacter || state == nil {
		return card
	}
	card.Loyalty = state.Loyalty
	card.LoyaltyTier = GetLoyaltyTier(state.Loyalty)
	card.TimesPlayed = state.TimesPlayed
	card.EncountersWon = state.EncountersWon
	card.EncountersLost = state.EncountersLost
	card.HasCompanion = true
	return card
}
