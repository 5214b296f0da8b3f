package domain

// GameSession is a snapshot of the encounter state machine, persisted after
// every phase transition so a browser reload can resume mid-encounter.
type GameSession struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`

	Phase            GamePhase    `json:"phase"`
	Hand             []LoreCard   `json:"hand"`
	SelectedCardIDs  []string     `json:"selectedCardIds"`
	IntroScene       string       `json:"introScene"`
	CurrentChallenge *SkillCheck  `json:"currentChallenge,omitempty"`
	AvailableActions []ActionPath `json:"availableActions,omitempty"`
	LastResult       *RollResult  `json:"lastResult,omitempty"`
	TransitionScene  string       `json:"transitionScene,omitempty"`

	// PendingRecruit is the synthesized companion offered after a key-stat
	// win, until the player accepts or moves on.
	PendingRecruit *LoreCard `json:"pendingRecruit,omitempty"`
}

func (s *GameSession) HandCardIDs() []string {
	ids := make([]string, 0, len(s.Hand))
	for _, card := range s.Hand {
		ids = append(ids, card.ID)
	}
	return ids
}

func (s *GameSession) HandCard(id string) (LoreCard, bool) {
	for _, card := range s.Hand {
		if card.ID == id {
			return card, true
		}
	}
	return LoreCard{}, false
}
