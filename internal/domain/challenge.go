package domain

// Requirements are the three stat thresholds of a skill check.
type Requirements struct {
	MightReq   int `json:"might_req"`
	FortuneReq int `json:"fortune_req"`
	CunningReq int `json:"cunning_req"`
}

func (r Requirements) Get(path SkillPath) int {
	switch path {
	case PathMight:
		return r.MightReq
	case PathFortune:
		return r.FortuneReq
	case PathCunning:
		return r.CunningReq
	}
	return 0
}

// KeyStat is the path that grants full rewards: the highest requirement,
// first of might/fortune/cunning on ties.
func (r Requirements) KeyStat() SkillPath {
	key := PathMight
	best := r.MightReq
	if r.FortuneReq > best {
		key, best = PathFortune, r.FortuneReq
	}
	if r.CunningReq > best {
		key = PathCunning
	}
	return key
}

// SkillCheck is one generated challenge. Ephemeral; lives only in the active
// session snapshot.
type SkillCheck struct {
	Scene        string       `json:"scene"`
	Requirements Requirements `json:"requirements"`
	KeyStat      SkillPath    `json:"keyStat"`
}

// ActionPath is one of the three answers offered after cards are played.
type ActionPath struct {
	Path           SkillPath `json:"path"`
	Narrative      string    `json:"narrative"`
	Unlocked       bool      `json:"unlocked"`
	IsTotalFailure bool      `json:"isTotalFailure,omitempty"`
}

// RollResult is the outcome of one resolved encounter.
type RollResult struct {
	Path          SkillPath `json:"path"`
	Success       bool      `json:"success"`
	Total         CardStats `json:"total"`
	Scene         string    `json:"scene"`
	GloryGained   int       `json:"gloryGained"`
	NarrativeDice int       `json:"narrativeDice"`
	WasKeyStat    bool      `json:"wasKeyStat"`
}

type GamePhase string

const (
	PhaseHome         GamePhase = "home"
	PhaseIntro        GamePhase = "intro"
	PhaseChallenge    GamePhase = "challenge"
	PhaseActionChoice GamePhase = "action-choice"
	PhaseResolution   GamePhase = "resolution"
	PhaseTransition   GamePhase = "transition"
	PhaseEnded        GamePhase = "ended"
)
