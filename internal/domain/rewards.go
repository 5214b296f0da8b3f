package domain

import "math"

// OutcomeBranch classifies how a chosen action resolves. The encounter state
// machine picks the branch; the reward table below decides glory and dice.
type OutcomeBranch string

const (
	// BranchKeyStat: chosen path was unlocked and matched the challenge's
	// key stat.
	BranchKeyStat OutcomeBranch = "key-stat"
	// BranchOffStat: chosen path was unlocked but not the key stat.
	BranchOffStat OutcomeBranch = "off-stat"
	// BranchRiskySuccess / BranchRiskyFailure: chosen path was locked while
	// another was open; a coin flip decided the outcome.
	BranchRiskySuccess OutcomeBranch = "risky-success"
	BranchRiskyFailure OutcomeBranch = "risky-failure"
	// BranchDoom: every path was locked; failure is forced.
	BranchDoom OutcomeBranch = "doom"
)

func (b OutcomeBranch) Success() bool {
	return b == BranchKeyStat || b == BranchOffStat || b == BranchRiskySuccess
}

type rewardRule struct {
	baseGlory func(SkillPath) int
	factor    float64
	dice      int
}

var baseGloryByPath = map[SkillPath]int{PathMight: 50, PathFortune: 40, PathCunning: 60}
var riskyGloryByPath = map[SkillPath]int{PathMight: 25, PathFortune: 20, PathCunning: 30}

// rewardTable: branch -> glory formula and dice grant. Glory is multiplied by
// the difficulty reward multiplier and floored; penalties scale the same way.
var rewardTable = map[OutcomeBranch]rewardRule{
	BranchKeyStat:      {baseGlory: func(p SkillPath) int { return baseGloryByPath[p] }, factor: 1.0, dice: 2},
	BranchOffStat:      {baseGlory: func(p SkillPath) int { return baseGloryByPath[p] }, factor: 0.6, dice: 1},
	BranchRiskySuccess: {baseGlory: func(p SkillPath) int { return riskyGloryByPath[p] }, factor: 1.0, dice: 1},
	BranchRiskyFailure: {baseGlory: func(SkillPath) int { return -30 }, factor: 1.0, dice: 0},
	BranchDoom:         {baseGlory: func(SkillPath) int { return -50 }, factor: 1.0, dice: 0},
}

// ResolveReward computes the glory delta and narrative dice grant for a
// path/branch pair under the given difficulty reward multiplier.
func ResolveReward(path SkillPath, branch OutcomeBranch, rewardMultiplier float64) (glory int, dice int) {
	rule := rewardTable[branch]
	glory = int(math.Floor(float64(rule.baseGlory(path)) * rule.factor * rewardMultiplier))
	return glory, rule.dice
}
