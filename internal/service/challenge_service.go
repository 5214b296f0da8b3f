package service

import (
	"context"
	"math"
	"math/rand"

	"github.com/storyforge/server/internal/data"
	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/narrative"
)

// requirement jitter spread: each stat draws its own factor in
// [0.925, 1.075].
const (
	jitterMin  = 0.925
	jitterSpan = 0.15
	minReq     = 2
)

// ChallengeService generates skill checks scaled to the player's progression
// and the selected difficulty tier.
type ChallengeService struct {
	gen narrative.Generator
	rng *rand.Rand
}

func NewChallengeService(gen narrative.Generator, rng *rand.Rand) *ChallengeService {
	return &ChallengeService{gen: gen, rng: rng}
}

// ScaleRequirements derives the three stat thresholds from the profile.
// Base difficulty grows with play area size and sublinearly with level, the
// tier multiplier stretches it, and threat plus any pending encounter
// modifier shift all three before per-stat jitter is applied. The three
// draws are independent so the challenge shape varies even with a symmetric
// base. Every threshold is floored at the minimum.
func (s *ChallengeService) ScaleRequirements(profile *domain.PlayerProfile) domain.Requirements {
	tier := domain.DifficultyByID(profile.SelectedDifficulty)
	base := float64(profile.PlayAreaSize)*3.5 + math.Pow(float64(profile.Level), 0.8)
	scaled := base*tier.RequirementMultiplier +
		float64(profile.PendingEncounterModifier) +
		float64(profile.ThreatLevel)*0.5

	roll := func() int {
		jitter := jitterMin + s.rng.Float64()*jitterSpan
		req := int(math.Floor(scaled * jitter))
		if req < minReq {
			req = minReq
		}
		return req
	}

	return domain.Requirements{
		MightReq:   roll(),
		FortuneReq: roll(),
		CunningReq: roll(),
	}
}

// Generate produces the next challenge: a random catalog scene as the seed,
// scaled requirements, and generated prose that degrades to the seed text.
func (s *ChallengeService) Generate(ctx context.Context, profile *domain.PlayerProfile) *domain.SkillCheck {
	seed := data.ChallengeScenes[s.rng.Intn(len(data.ChallengeScenes))]
	reqs := s.ScaleRequirements(profile)

	text, err := s.gen.Generate(ctx, narrative.BuildChallengePrompt(seed.Scene, reqs), narrative.BudgetChallenge)
	scene := narrative.Fallback(text, err, seed.Scene)

	return &domain.SkillCheck{
		Scene:        scene,
		Requirements: reqs,
		KeyStat:      reqs.KeyStat(),
	}
}
