package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/storyforge/server/internal/domain"
)

// ProgressionService implements the leveling engine: XP awards, level-up
// bonuses, perk acquisition, and achievement checks. Methods that take a
// *domain.PlayerProfile mutate it in place and leave persistence to the
// caller, so an encounter resolution can batch many mutations into one save.
type ProgressionService struct {
	profiles *ProfileService
}

func NewProgressionService(profiles *ProfileService) *ProgressionService {
	return &ProgressionService{profiles: profiles}
}

// EncounterXP converts an encounter's glory delta into XP: glory gained when
// positive, otherwise a flat consolation award so failures still progress.
func EncounterXP(gloryGained int) int {
	if gloryGained > 0 {
		return gloryGained
	}
	return 20
}

// AwardXP adds lifetime XP and recomputes the level from scratch. Each level
// gained grants +1 to every bonus stat and one perk point, with an extra
// point at every fifth level and another at the 10 and 20 milestones (a
// level-10 gain is worth three points total). Crossing 10 or 20 also unlocks
// the matching milestone achievement and applies its reward immediately.
// Perks whose requirement matches a newly reached level are surfaced in the
// result. Returns nil when no level changed.
func (s *ProgressionService) AwardXP(profile *domain.PlayerProfile, xp int) *domain.LevelUpResult {
	if xp <= 0 {
		return nil
	}
	oldLevel := profile.Level
	profile.TotalXP += xp
	profile.Level = domain.LevelFromXP(profile.TotalXP)
	profile.CurrentXP = domain.XPProgressInLevel(profile.TotalXP).Current

	if profile.Level <= oldLevel {
		return nil
	}

	result := &domain.LevelUpResult{NewLevel: profile.Level}
	for lvl := oldLevel + 1; lvl <= profile.Level; lvl++ {
		result.StatBoosts = result.StatBoosts.Add(domain.CardStats{Might: 1, Fortune: 1, Cunning: 1})
		result.PerkPointsEarned++
		if lvl%5 == 0 {
			result.PerkPointsEarned++
		}
		if lvl == 10 || lvl == 20 {
			result.PerkPointsEarned++
			id := domain.AchievementLevel10
			if lvl == 20 {
				id = domain.AchievementLevel20
			}
			if a, ok := s.unlockAchievement(profile, id); ok {
				result.AchievementsUnlocked = append(result.AchievementsUnlocked, a)
			}
		}
		for _, perk := range domain.PerkCatalog {
			if perk.Requirement == lvl {
				result.PerksUnlocked = append(result.PerksUnlocked, perk)
			}
		}
	}
	profile.BonusStats = profile.BonusStats.Add(result.StatBoosts)
	profile.AvailablePerkPoints += result.PerkPointsEarned
	return result
}

// ApplyPerk spends one perk point on a catalog perk. Validation failures
// leave the profile untouched.
func (s *ProgressionService) ApplyPerk(ctx context.Context, playerID uuid.UUID, perkID string) (*domain.PlayerProfile, error) {
	perk, ok := domain.PerkByID(perkID)
	if !ok {
		return nil, domain.ErrUnknownPerk
	}

	profile, err := s.profiles.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if profile.HasPerk(perkID) {
		return nil, domain.ErrPerkAlreadyOwned
	}
	if profile.AvailablePerkPoints < 1 {
		return nil, domain.ErrNoPerkPoints
	}
	if profile.Level < perk.Requirement {
		return nil, domain.ErrPerkLevelTooLow
	}

	acquired := perk
	acquired.Acquired = true
	profile.Perks = append(profile.Perks, acquired)
	profile.AvailablePerkPoints--

	// Perk effects fold into the profile once, at acquisition.
	if effect := perk.Effect; effect != nil {
		profile.BonusStats = profile.BonusStats.Add(domain.CardStats{
			Might:   effect.MightBonus,
			Fortune: effect.FortuneBonus,
			Cunning: effect.CunningBonus,
		})
		profile.NarrativeDice += effect.NarrativeDiceBonus
		profile.HandSize += effect.HandSizeBonus
		profile.PlayAreaSize += effect.PlayAreaBonus
	}

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateEncounterStats records one resolved encounter in the lifetime
// counters, then re-checks achievements. The per-path counter tracks the
// chosen path regardless of outcome; fumble resolutions count toward no
// path.
func (s *ProgressionService) UpdateEncounterStats(profile *domain.PlayerProfile, success bool, path domain.SkillPath, gloryGained, cardsUsed int) []domain.Achievement {
	stats := &profile.Stats
	stats.EncountersCompleted++
	stats.CardsPlayed += cardsUsed
	if gloryGained > 0 {
		stats.TotalGloryEarned += gloryGained
	}
	if success {
		stats.EncountersSucceeded++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.HighestStreak {
			stats.HighestStreak = stats.CurrentStreak
		}
	} else {
		stats.EncountersFailed++
		stats.CurrentStreak = 0
	}
	switch path {
	case domain.PathMight:
		stats.MightPathsTaken++
	case domain.PathFortune:
		stats.FortunePathsTaken++
	case domain.PathCunning:
		stats.CunningPathsTaken++
	}
	return s.CheckAchievements(profile)
}

// TickInjuries ages active injuries by one encounter and drops the expired
// ones.
func (s *ProgressionService) TickInjuries(profile *domain.PlayerProfile) {
	if len(profile.ActiveInjuries) == 0 {
		return
	}
	remaining := profile.ActiveInjuries[:0]
	for _, injury := range profile.ActiveInjuries {
		injury.EncountersRemaining--
		if injury.EncountersRemaining > 0 {
			remaining = append(remaining, injury)
		}
	}
	profile.ActiveInjuries = remaining
}

// CheckAchievements unlocks every achievement whose condition the profile now
// meets and applies its rewards. Reward XP can raise the level and satisfy
// further achievements, so the check loops until a pass unlocks nothing.
func (s *ProgressionService) CheckAchievements(profile *domain.PlayerProfile) []domain.Achievement {
	var unlocked []domain.Achievement
	for {
		progress := false
		for i := range profile.Achievements {
			a := profile.Achievements[i]
			if a.Unlocked || !achievementMet(a.ID, profile) {
				continue
			}
			if granted, ok := s.unlockAchievement(profile, a.ID); ok {
				unlocked = append(unlocked, granted)
				progress = true
			}
		}
		if !progress {
			return unlocked
		}
	}
}

// unlockAchievement marks one catalog achievement unlocked and applies its
// reward. Reward XP routes through AwardXP and can level the profile.
// Returns false for unknown or already-unlocked ids.
func (s *ProgressionService) unlockAchievement(profile *domain.PlayerProfile, id string) (domain.Achievement, bool) {
	for i := range profile.Achievements {
		a := &profile.Achievements[i]
		if a.ID != id || a.Unlocked {
			continue
		}
		a.Unlocked = true
		a.UnlockedAt = time.Now().UnixMilli()
		if reward := a.Reward; reward != nil {
			profile.AvailablePerkPoints += reward.PerkPoints
			profile.NarrativeDice += reward.NarrativeDice
			s.AwardXP(profile, reward.XP)
		}
		return *a, true
	}
	return domain.Achievement{}, false
}

func achievementMet(id string, profile *domain.PlayerProfile) bool {
	stats := profile.Stats
	switch id {
	case domain.AchievementFirstSteps:
		return stats.EncountersCompleted >= 1
	case domain.AchievementMightSpecialist:
		return stats.MightPathsTaken >= 10
	case domain.AchievementFortuneSpecialist:
		return stats.FortunePathsTaken >= 10
	case domain.AchievementCunningSpecialist:
		return stats.CunningPathsTaken >= 10
	case domain.AchievementPerfectRun:
		return stats.CurrentStreak >= 5
	case domain.AchievementCenturyClub:
		return stats.EncountersCompleted >= 100
	case domain.AchievementLevel10:
		return profile.Level >= 10
	case domain.AchievementLevel20:
		return profile.Level >= 20
	}
	return false
}
