package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/storyforge/server/internal/data"
	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/narrative"
	"github.com/storyforge/server/internal/repository"
)

// CompanionService tracks per-card loyalty overlays and synthesizes recruit
// cards from defeated encounters. Card templates are never mutated; all
// companion progress lives in the overlay map.
type CompanionService struct {
	companions *repository.CompanionStore
	gen        narrative.Generator
}

func NewCompanionService(companions *repository.CompanionStore, gen narrative.Generator) *CompanionService {
	return &CompanionService{companions: companions, gen: gen}
}

func (s *CompanionService) States(ctx context.Context, playerID uuid.UUID) (map[string]*domain.CompanionState, error) {
	return s.companions.GetAll(ctx, playerID)
}

func (s *CompanionService) SaveStates(ctx context.Context, playerID uuid.UUID, states map[string]*domain.CompanionState) error {
	return s.companions.SaveAll(ctx, playerID, states)
}

// EnrichCards merges companion overlays onto card templates at read time.
func (s *CompanionService) EnrichCards(ctx context.Context, playerID uuid.UUID, cards []domain.LoreCard) ([]domain.EnrichedCard, error) {
	states, err := s.States(ctx, playerID)
	if err != nil {
		return nil, err
	}
	enriched := make([]domain.EnrichedCard, 0, len(cards))
	for _, card := range cards {
		enriched = append(enriched, domain.Enrich(card, states[card.ID]))
	}
	return enriched, nil
}

// EnrichedCollection returns the full catalog plus recruited cards, with
// overlays applied.
func (s *CompanionService) EnrichedCollection(ctx context.Context, playerID uuid.UUID) ([]domain.EnrichedCard, error) {
	recruits, err := s.companions.GetRecruits(ctx, playerID)
	if err != nil {
		return nil, err
	}
	collection := append(append([]domain.LoreCard(nil), data.LoreDeck...), recruits...)
	return s.EnrichCards(ctx, playerID, collection)
}

// AddRecruit persists a synthesized card into the player's collection with
// its starting loyalty already banked.
func (s *CompanionService) AddRecruit(ctx context.Context, playerID uuid.UUID, card domain.LoreCard) error {
	recruits, err := s.companions.GetRecruits(ctx, playerID)
	if err != nil {
		return err
	}
	if err := s.companions.SaveRecruits(ctx, playerID, append(recruits, card)); err != nil {
		return err
	}

	states, err := s.States(ctx, playerID)
	if err != nil {
		return err
	}
	states[card.ID] = &domain.CompanionState{Loyalty: RecruitStartingLoyalty}
	return s.SaveStates(ctx, playerID, states)
}

// LoyaltyBonus sums the flat stat bonuses the played companions contribute.
func (s *CompanionService) LoyaltyBonus(states map[string]*domain.CompanionState, cards []domain.LoreCard) domain.CardStats {
	var total domain.CardStats
	for _, card := range cards {
		if card.Type != domain.CardTypeCharacter {
			continue
		}
		if state, ok := states[card.ID]; ok {
			total = total.Add(domain.GetLoyaltyBonus(state.Loyalty))
		}
	}
	return total
}

// LoyaltyChange reports one card's loyalty movement from a resolved
// encounter.
type LoyaltyChange struct {
	CardID   string             `json:"cardId"`
	CardName string             `json:"cardName"`
	Delta    int                `json:"delta"`
	Loyalty  int                `json:"loyalty"`
	Tier     domain.LoyaltyTier `json:"tier"`
}

// ApplyEncounterOutcome records one encounter against every played Character
// card: play counts, win/loss tallies, and the loyalty delta for the branch.
// Loyalty is floored at zero. The mutated map must be saved by the caller.
func (s *CompanionService) ApplyEncounterOutcome(states map[string]*domain.CompanionState, cards []domain.LoreCard, branch domain.OutcomeBranch) []LoyaltyChange {
	var changes []LoyaltyChange
	now := time.Now().UnixMilli()
	for _, card := range cards {
		if card.Type != domain.CardTypeCharacter {
			continue
		}
		state := states[card.ID]
		if state == nil {
			state = &domain.CompanionState{}
			states[card.ID] = state
		}
		state.TimesPlayed++
		state.LastPlayedAt = now

		var delta int
		if branch.Success() {
			state.EncountersWon++
			delta = domain.LoyaltyOffStatWin
			if branch == domain.BranchKeyStat {
				delta = domain.LoyaltyKeyStatWin
			}
		} else {
			state.EncountersLost++
			delta = domain.LoyaltyLoss
		}
		state.Loyalty += delta
		if state.Loyalty < 0 {
			state.Loyalty = 0
		}

		changes = append(changes, LoyaltyChange{
			CardID:   card.ID,
			CardName: card.Name,
			Delta:    delta,
			Loyalty:  state.Loyalty,
			Tier:     domain.GetLoyaltyTier(state.Loyalty),
		})
	}
	return changes
}

// RecruitStartingLoyalty is the loyalty a recruit joins with: already an
// acquaintance, not a stranger.
const RecruitStartingLoyalty = 100

var enemyKeywords = []string{
	"Bandit", "Dragon", "Goblin", "Wizard", "Beast", "Knight", "Assassin", "Warrior", "Mage",
}

var recruitLines = map[domain.SkillPath]struct{ play, win, lose string }{
	domain.PathMight:   {"Time to hit something.", "Crushed it. Literally.", "Should have hit it harder."},
	domain.PathFortune: {"Feeling lucky today.", "The dice remember who freed me.", "Even my luck has limits."},
	domain.PathCunning: {"I already see three ways through.", "All according to plan.", "A rare miscalculation."},
}

// SynthesizeRecruit builds a recruitable Character card from a conquered
// challenge: stats at 40% of the challenge requirements with +3 on the
// winning path, rarity by player level, and a name pulled from the scene's
// enemy keyword. Flavor text is generated with a canned fallback.
func (s *CompanionService) SynthesizeRecruit(ctx context.Context, challenge *domain.SkillCheck, winningPath domain.SkillPath, playerLevel int) *domain.LoreCard {
	reqs := challenge.Requirements
	stats := domain.CardStats{
		Might:   int(math.Floor(float64(reqs.MightReq) * 0.4)),
		Fortune: int(math.Floor(float64(reqs.FortuneReq) * 0.4)),
		Cunning: int(math.Floor(float64(reqs.CunningReq) * 0.4)),
	}
	switch winningPath {
	case domain.PathMight:
		stats.Might += 3
	case domain.PathFortune:
		stats.Fortune += 3
	case domain.PathCunning:
		stats.Cunning += 3
	}

	rarity := domain.RarityUncommon
	if playerLevel >= 10 {
		rarity = domain.RarityRare
	}

	enemy := "Fighter"
	for _, keyword := range enemyKeywords {
		if strings.Contains(strings.ToLower(challenge.Scene), strings.ToLower(keyword)) {
			enemy = keyword
			break
		}
	}
	name := fmt.Sprintf("Reformed %s", enemy)

	text, err := s.gen.Generate(ctx, narrative.BuildCompanionDialoguePrompt(name, challenge.Scene, winningPath), narrative.BudgetCompanion)
	flavor := narrative.Fallback(text, err,
		fmt.Sprintf("Bested by %s. Decided joining was smarter than a rematch.", pathApproachShort(winningPath)))

	lines := recruitLines[winningPath]
	return &domain.LoreCard{
		ID:            "recruit_" + uuid.NewString(),
		Name:          name,
		Type:          domain.CardTypeCharacter,
		Stats:         stats,
		Rarity:        rarity,
		Flavor:        flavor,
		PreferredPath: winningPath,
		Dialogue: &domain.CardDialogue{
			OnPlay: []string{lines.play},
			OnWin:  []string{lines.win},
			OnLose: []string{lines.lose},
		},
	}
}

func pathApproachShort(path domain.SkillPath) string {
	switch path {
	case domain.PathMight:
		return "brute force"
	case domain.PathFortune:
		return "dumb luck"
	case domain.PathCunning:
		return "a clever trick"
	}
	return "fate"
}
