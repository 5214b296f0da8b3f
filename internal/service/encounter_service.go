package service

import (
	"context"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/narrative"
)

// Narrative dice costs. Costs are tied to unlock status, not to whether
// generation actually succeeded; a template fallback is billed the same.
const (
	dicePerPathNarrative = 1
	diceDoomBatch        = 3
	diceNewChallenge     = 1
)

// EncounterService drives the encounter phase cycle:
// home -> intro -> challenge -> action-choice -> resolution -> transition ->
// challenge, looping until the session ends. The session snapshot is
// autosaved after every transition.
type EncounterService struct {
	profiles    *ProfileService
	progression *ProgressionService
	challenges  *ChallengeService
	companions  *CompanionService
	decks       *DeckService
	sessions    *SessionService
	gen         narrative.Generator
	rng         *rand.Rand
	events      EventSink
}

func NewEncounterService(
	profiles *ProfileService,
	progression *ProgressionService,
	challenges *ChallengeService,
	companions *CompanionService,
	decks *DeckService,
	sessions *SessionService,
	gen narrative.Generator,
	rng *rand.Rand,
	events EventSink,
) *EncounterService {
	if events == nil {
		events = NoopSink{}
	}
	return &EncounterService{
		profiles:    profiles,
		progression: progression,
		challenges:  challenges,
		companions:  companions,
		decks:       decks,
		sessions:    sessions,
		gen:         gen,
		rng:         rng,
		events:      events,
	}
}

// ComputeStatTotals aggregates the played cards' base stats, the profile's
// permanent bonuses, loyalty bonuses from played companions, and signed
// injury debuffs. Pure and order-independent.
func ComputeStatTotals(profile *domain.PlayerProfile, cards []domain.LoreCard, states map[string]*domain.CompanionState) domain.CardStats {
	total := profile.BonusStats
	for _, card := range cards {
		total = total.Add(card.Stats)
		if card.Type == domain.CardTypeCharacter {
			if state, ok := states[card.ID]; ok {
				total = total.Add(domain.GetLoyaltyBonus(state.Loyalty))
			}
		}
	}
	for _, injury := range profile.ActiveInjuries {
		total = total.Add(injury.StatDebuff)
	}
	return total
}

// Current returns the active session snapshot.
func (s *EncounterService) Current(ctx context.Context, playerID uuid.UUID) (*domain.GameSession, error) {
	session, err := s.sessions.Autosave(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNoActiveSession
	}
	return session, nil
}

// StartSession opens a new story: draws the first hand and generates the
// intro scene. Any previous autosave is overwritten.
func (s *EncounterService) StartSession(ctx context.Context, playerID uuid.UUID) (*domain.GameSession, error) {
	profile, err := s.profiles.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	profile.Stats.SessionsStarted++

	hand, err := s.decks.DrawHand(ctx, playerID, profile.HandSize, nil)
	if err != nil {
		return nil, err
	}

	text, genErr := s.gen.Generate(ctx, narrative.BuildIntroPrompt(hand), narrative.BudgetIntro)
	intro := narrative.Fallback(text, genErr, narrative.IntroFallback(s.rng, hand))

	session := &domain.GameSession{
		ID:         "session_" + uuid.NewString(),
		Phase:      domain.PhaseIntro,
		Hand:       hand,
		IntroScene: intro,
	}

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.sessions.WriteAutosave(ctx, playerID, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ContinueToChallenge advances from the intro or transition scene into the
// next skill check. The challenge is generated here after an intro; after a
// transition it was already generated by NextEncounter.
func (s *EncounterService) ContinueToChallenge(ctx context.Context, playerID uuid.UUID) (*domain.GameSession, error) {
	session, err := s.Current(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if session.Phase != domain.PhaseIntro && session.Phase != domain.PhaseTransition {
		return nil, domain.ErrWrongPhase
	}

	if session.CurrentChallenge == nil {
		profile, err := s.profiles.Get(ctx, playerID)
		if err != nil {
			return nil, err
		}
		profile.SpendNarrativeDice(diceNewChallenge)
		session.CurrentChallenge = s.challenges.Generate(ctx, profile)
		profile.PendingEncounterModifier = 0
		if err := s.profiles.Save(ctx, profile); err != nil {
			return nil, err
		}
	}

	session.Phase = domain.PhaseChallenge
	session.SelectedCardIDs = nil
	session.AvailableActions = nil
	if err := s.sessions.WriteAutosave(ctx, playerID, session); err != nil {
		return nil, err
	}
	return session, nil
}

// PlayCards evaluates the selected cards against the current challenge and
// produces the three action paths. Each requirement is met or not
// independently. If all three are unmet the batch becomes three doom
// narratives at a flat cost; otherwise each unlocked path bills one die for
// its preview and locked paths render a fixed string for free. The three
// narrative calls run in parallel; any failure degrades that path's text to
// its template.
func (s *EncounterService) PlayCards(ctx context.Context, playerID uuid.UUID, cardIDs []string) (*domain.GameSession, error) {
	session, err := s.Current(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if session.Phase != domain.PhaseChallenge || session.CurrentChallenge == nil {
		return nil, domain.ErrWrongPhase
	}

	profile, err := s.profiles.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if len(cardIDs) == 0 || len(cardIDs) > profile.PlayAreaSize {
		return nil, domain.ErrTooManyCards
	}

	seen := make(map[string]bool, len(cardIDs))
	cards := make([]domain.LoreCard, 0, len(cardIDs))
	for _, id := range cardIDs {
		card, ok := session.HandCard(id)
		if !ok || seen[id] {
			return nil, domain.ErrCardNotInHand
		}
		seen[id] = true
		cards = append(cards, card)
	}

	states, err := s.companions.States(ctx, playerID)
	if err != nil {
		return nil, err
	}
	totals := ComputeStatTotals(profile, cards, states)

	challenge := session.CurrentChallenge
	anyUnlocked := false
	for _, path := range domain.AllSkillPaths {
		if totals.Get(path) >= challenge.Requirements.Get(path) {
			anyUnlocked = true
			break
		}
	}

	actions := make([]domain.ActionPath, len(domain.AllSkillPaths))
	var wg sync.WaitGroup
	if !anyUnlocked {
		profile.SpendNarrativeDice(diceDoomBatch)
		for i, path := range domain.AllSkillPaths {
			wg.Add(1)
			go func(i int, path domain.SkillPath) {
				defer wg.Done()
				text, genErr := s.gen.Generate(ctx, narrative.BuildDoomPrompt(path, challenge.Scene), narrative.BudgetDoom)
				actions[i] = domain.ActionPath{
					Path:           path,
					Narrative:      narrative.Fallback(text, genErr, narrative.DoomFallback(s.rng, path)),
					Unlocked:       false,
					IsTotalFailure: true,
				}
			}(i, path)
		}
	} else {
		for i, path := range domain.AllSkillPaths {
			required := challenge.Requirements.Get(path)
			have := totals.Get(path)
			if have < required {
				actions[i] = domain.ActionPath{
					Path:      path,
					Narrative: narrative.LockedText(required, have),
				}
				continue
			}
			profile.SpendNarrativeDice(dicePerPathNarrative)
			wg.Add(1)
			go func(i int, path domain.SkillPath) {
				defer wg.Done()
				text, genErr := s.gen.Generate(ctx, narrative.BuildActionPrompt(cards, path, challenge.Scene), narrative.BudgetAction)
				actions[i] = domain.ActionPath{
					Path:      path,
					Narrative: narrative.Fallback(text, genErr, narrative.ActionPreviewFallback(s.rng, path)),
					Unlocked:  true,
				}
			}(i, path)
		}
	}
	wg.Wait()

	session.SelectedCardIDs = cardIDs
	session.AvailableActions = actions
	session.Phase = domain.PhaseActionChoice

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.sessions.WriteAutosave(ctx, playerID, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ResolutionOutcome is everything one path choice produced.
type ResolutionOutcome struct {
	Session              *domain.GameSession   `json:"session"`
	Result               *domain.RollResult    `json:"result"`
	LevelUp              *domain.LevelUpResult `json:"levelUp,omitempty"`
	AchievementsUnlocked []domain.Achievement  `json:"achievementsUnlocked,omitempty"`
	LoyaltyChanges       []LoyaltyChange       `json:"loyaltyChanges,omitempty"`
	RecruitOffer         *domain.LoreCard      `json:"recruitOffer,omitempty"`
}

// ChooseAction resolves the encounter along the chosen path: a forced
// failure when every path was locked, a guaranteed success on an unlocked
// path (full reward on the key stat, reduced off it), or a coin flip on a
// locked path while others were open. The outcome then fans out into glory,
// dice, loyalty, XP, stats, and achievements in one profile save.
func (s *EncounterService) ChooseAction(ctx context.Context, playerID uuid.UUID, path domain.SkillPath) (*ResolutionOutcome, error) {
	if !path.IsValid() {
		return nil, domain.ErrInvalidPath
	}
	session, err := s.Current(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if session.Phase != domain.PhaseActionChoice || session.CurrentChallenge == nil {
		return nil, domain.ErrWrongPhase
	}

	var chosen *domain.ActionPath
	for i := range session.AvailableActions {
		if session.AvailableActions[i].Path == path {
			chosen = &session.AvailableActions[i]
			break
		}
	}
	if chosen == nil {
		return nil, domain.ErrInvalidPath
	}

	challenge := session.CurrentChallenge
	var branch domain.OutcomeBranch
	switch {
	case chosen.IsTotalFailure:
		branch = domain.BranchDoom
	case chosen.Unlocked:
		if path == challenge.KeyStat {
			branch = domain.BranchKeyStat
		} else {
			branch = domain.BranchOffStat
		}
	default:
		if s.rng.Float64() >= 0.5 {
			branch = domain.BranchRiskySuccess
		} else {
			branch = domain.BranchRiskyFailure
		}
	}

	profile, err := s.profiles.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	tier := domain.DifficultyByID(profile.SelectedDifficulty)
	glory, dice := domain.ResolveReward(path, branch, tier.RewardMultiplier)
	if dice > 0 && profile.HasPerk("master_storyteller") {
		dice *= 2
	}
	profile.AddGlory(glory)
	profile.NarrativeDice += dice

	cards := make([]domain.LoreCard, 0, len(session.SelectedCardIDs))
	for _, id := range session.SelectedCardIDs {
		if card, ok := session.HandCard(id); ok {
			cards = append(cards, card)
		}
	}

	states, err := s.companions.States(ctx, playerID)
	if err != nil {
		return nil, err
	}
	// Totals as they stood for the unlock evaluation, before the level-up
	// stat boost and loyalty shifts land.
	totals := ComputeStatTotals(profile, cards, states)

	success := branch.Success()
	text, genErr := s.gen.Generate(ctx,
		narrative.BuildResolutionPrompt(cards, path, success, challenge.Scene), narrative.BudgetResolution)
	scene := narrative.Fallback(text, genErr, narrative.ResolutionFallback(s.rng, path, success))

	loyaltyChanges := s.companions.ApplyEncounterOutcome(states, cards, branch)
	if err := s.companions.SaveStates(ctx, playerID, states); err != nil {
		return nil, err
	}

	levelUp := s.progression.AwardXP(profile, EncounterXP(glory))

	// A doom resolution counts as a fumble: no real path applied.
	statPath := path
	if branch == domain.BranchDoom {
		statPath = domain.PathFumble
	}
	achievements := s.progression.UpdateEncounterStats(profile, success, statPath, glory, len(cards))
	s.progression.TickInjuries(profile)

	var recruit *domain.LoreCard
	if branch == domain.BranchKeyStat {
		recruit = s.companions.SynthesizeRecruit(ctx, challenge, path, profile.Level)
	}

	result := &domain.RollResult{
		Path:          statPath,
		Success:       success,
		Total:         totals,
		Scene:         scene,
		GloryGained:   glory,
		NarrativeDice: dice,
		WasKeyStat:    branch == domain.BranchKeyStat,
	}

	session.LastResult = result
	session.PendingRecruit = recruit
	session.Phase = domain.PhaseResolution

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.sessions.WriteAutosave(ctx, playerID, session); err != nil {
		return nil, err
	}

	if levelUp != nil {
		s.events.Publish(playerID, EventLevelUp, levelUp)
	}
	for _, achievement := range achievements {
		s.events.Publish(playerID, EventAchievementUnlocked, achievement)
	}
	for _, change := range loyaltyChanges {
		s.events.Publish(playerID, EventLoyaltyChanged, change)
	}
	if recruit != nil {
		s.events.Publish(playerID, EventRecruitOffer, recruit)
	}

	return &ResolutionOutcome{
		Session:              session,
		Result:               result,
		LevelUp:              levelUp,
		AchievementsUnlocked: achievements,
		LoyaltyChanges:       loyaltyChanges,
		RecruitOffer:         recruit,
	}, nil
}

// NextEncounter bridges a resolved encounter into the next one: a fresh hand
// excluding the previous one, plus the next challenge and a transition scene
// generated in parallel.
func (s *EncounterService) NextEncounter(ctx context.Context, playerID uuid.UUID) (*domain.GameSession, error) {
	session, err := s.Current(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if session.Phase != domain.PhaseResolution {
		return nil, domain.ErrWrongPhase
	}

	profile, err := s.profiles.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	profile.SpendNarrativeDice(diceNewChallenge)

	hand, err := s.decks.DrawHand(ctx, playerID, profile.HandSize, session.HandCardIDs())
	if err != nil {
		return nil, err
	}

	lastScene := session.IntroScene
	if session.LastResult != nil {
		lastScene = session.LastResult.Scene
	}

	var challenge *domain.SkillCheck
	var transition string
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		challenge = s.challenges.Generate(ctx, profile)
	}()
	go func() {
		defer wg.Done()
		text, genErr := s.gen.Generate(ctx, narrative.BuildTransitionPrompt(lastScene), narrative.BudgetTransition)
		transition = narrative.Fallback(text, genErr, narrative.TransitionFallback(s.rng))
	}()
	wg.Wait()

	profile.PendingEncounterModifier = 0
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	session.Phase = domain.PhaseTransition
	session.Hand = hand
	session.CurrentChallenge = challenge
	session.TransitionScene = transition
	session.SelectedCardIDs = nil
	session.AvailableActions = nil
	session.PendingRecruit = nil

	if err := s.sessions.WriteAutosave(ctx, playerID, session); err != nil {
		return nil, err
	}
	return session, nil
}

// AcceptRecruit adds the pending recruit to the player's collection.
func (s *EncounterService) AcceptRecruit(ctx context.Context, playerID uuid.UUID) (*domain.LoreCard, error) {
	session, err := s.Current(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if session.PendingRecruit == nil {
		return nil, domain.ErrNoPendingRecruit
	}
	recruit := *session.PendingRecruit

	if err := s.companions.AddRecruit(ctx, playerID, recruit); err != nil {
		return nil, err
	}

	profile, err := s.profiles.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	profile.CollectedCompanions = append(profile.CollectedCompanions, recruit.ID)
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	session.PendingRecruit = nil
	if err := s.sessions.WriteAutosave(ctx, playerID, session); err != nil {
		return nil, err
	}
	return &recruit, nil
}

// EndSession returns the player home and clears the autosave.
func (s *EncounterService) EndSession(ctx context.Context, playerID uuid.UUID) error {
	if _, err := s.Current(ctx, playerID); err != nil {
		return err
	}
	profile, err := s.profiles.Get(ctx, playerID)
	if err != nil {
		return err
	}
	profile.Stats.SessionsCompleted++
	if err := s.profiles.Save(ctx, profile); err != nil {
		return err
	}
	return s.sessions.ClearAutosave(ctx, playerID)
}
