package data

import "github.com/storyforge/server/internal/domain"

// ChallengeScenes are the canned skill-check scenes used when narrative
// generation is unavailable, and as flavor seeds for generated challenges.
// Requirements here are template values; live challenges get requirements
// from the difficulty scaler instead.
var ChallengeScenes = []domain.SkillCheck{
	{Scene: "A heated rules debate erupts. The table splits into factions. The GM looks exhausted.",
		Requirements: domain.Requirements{MightReq: 5, FortuneReq: 4, CunningReq: 7}},
	{Scene: "The dice betray you—three nat 1s in a row. The table goes silent. The GM smiles.",
		Requirements: domain.Requirements{MightReq: 3, FortuneReq: 8, CunningReq: 4}},
	{Scene: "Someone knocked over the miniatures. Chaos reigns. Initiative order is lost.",
		Requirements: domain.Requirements{MightReq: 6, FortuneReq: 5, CunningReq: 5}},
	{Scene: "The pizza arrives, but there's pineapple on it. The party must decide: eat or starve?",
		Requirements: domain.Requirements{MightReq: 4, FortuneReq: 6, CunningReq: 6}},
	{Scene: "Someone brought up \"edition wars.\" The ancient argument awakens once more.",
		Requirements: domain.Requirements{MightReq: 7, FortuneReq: 3, CunningReq: 6}},
	{Scene: "The GM asks \"Are you sure?\" Everyone at the table freezes in fear.",
		Requirements: domain.Requirements{MightReq: 5, FortuneReq: 7, CunningReq: 5}},
	{Scene: "A player forgot their dice. A stranger offers to lend theirs. Do you trust cursed dice?",
		Requirements: domain.Requirements{MightReq: 4, FortuneReq: 8, CunningReq: 4}},
	{Scene: "The campaign notes are gone. Deleted. The USB stick corrupted. Panic ensues.",
		Requirements: domain.Requirements{MightReq: 6, FortuneReq: 4, CunningReq: 7}},
	{Scene: "Someone brought a bard. They want to seduce the dragon. The GM sighs deeply.",
		Requirements: domain.Requirements{MightReq: 3, FortuneReq: 5, CunningReq: 8}},
	{Scene: "The rulebook has 800 pages. The answer is on exactly none of them.",
		Requirements: domain.Requirements{MightReq: 4, FortuneReq: 5, CunningReq: 8}},
	{Scene: "A random encounter appears: the one player who \"doesn't believe in social cues.\"",
		Requirements: domain.Requirements{MightReq: 5, FortuneReq: 6, CunningReq: 6}},
	{Scene: "Your character died. Again. Time to crack open the emergency backup sheet.",
		Requirements: domain.Requirements{MightReq: 7, FortuneReq: 6, CunningReq: 3}},
}
