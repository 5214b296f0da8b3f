// Package data holds the static card and challenge catalogs the game ships
// with. Catalog entries are read-only templates; per-card companion progress
// is persisted separately.
package data

import "github.com/storyforge/server/internal/domain"

// LoreDeck is the full starter collection.
var LoreDeck = []domain.LoreCard{
	// Characters
	{
		ID: "char_001", Name: "Veteran Dice Hoarder", Type: domain.CardTypeCharacter,
		Stats: domain.CardStats{Might: 2, Fortune: 3, Cunning: 1}, Rarity: domain.RarityCommon,
		Flavor:        "Carries enough d20s to open a shop. Believes nat 1s are personal attacks.",
		PreferredPath: domain.PathFortune,
		Dialogue: &domain.CardDialogue{
			OnPlay:       []string{"*Rolls lucky d20*", "Trust the dice!"},
			OnWin:        []string{"NATURAL 20!", "The dice gods smile upon us!"},
			OnLose:       []string{"Nat 1... of course.", "These dice are CURSED!"},
			OnKeyStat:    []string{"Perfect roll! Just as planned.", "The math checks out!"},
			OnNonKeyStat: []string{"We won, but... wrong approach.", "Not how I would've rolled it."},
		},
	},
	{
		ID: "char_002", Name: "Forever-GM", Type: domain.CardTypeCharacter,
		Stats: domain.CardStats{Might: 1, Fortune: 1, Cunning: 4}, Rarity: domain.RarityRare,
		Flavor:        "Has run 47 campaigns. Finished zero. Dreams of being a player.",
		PreferredPath: domain.PathCunning,
		Dialogue: &domain.CardDialogue{
			OnPlay:       []string{"I've run this encounter 47 times...", "Please tell me you have a plan."},
			OnWin:        []string{"Surprisingly competent!", "Not bad. Not bad at all."},
			OnLose:       []string{"Saw that coming.", "Classic TPK energy."},
			OnKeyStat:    []string{"FINALLY! Someone who plays smart!", "By the book. Exactly as it should be."},
			OnNonKeyStat: []string{"You won, but... that was messy.", "Suboptimal. We could've done better."},
		},
	},
	{
		ID: "char_003", Name: "Rules Lawyer", Type: domain.CardTypeCharacter,
		Stats: domain.CardStats{Might: 0, Fortune: 2, Cunning: 4}, Rarity: domain.RarityUncommon,
		Flavor:        `"Actually, according to page 237..."`,
		PreferredPath: domain.PathCunning,
		Dialogue: &domain.CardDialogue{
			OnPlay:       []string{`"Actually, according to page 237..."`, "Technically speaking..."},
			OnWin:        []string{"Perfectly legal!", "Page 237 was correct after all!"},
			OnLose:       []string{"That violates section 4.2!", "I TOLD you page 237—"},
			OnKeyStat:    []string{"Textbook perfect!", "Exactly as the rules intended!"},
			OnNonKeyStat: []string{"Legal, but... not optimal.", "That's... technically allowed, I guess."},
		},
	},
	{
		ID: "char_004", Name: "Chaotic Murder Hobo", Type: domain.CardTypeCharacter,
		Stats: domain.CardStats{Might: 4, Fortune: 1, Cunning: 1}, Rarity: domain.RarityCommon,
		Flavor:        "Solution to every problem: violence. Backup plan: more violence.",
		PreferredPath: domain.PathMight,
		Dialogue: &domain.CardDialogue{
			OnPlay:       []string{"TIME TO SMASH!", "VIOLENCE SOLVES EVERYTHING!"},
			OnWin:        []string{"YEAH! MORE SMASHING!", "Did we loot the bodies?"},
			OnLose:       []string{"We should've hit it harder!", "Ow."},
			OnKeyStat:    []string{"PERFECT SMASH!", "That's how you do it!"},
			OnNonKeyStat: []string{"We won but... no smashing?", "That was BORING!"},
		},
	},
	{
		ID: "char_005", Name: "Minmaxed Optimizer", Type: domain.CardTypeCharacter,
		Stats: domain.CardStats{Might: 3, Fortune: 2, Cunning: 2}, Rarity: domain.RarityUncommon,
		Flavor:        "Spent 6 hours on character creation. Has spreadsheets.",
		PreferredPath: domain.PathMight,
		Dialogue: &domain.CardDialogue{
			OnPlay:       []string{"According to my calculations...", "*Pulls out spreadsheet*"},
			OnWin:        []string{"Optimal outcome achieved!", "127.3% efficiency!"},
			OnLose:       []string{"This doesn't match my simulations!", "The math was PERFECT!"},
			OnKeyStat:    []string{"Maximum efficiency!", "Peak optimization achieved!"},
			OnNonKeyStat: []string{"Suboptimal DPS...", "That wasn't in my calculations."},
		},
	},
	{
		ID: "char_006", Name: "The One Who Actually Reads Lore", Type: domain.CardTypeCharacter,
		Stats: domain.CardStats{Might: 1, Fortune: 2, Cunning: 3}, Rarity: domain.RarityRare,
		Flavor:        "Knows the campaign setting better than the GM.",
		PreferredPath: domain.PathCunning,
		Dialogue: &domain.CardDialogue{
			OnPlay:       []string{"According to the lore...", "I read about this in Chapter 12!"},
			OnWin:        []string{"Just like in the sourcebook!", "Knowledge is power!"},
			OnLose:       []string{"This contradicts the established lore!", "But the wiki said..."},
			OnKeyStat:    []string{"Lore-accurate victory!", "Exactly as the legends foretold!"},
			OnNonKeyStat: []string{"We won, but that's not canon...", "The lore suggested a different approach."},
		},
	},

	// Items
	{
		ID: "item_001", Name: "Cursed d20 (Always Rolls 1)", Type: domain.CardTypeItem,
		Stats: domain.CardStats{Might: 0, Fortune: 4, Cunning: 0}, Rarity: domain.RarityLegendary,
		Flavor: "Statistically impossible. Mathematically cursed. Emotionally devastating.",
	},
	{
		ID: "item_002", Name: "Bag of Holding (Full of Snacks)", Type: domain.CardTypeItem,
		Stats: domain.CardStats{Might: 1, Fortune: 2, Cunning: 2}, Rarity: domain.RarityCommon,
		Flavor: "Contains chips, dice, character sheets, and a fossilized pizza slice.",
	},
	{
		ID: "item_003", Name: "Emergency Character Sheet", Type: domain.CardTypeItem,
		Stats: domain.CardStats{Might: 2, Fortune: 3, Cunning: 1}, Rarity: domain.RarityCommon,
		Flavor: "Pre-rolled backup character. You KNOW you'll need it.",
	},
	{
		ID: "item_004", Name: "The Broken Eraser", Type: domain.CardTypeItem,
		Stats: domain.CardStats{Might: 1, Fortune: 1, Cunning: 3}, Rarity: domain.RarityUncommon,
		Flavor: "Smudges more than it erases. Essential to every session.",
	},
	{
		ID: "item_005", Name: "Miniature Painted at 3 AM", Type: domain.CardTypeItem,
		Stats: domain.CardStats{Might: 2, Fortune: 2, Cunning: 2}, Rarity: domain.RarityRare,
		Flavor: "Questionable quality. Undeniable passion.",
	},
	{
		ID: "item_006", Name: "Laminated GM Screen", Type: domain.CardTypeItem,
		Stats: domain.CardStats{Might: 1, Fortune: 0, Cunning: 4}, Rarity: domain.RarityUncommon,
		Flavor: "Covered in sticky notes, coffee stains, and dark secrets.",
	},
	{
		ID: "item_007", Name: "Deck of Many Memes", Type: domain.CardTypeItem,
		Stats: domain.CardStats{Might: 0, Fortune: 3, Cunning: 2}, Rarity: domain.RarityRare,
		Flavor: "Summons ancient jpgs to derail serious moments.",
	},

	// Locations
	{
		ID: "loc_001", Name: "The FLGS (Friendly Local Game Store)", Type: domain.CardTypeLocation,
		Stats: domain.CardStats{Might: 1, Fortune: 3, Cunning: 2}, Rarity: domain.RarityCommon,
		Flavor: "Smells like cardboard and broken dreams. Also, Magic packs.",
	},
	{
		ID: "loc_002", Name: "Dave's Mom's Basement", Type: domain.CardTypeLocation,
		Stats: domain.CardStats{Might: 2, Fortune: 2, Cunning: 2}, Rarity: domain.RarityCommon,
		Flavor: "The sacred hall where legends are forged and pizza is consumed.",
	},
	{
		ID: "loc_003", Name: "Discord Voice Channel #3", Type: domain.CardTypeLocation,
		Stats: domain.CardStats{Might: 0, Fortune: 2, Cunning: 3}, Rarity: domain.RarityUncommon,
		Flavor: "Echo. Lag. Someone's eating chips. Classic.",
	},
	{
		ID: "loc_004", Name: "The Table of Holding", Type: domain.CardTypeLocation,
		Stats: domain.CardStats{Might: 3, Fortune: 1, Cunning: 1}, Rarity: domain.RarityRare,
		Flavor: "A 6-foot folding table bearing the weight of 200 sourcebooks.",
	},
	{
		ID: "loc_005", Name: "Campaign Graveyard", Type: domain.CardTypeLocation,
		Stats: domain.CardStats{Might: 1, Fortune: 1, Cunning: 3}, Rarity: domain.RarityUncommon,
		Flavor: "Where unfinished campaigns go to haunt their GMs.",
	},
	{
		ID: "loc_006", Name: "Convention Hall (Saturday 2 PM)", Type: domain.CardTypeLocation,
		Stats: domain.CardStats{Might: 2, Fortune: 3, Cunning: 2}, Rarity: domain.RarityRare,
		Flavor: "Peak chaos. Maximum dice. Questionable hygiene.",
	},
	{
		ID: "loc_007", Name: "Character Creation Limbo", Type: domain.CardTypeLocation,
		Stats: domain.CardStats{Might: 0, Fortune: 1, Cunning: 4}, Rarity: domain.RarityLegendary,
		Flavor: "Some say players are still picking backgrounds to this day.",
	},
}

// CardByID looks up a catalog card.
func CardByID(id string) (domain.LoreCard, bool) {
	for _, card := range LoreDeck {
		if card.ID == id {
			return card, true
		}
	}
	return domain.LoreCard{}, false
}
