package narrative

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/storyforge/server/internal/domain"
)

// Mad-libs intro templates; {character}/{item}/{location} are filled from the
// drawn hand.
var introTemplates = []string{
	"{character} stumbled into {location}, clutching {item}. The air smelled of old pizza and destiny.",
	"At {location}, {character} discovered {item} hidden beneath a pile of character sheets.",
	"{character} rolled initiative as {location} erupted in chaos. Good thing they brought {item}.",
	"Legend tells of {character} who sought {item} in the depths of {location}. This is that legend.",
	"{character} entered {location}, {item} in hand, ready to face whatever critical failures awaited.",
}

var resolutionTemplates = map[domain.SkillPath]struct{ success, fumble []string }{
	domain.PathMight: {
		success: []string{
			"With raw power and determination, you flip the table—metaphorically. The challenge crumbles.",
			"You channel your inner barbarian. The problem is solved through sheer force of will.",
			"No subtlety. No grace. Pure brute-force solution. It works. Somehow.",
		},
		fumble: []string{
			"You try to power through, but strength alone isn't enough. The dice gods mock you.",
			"Your mighty effort falls short. Sometimes muscles can't solve everything.",
		},
	},
	domain.PathFortune: {
		success: []string{
			"Against all odds, the dice favor you. A nat 20 appears. The table erupts in cheers.",
			"Pure luck carries you through. The randomness of the universe smiles upon your roll.",
			"You didn't plan this. You didn't earn this. But the dice don't lie—you win.",
		},
		fumble: []string{
			"The dice betray you at the worst possible moment. A critical failure echoes across the table.",
			"Luck abandons you. Your roll is so bad, the GM actually looks concerned.",
		},
	},
	domain.PathCunning: {
		success: []string{
			"Your wit shines through. A clever loophole, a brilliant strategy—the GM nods in approval.",
			"You outsmart the challenge with tactical genius. The rules lawyer in you beams with pride.",
			"Intelligence and creativity combine. Your solution is so elegant, the table applauds.",
		},
		fumble: []string{
			"Your clever plan has one fatal flaw: it doesn't work. The GM chuckles darkly.",
			"Overthinking costs you. Sometimes the simple solution is the right one.",
		},
	},
}

var actionPreviewTemplates = map[domain.SkillPath][]string{
	domain.PathMight: {
		"Meet the problem head-on: raw strength, zero hesitation.",
		"Roll up your sleeves. Some challenges just need to be out-muscled.",
	},
	domain.PathFortune: {
		"Trust the dice. Somewhere in this mess is a lucky break with your name on it.",
		"Close your eyes, roll, and let the universe sort out the details.",
	},
	domain.PathCunning: {
		"There's always an angle. Find the loophole and exploit it mercilessly.",
		"Outthink it. The cleverest solution is usually the least expected one.",
	},
}

var doomTemplates = map[domain.SkillPath][]string{
	domain.PathMight: {
		"You could try force, but your arms already know how this ends. Badly.",
		"Swinging wildly at a problem this big only decides which way you fall.",
	},
	domain.PathFortune: {
		"The dice have abandoned you entirely. Any roll now is just choosing your epitaph.",
		"Luck left the building an hour ago. What remains is pure consequence.",
	},
	domain.PathCunning: {
		"No plan survives contact with this disaster. Not even a clever one.",
		"You see every angle, and every angle ends the same way: poorly.",
	},
}

var transitionTemplates = []string{
	"The dust settles. Somewhere, a GM shuffles notes and smiles. A new scene begins.",
	"One crisis ends; the snack bowl refills; the next encounter is already rolling initiative.",
	"The story presses on. Fresh cards, fresh trouble, same questionable decision-making.",
	"A page turns in the campaign log. Whatever comes next, the dice are already warming up.",
}

// IntroFallback builds a deterministic intro from the first three hand cards.
func IntroFallback(rng *rand.Rand, cards []domain.LoreCard) string {
	var character, item, location string
	for _, card := range cards {
		switch card.Type {
		case domain.CardTypeCharacter:
			if character == "" {
				character = card.Name
			}
		case domain.CardTypeItem:
			if item == "" {
				item = card.Name
			}
		case domain.CardTypeLocation:
			if location == "" {
				location = card.Name
			}
		}
	}
	// Hands are not guaranteed one of each type; fill gaps in draw order.
	for _, card := range cards {
		if character == "" {
			character = card.Name
			continue
		}
		if item == "" && card.Name != character {
			item = card.Name
			continue
		}
		if location == "" && card.Name != character && card.Name != item {
			location = card.Name
		}
	}

	template := introTemplates[rng.Intn(len(introTemplates))]
	template = strings.Replace(template, "{character}", character, 1)
	template = strings.Replace(template, "{item}", item, 1)
	return strings.Replace(template, "{location}", location, 1)
}

func ResolutionFallback(rng *rand.Rand, path domain.SkillPath, success bool) string {
	templates, ok := resolutionTemplates[path]
	if !ok {
		templates = resolutionTemplates[domain.PathFortune]
	}
	pool := templates.success
	if !success {
		pool = templates.fumble
	}
	return pool[rng.Intn(len(pool))]
}

func ActionPreviewFallback(rng *rand.Rand, path domain.SkillPath) string {
	pool := actionPreviewTemplates[path]
	return pool[rng.Intn(len(pool))]
}

func DoomFallback(rng *rand.Rand, path domain.SkillPath) string {
	pool := doomTemplates[path]
	return pool[rng.Intn(len(pool))]
}

func TransitionFallback(rng *rand.Rand) string {
	return transitionTemplates[rng.Intn(len(transitionTemplates))]
}

// LockedText is the fixed string shown for a path the played cards cannot
// reach. It costs no dice and triggers no generation call.
func LockedText(required, have int) string {
	return fmt.Sprintf("Locked: requires %d, you have %d", required, have)
}
