package narrative

import (
	"fmt"
	"strings"

	"github.com/storyforge/server/internal/domain"
)

var pathApproaches = map[domain.SkillPath]string{
	domain.PathMight:   "brute force and determination",
	domain.PathFortune: "luck and chance",
	domain.PathCunning: "clever strategy and wit",
}

func cardContext(cards []domain.LoreCard) string {
	lines := make([]string, 0, len(cards))
	for _, card := range cards {
		lines = append(lines, fmt.Sprintf("- %s (%s): %s", card.Name, card.Type, card.Flavor))
	}
	return strings.Join(lines, "\n")
}

// BuildIntroPrompt asks for an opening scene that weaves in the drawn hand.
func BuildIntroPrompt(cards []domain.LoreCard) string {
	return fmt.Sprintf(`Create a brief, humorous intro scene (2-3 sentences) for a tabletop gaming story.

**Cards in play:**
%s

**Tone:** Self-aware tabletop gaming humor
**Style:** Witty, concise, sets up a situation without resolving it

Generate an engaging opening that naturally incorporates these elements.`, cardContext(cards))
}

// BuildChallengePrompt asks for a skill-check scene themed on a seed scene.
func BuildChallengePrompt(seedScene string, reqs domain.Requirements) string {
	return fmt.Sprintf(`Create a brief skill-check scene (2-3 sentences) for a tabletop gaming story.

**Inspiration:** "%s"
**Stakes:** The players must overcome this with Might (%d), Fortune (%d), or Cunning (%d).

**Tone:** Self-aware tabletop gaming humor
**Style:** Present a concrete obstacle. Do not resolve it. Do not mention the numbers.`,
		seedScene, reqs.MightReq, reqs.FortuneReq, reqs.CunningReq)
}

// BuildActionPrompt previews how the played cards would tackle the challenge
// via one path.
func BuildActionPrompt(cards []domain.LoreCard, path domain.SkillPath, challengeScene string) string {
	return fmt.Sprintf(`Create a brief action preview (1-2 sentences) for a tabletop gaming story.

**Challenge:** "%s"
**Approach:** The player considers using %s.
**Cards played:**
%s

**Style:** Describe how this approach could play out. Tempting, not conclusive.`,
		challengeScene, pathApproaches[path], cardContext(cards))
}

// BuildDoomPrompt narrates a path when every option has already failed.
func BuildDoomPrompt(path domain.SkillPath, challengeScene string) string {
	return fmt.Sprintf(`Create a brief doomed-option narrative (1-2 sentences) for a tabletop gaming story.

**Challenge:** "%s"
**Approach:** %s — but the cards were not enough; this can only end badly.

**Tone:** Comedic inevitability. The player is choosing HOW they fail, not whether.`,
		challengeScene, pathApproaches[path])
}

// BuildResolutionPrompt concludes the encounter.
func BuildResolutionPrompt(cards []domain.LoreCard, path domain.SkillPath, success bool, challengeScene string) string {
	outcome := "succeeded"
	tone := "Triumphant but humorous"
	if !success {
		outcome = "failed spectacularly"
		tone = "Comedic failure, self-aware"
	}
	return fmt.Sprintf(`Create a brief resolution (2-3 sentences) for a tabletop gaming story.

**Challenge faced:** "%s"
**What happened:** The player used %s and %s.
**Cards played:**
%s

**Tone:** %s
**Style:** Reference what happened. Make it feel connected.`,
		challengeScene, pathApproaches[path], outcome, cardContext(cards), tone)
}

// BuildTransitionPrompt bridges a resolved encounter into the next one.
func BuildTransitionPrompt(lastScene string) string {
	return fmt.Sprintf(`Create a brief transition (1-2 sentences) for a tabletop gaming story.

**Previous scene:** "%s"

**Style:** Wrap the previous moment and hint that new trouble approaches. Do not introduce the new trouble yet.`, lastScene)
}

// BuildCompanionDialoguePrompt names and voices a defeated foe turned
// companion.
func BuildCompanionDialoguePrompt(enemyName, challengeScene string, winningPath domain.SkillPath) string {
	return fmt.Sprintf(`A defeated foe joins the player's party in a tabletop gaming story.

**Foe:** %s
**Defeated by:** %s
**The encounter:** "%s"

Write one line of flavor text (under 20 words) this reformed foe would carry as a card caption.`,
		enemyName, pathApproaches[winningPath], challengeScene)
}
