package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storyforge/server/internal/domain"
)

func TestRequirementsKeyStat(t *testing.T) {
	assert.Equal(t, domain.PathMight, domain.Requirements{MightReq: 9, FortuneReq: 4, CunningReq: 6}.KeyStat())
	assert.Equal(t, domain.PathFortune, domain.Requirements{MightReq: 3, FortuneReq: 8, CunningReq: 5}.KeyStat())
	assert.Equal(t, domain.PathCunning, domain.Requirements{MightReq: 3, FortuneReq: 5, CunningReq: 8}.KeyStat())

	// Ties resolve in might, fortune, cunning order.
	assert.Equal(t, domain.PathMight, domain.Requirements{MightReq: 5, FortuneReq: 5, CunningReq: 5}.KeyStat())
	assert.Equal(t, domain.PathFortune, domain.Requirements{MightReq: 3, FortuneReq: 7, CunningReq: 7}.KeyStat())
}

func TestRequirementsGet(t *testing.T) {
	reqs := domain.Requirements{MightReq: 1, FortuneReq: 2, CunningReq: 3}
	assert.Equal(t, 1, reqs.Get(domain.PathMight))
	assert.Equal(t, 2, reqs.Get(domain.PathFortune))
	assert.Equal(t, 3, reqs.Get(domain.PathCunning))
	assert.Equal(t, 0, reqs.Get(domain.PathFumble))
}

func TestSkillPathIsValid(t *testing.T) {
	assert.True(t, domain.PathMight.IsValid())
	assert.True(t, domain.PathFortune.IsValid())
	assert.True(t, domain.PathCunning.IsValid())
	assert.False(t, domain.PathFumble.IsValid())
	assert.False(t, domain.SkillPath("luck").IsValid())
}

func TestCardStatsAddAndGet(t *testing.T) {
	total := domain.CardStats{Might: 1, Fortune: 2, Cunning: 3}.Add(domain.CardStats{Might: 4, Fortune: -1})
	assert.Equal(t, domain.CardStats{Might: 5, Fortune: 1, Cunning: 3}, total)
	assert.Equal(t, 5, total.Get(domain.PathMight))
}

func TestGameSessionHandLookup(t *testing.T) {
	session := &domain.GameSession{Hand: []domain.LoreCard{{ID: "a"}, {ID: "b"}}}
	assert.Equal(t, []string{"a", "b"}, session.HandCardIDs())

	card, ok := session.HandCard("b")
	assert.True(t, ok)
	assert.Equal(t, "b", card.ID)

	_, ok = session.HandCard("c")
	assert.False(t, ok)
}
