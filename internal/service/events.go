package service

import "github.com/google/uuid"

// Event names pushed over the player's socket.
const (
	EventLevelUp             = "level_up"
	EventAchievementUnlocked = "achievement_unlocked"
	EventLoyaltyChanged      = "loyalty_changed"
	EventRecruitOffer        = "recruit_offer"
)

// EventSink receives server-to-client notifications. Publishing must never
// block game logic; sinks drop events for disconnected players.
type EventSink interface {
	Publish(playerID uuid.UUID, event string, payload any)
}

// NoopSink discards all events; used in tests and when no hub is wired.
type NoopSink struct{}

func (NoopSink) Publish(uuid.UUID, string, any) {}
