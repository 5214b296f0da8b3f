package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player is a local account on this server. Each player owns exactly one
// PlayerProfile, keyed by the same ID.
type Player struct {
	ID           uuid.UUID `json:"id"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"displayName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AuthSession backs refresh-token rotation. One per player.
type AuthSession struct {
	ID               uuid.UUID `json:"id"`
	PlayerID         uuid.UUID `json:"playerId"`
	RefreshTokenHash string    `json:"-"`
	ExpiresAt        time.Time `json:"expiresAt"`
	CreatedAt        time.Time `json:"createdAt"`
}
