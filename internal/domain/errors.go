package domain

import "errors"

// Profile / progression errors
var (
	ErrDifficultyLocked = errors.New("difficulty not yet unlocked")
	ErrUnknownPerk      = errors.New("unknown perk")
	ErrNoPerkPoints     = errors.New("no available perk points")
	ErrPerkLevelTooLow  = errors.New("player level below perk requirement")
	ErrPerkAlreadyOwned = errors.New("perk already acquired")
	ErrNotEnoughDice    = errors.New("not enough narrative dice")
)

// Encounter flow errors
var (
	ErrWrongPhase       = errors.New("action not valid in current phase")
	ErrNoActiveSession  = errors.New("no active session")
	ErrCardNotInHand    = errors.New("card not in hand")
	ErrTooManyCards     = errors.New("too many cards selected")
	ErrInvalidPath      = errors.New("invalid skill path")
	ErrNoPendingRecruit = errors.New("no pending recruit offer")
)

// Deck / session errors
var (
	ErrDeckNotFound    = errors.New("deck not found")
	ErrDefaultDeck     = errors.New("default deck cannot be modified")
	ErrSessionNotFound = errors.New("session not found")
)
