// Package narrative wraps the external text-generation service. Every call
// site pairs a Generate call with a deterministic template fallback, so a
// failed or disabled generator degrades the prose but never the game.
package narrative

import (
	"context"
	"errors"
	"log"
)

// ErrGenerationUnavailable is returned when no generator is configured.
var ErrGenerationUnavailable = errors.New("narrative generation unavailable")

// Options tune one generation call.
type Options struct {
	MaxTokens   int
	Temperature float64
}

// Per-kind generation budgets. These are configuration constants, not game
// rules.
var (
	BudgetIntro      = Options{MaxTokens: 120, Temperature: 0.8}
	BudgetChallenge  = Options{MaxTokens: 120, Temperature: 0.85}
	BudgetAction     = Options{MaxTokens: 100, Temperature: 0.85}
	BudgetDoom       = Options{MaxTokens: 100, Temperature: 0.9}
	BudgetResolution = Options{MaxTokens: 150, Temperature: 0.8}
	BudgetTransition = Options{MaxTokens: 100, Temperature: 0.85}
	BudgetCompanion  = Options{MaxTokens: 150, Temperature: 0.9}
)

// Generator produces narrative text from a prompt. An error means "no text";
// callers apply Fallback rather than propagating it.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// Disabled is the generator used when no API key is configured.
type Disabled struct{}

func (Disabled) Generate(context.Context, string, Options) (string, error) {
	return "", ErrGenerationUnavailable
}

// Fallback resolves a generation result against template text. This is the
// single place the degrade-to-template policy lives.
func Fallback(text string, err error, fallback string) string {
	if err != nil || text == "" {
		if err != nil && !errors.Is(err, ErrGenerationUnavailable) {
			log.Printf("ERROR [narrative.Fallback] generation failed, using template: %v", err)
		}
		return fallback
	}
	return text
}
