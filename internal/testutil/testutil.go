// Package testutil wires the service stack over the in-memory store for
// tests. Nothing here touches Postgres or the network.
package testutil

import (
	"context"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/storyforge/server/internal/config"
	"github.com/storyforge/server/internal/domain"
	"github.com/storyforge/server/internal/narrative"
	"github.com/storyforge/server/internal/repository"
	"github.com/storyforge/server/internal/repository/memory"
	"github.com/storyforge/server/internal/service"
)

// TestConfig returns a config suitable for tests: fixed JWT secret, short
// expiry, no external services.
func TestConfig() *config.Config {
	return &config.Config{
		Port:               "0",
		Environment:        "test",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
	}
}

// Fixture is a full service stack over an in-memory store with a seeded
// randomness stream.
type Fixture struct {
	KV       *memory.Store
	Stores   *repository.Stores
	Config   *config.Config
	Rand     *rand.Rand
	Services *service.Services
}

// NewFixture builds the stack with the given generator and RNG seed. A nil
// generator disables narrative generation, exercising the template fallbacks;
// a nil sink discards events.
func NewFixture(gen narrative.Generator, seed int64, events service.EventSink) *Fixture {
	if gen == nil {
		gen = narrative.Disabled{}
	}
	kv := memory.New()
	stores := repository.NewStores(kv)
	cfg := TestConfig()
	rng := service.NewGameRand(seed)
	return &Fixture{
		KV:       kv,
		Stores:   stores,
		Config:   cfg,
		Rand:     rng,
		Services: service.NewServices(stores, cfg, gen, rng, events),
	}
}

// NewPlayer bootstraps a progression profile for a fresh player id and
// returns both.
func (f *Fixture) NewPlayer(ctx context.Context, name string) (uuid.UUID, *domain.PlayerProfile, error) {
	id := uuid.New()
	profile, err := f.Services.Profile.Bootstrap(ctx, id, name)
	return id, profile, err
}

// StubGenerator is a controllable narrative generator. It records every
// prompt it receives; safe for the concurrent fan-out in encounter
// resolution.
type StubGenerator struct {
	mu      sync.Mutex
	Text    string
	Err     error
	Calls   int
	Prompts []string
}

func (g *StubGenerator) Generate(_ context.Context, prompt string, _ narrative.Options) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls++
	g.Prompts = append(g.Prompts, prompt)
	return g.Text, g.Err
}

// CallCount returns how many generations were requested.
func (g *StubGenerator) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Calls
}

// CapturedPrompts returns a copy of every prompt seen so far.
func (g *StubGenerator) CapturedPrompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.Prompts...)
}

// RecordingSink captures events published by the service layer.
type RecordingSink struct {
	mu     sync.Mutex
	Events []RecordedEvent
}

type RecordedEvent struct {
	PlayerID uuid.UUID
	Event    string
	Payload  any
}

func (s *RecordingSink) Publish(playerID uuid.UUID, event string, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, RecordedEvent{PlayerID: playerID, Event: event, Payload: payload})
}

// ByEvent returns the recorded events with the given name.
func (s *RecordingSink) ByEvent(event string) []RecordedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []RecordedEvent
	for _, e := range s.Events {
		if e.Event == event {
			matched = append(matched, e)
		}
	}
	return matched
}
