package narrative_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyforge/server/internal/narrative"
)

func TestOpenRouterClientGenerate(t *testing.T) {
	var gotAuth, gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotModel, _ = req["model"].(string)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "  A goblin appears.  "}},
			},
		})
	}))
	defer server.Close()

	client := narrative.NewOpenRouterClient(narrative.OpenRouterConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
	})

	text, err := client.Generate(context.Background(), "prompt", narrative.BudgetIntro)
	require.NoError(t, err)
	assert.Equal(t, "A goblin appears.", text, "response text is trimmed")
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "qwen/qwen-2.5-72b-instruct", gotModel, "model defaults when unset")
}

func TestOpenRouterClientNoAPIKey(t *testing.T) {
	client := narrative.NewOpenRouterClient(narrative.OpenRouterConfig{})
	_, err := client.Generate(context.Background(), "prompt", narrative.BudgetIntro)
	assert.ErrorIs(t, err, narrative.ErrGenerationUnavailable)
}

func TestOpenRouterClientServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer server.Close()

	client := narrative.NewOpenRouterClient(narrative.OpenRouterConfig{BaseURL: server.URL, APIKey: "k"})
	_, err := client.Generate(context.Background(), "prompt", narrative.BudgetIntro)
	assert.ErrorContains(t, err, "status 502")
}

func TestOpenRouterClientAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limited"},
		})
	}))
	defer server.Close()

	client := narrative.NewOpenRouterClient(narrative.OpenRouterConfig{BaseURL: server.URL, APIKey: "k"})
	_, err := client.Generate(context.Background(), "prompt", narrative.BudgetIntro)
	assert.ErrorContains(t, err, "rate limited")
}

func TestOpenRouterClientEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := narrative.NewOpenRouterClient(narrative.OpenRouterConfig{BaseURL: server.URL, APIKey: "k"})
	_, err := client.Generate(context.Background(), "prompt", narrative.BudgetIntro)
	assert.ErrorContains(t, err, "no choices")
}
