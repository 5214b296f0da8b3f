package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storyforge/server/internal/api"
	"github.com/storyforge/server/internal/narrative"
	"github.com/storyforge/server/internal/websocket"
)

// Server is a running HTTP API over an in-memory fixture.
type Server struct {
	*httptest.Server
	Fixture *Fixture
	Hub     *websocket.Hub
}

// NewServer starts the full router for integration tests. Cleanup is
// registered on t.
func NewServer(t *testing.T, gen narrative.Generator) *Server {
	t.Helper()
	hub := websocket.NewHub()
	fixture := NewFixture(gen, 1, hub)
	srv := httptest.NewServer(api.NewRouter(fixture.Services, hub))
	t.Cleanup(func() {
		srv.Close()
		hub.Stop()
	})
	return &Server{Server: srv, Fixture: fixture, Hub: hub}
}

// Do issues a JSON request against the server. An empty token skips the
// Authorization header; a nil body sends no payload.
func (s *Server) Do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// Decode unmarshals a JSON response body into out and closes the body.
func Decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
