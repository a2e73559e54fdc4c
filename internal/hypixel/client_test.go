package hypixel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"emperror.dev/errors"
	"go.uber.org/zap"
)

func testClient(baseURL string) *Client {
	return &Client{
		apiKey:  "test-key",
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		log: zap.NewNop().Sugar(),
	}
}

func TestPlayerByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/player" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "Technoblade" {
			t.Errorf("name query param = %q, want Technoblade", got)
		}
		if got := r.Header.Get("API-Key"); got != "test-key" {
			t.Errorf("API-Key header = %q, want test-key", got)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"player": {
				"uuid": "b876ec32e396476ba1158438d83c67d4",
				"displayname": "Technoblade",
				"karma": 243160,
				"stats": {"Bedwars": {"wins_bedwars": 5000}}
			}
		}`))
	}))
	defer server.Close()

	player, err := testClient(server.URL).PlayerByName(context.Background(), "Technoblade")
	if err != nil {
		t.Fatalf("PlayerByName failed: %v", err)
	}
	if player.Displayname != "Technoblade" {
		t.Errorf("Displayname = %q, want Technoblade", player.Displayname)
	}
	if player.UUID != "b876ec32e396476ba1158438d83c67d4" {
		t.Errorf("UUID = %q", player.UUID)
	}
	if got := player.Number("karma"); got != 243160 {
		t.Errorf("karma = %v, want 243160", got)
	}
	if got := player.Number("stats", "Bedwars", "wins_bedwars"); got != 5000 {
		t.Errorf("bedwars wins = %v, want 5000", got)
	}
}

func TestPlayerByUUIDNormalizesForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("uuid"); got != "b876ec32-e396-476b-a115-8438d83c67d4" {
			t.Errorf("uuid query param = %q, want dashed form", got)
		}
		_, _ = w.Write([]byte(`{"success": true, "player": {"uuid": "b876ec32e396476ba1158438d83c67d4", "displayname": "Technoblade"}}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).PlayerByUUID(context.Background(), "b876ec32e396476ba1158438d83c67d4")
	if err != nil {
		t.Fatalf("PlayerByUUID failed: %v", err)
	}
}

func TestPlayerByUUIDRejectsGarbage(t *testing.T) {
	client := testClient("http://127.0.0.1:1")

	if _, err := client.PlayerByUUID(context.Background(), "not-a-uuid"); err == nil {
		t.Error("expected error for malformed uuid")
	}
}

func TestPlayerByNameRejectsEmpty(t *testing.T) {
	client := testClient("http://127.0.0.1:1")

	if _, err := client.PlayerByName(context.Background(), ""); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestPlayerNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "player": null}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).PlayerByName(context.Background(), "NoSuchPlayer")
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("error = %v, want ErrPlayerNotFound", err)
	}
}

func TestInvalidKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testClient(server.URL).PlayerByName(context.Background(), "Technoblade")
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("error = %v, want ErrInvalidKey", err)
	}
}

func TestThrottledStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testClient(server.URL).PlayerByName(context.Background(), "Technoblade")
	if !errors.Is(err, ErrThrottled) {
		t.Errorf("error = %v, want ErrThrottled", err)
	}
}

func TestThrottledCause(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "throttle": true, "cause": "Key throttle"}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).PlayerByName(context.Background(), "Technoblade")
	if !errors.Is(err, ErrThrottled) {
		t.Errorf("error = %v, want ErrThrottled", err)
	}
}

func TestUpstreamFailureCause(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "cause": "Internal error"}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).PlayerByName(context.Background(), "Technoblade")
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("error = %v, want ErrUpstream", err)
	}
}

func TestUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := testClient(server.URL).PlayerByName(context.Background(), "Technoblade")
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("error = %v, want ErrUpstream", err)
	}
}

func TestMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": tru`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).PlayerByName(context.Background(), "Technoblade")
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("error = %v, want ErrUpstream", err)
	}
}

// TestLivePlayerLookup hits the real API and only runs when a key is
// configured, mirroring how the bot itself is exercised.
func TestLivePlayerLookup(t *testing.T) {
	apiKey := os.Getenv("HYPIXEL_API_KEY")
	if apiKey == "" {
		t.Skip("HYPIXEL_API_KEY not set, skipping live test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	player, err := NewClient(apiKey, zap.NewNop().Sugar()).PlayerByName(ctx, "Technoblade")
	if err != nil {
		t.Fatalf("live lookup failed: %v", err)
	}
	if player.Displayname == "" {
		t.Error("live lookup returned empty displayname")
	}
}
