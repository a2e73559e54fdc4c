package metrics

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewDisabledWithoutConfig(t *testing.T) {
	if c := New(Config{}, zap.NewNop().Sugar()); c != nil {
		t.Error("expected nil client for empty config")
	}
	if c := New(Config{URL: "http://localhost:8086"}, zap.NewNop().Sugar()); c != nil {
		t.Error("expected nil client when token is missing")
	}
}

func TestNilClientNoOps(t *testing.T) {
	var c *Client

	// None of these may panic on the nil receiver.
	c.IncCommand("stats")
	c.IncLookup()
	c.IncResolve()
}

func TestCountersAccumulate(t *testing.T) {
	c := &Client{
		log:      zap.NewNop().Sugar(),
		commands: make(map[string]uint32),
	}

	c.IncCommand("stats")
	c.IncCommand("stats")
	c.IncCommand("profile")
	c.IncLookup()
	c.IncResolve()
	c.IncResolve()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.commands["stats"] != 2 {
		t.Errorf("stats count = %d, want 2", c.commands["stats"])
	}
	if c.commands["profile"] != 1 {
		t.Errorf("profile count = %d, want 1", c.commands["profile"])
	}
	if c.lookups != 1 {
		t.Errorf("lookups = %d, want 1", c.lookups)
	}
	if c.resolves != 2 {
		t.Errorf("resolves = %d, want 2", c.resolves)
	}
}
