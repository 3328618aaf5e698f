package api

import (
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	// Serve blocks, so exercise the config plumbing it relies on instead of
	// running the full server here. Endpoint behavior is covered by the
	// server package tests.
	cfg := Config{}

	if cfg.Port != 0 {
		t.Errorf("expected zero port to defer to server defaults, got %d", cfg.Port)
	}
	if cfg.AuditInterval != 0 {
		t.Errorf("expected zero interval to defer to server defaults, got %s", cfg.AuditInterval)
	}
}

func TestVersionDefaults(t *testing.T) {
	if version == "" {
		t.Error("expected a non-empty default version")
	}
	if version != versionDefault && version == "unknown" {
		t.Error("version should only be 'unknown' when never set")
	}
	if commit == "" || date == "" {
		t.Error("expected ldflags placeholders to be non-empty")
	}
}
