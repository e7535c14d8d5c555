// internal/config/validate_test.go
package config

import "testing"

// helper to build a minimal valid config
func valid() *Config {
	return &Config{
		Bridge: BridgeConfig{
			Source: SourceConfig{Endpoint: "127.0.0.1:1502", UnitID: 1},
			Relay:  RelayConfig{Endpoint: "192.168.1.21:102"},
		},
	}
}

// ---- tests ----

func TestValidate_MinimalValid(t *testing.T) {
	if err := Validate(valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_SourceEndpointRequired(t *testing.T) {
	cfg := valid()
	cfg.Bridge.Source.Endpoint = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for missing source endpoint, got nil")
	}
}

func TestValidate_RelayEndpointRequired(t *testing.T) {
	cfg := valid()
	cfg.Bridge.Relay.Endpoint = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for missing relay endpoint, got nil")
	}
}

func TestValidate_NegativeIntervalRejected(t *testing.T) {
	cfg := valid()
	cfg.Bridge.Poll.IntervalMs = -1

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for negative interval, got nil")
	}
}

func TestValidate_NegativeTimeoutRejected(t *testing.T) {
	cfg := valid()
	cfg.Bridge.Relay.TimeoutMs = -5

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for negative timeout, got nil")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := valid()
	Normalize(cfg)

	b := cfg.Bridge
	if b.Source.TimeoutMs != DefaultTimeoutMs {
		t.Fatalf("source timeout: got=%d want=%d", b.Source.TimeoutMs, DefaultTimeoutMs)
	}
	if b.Relay.TimeoutMs != DefaultTimeoutMs {
		t.Fatalf("relay timeout: got=%d want=%d", b.Relay.TimeoutMs, DefaultTimeoutMs)
	}
	if b.Poll.IntervalMs != DefaultIntervalMs {
		t.Fatalf("interval: got=%d want=%d", b.Poll.IntervalMs, DefaultIntervalMs)
	}
	if b.Poll.RetryMs != DefaultRetryMs {
		t.Fatalf("retry: got=%d want=%d", b.Poll.RetryMs, DefaultRetryMs)
	}
	if b.Mirror.Path != DefaultMirrorPath {
		t.Fatalf("mirror path: got=%q want=%q", b.Mirror.Path, DefaultMirrorPath)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := valid()
	cfg.Bridge.Poll.IntervalMs = 500
	cfg.Bridge.Mirror.Path = "/run/bridge/mirror.json"
	Normalize(cfg)

	if cfg.Bridge.Poll.IntervalMs != 500 {
		t.Fatalf("interval overwritten: got=%d", cfg.Bridge.Poll.IntervalMs)
	}
	if cfg.Bridge.Mirror.Path != "/run/bridge/mirror.json" {
		t.Fatalf("mirror path overwritten: got=%q", cfg.Bridge.Mirror.Path)
	}
}
