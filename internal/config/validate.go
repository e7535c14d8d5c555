// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	b := cfg.Bridge

	if b.Source.Endpoint == "" {
		return fmt.Errorf("bridge.source.endpoint is required")
	}
	if b.Relay.Endpoint == "" {
		return fmt.Errorf("bridge.relay.endpoint is required")
	}

	if b.Source.TimeoutMs < 0 {
		return fmt.Errorf("bridge.source.timeout_ms must not be negative")
	}
	if b.Relay.TimeoutMs < 0 {
		return fmt.Errorf("bridge.relay.timeout_ms must not be negative")
	}

	if b.Poll.IntervalMs < 0 {
		return fmt.Errorf("bridge.poll.interval_ms must not be negative")
	}
	if b.Poll.RetryMs < 0 {
		return fmt.Errorf("bridge.poll.retry_ms must not be negative")
	}

	return nil
}
