// internal/config/normalize.go
package config

// Defaults applied by Normalize. Zero in the file means "use the default".
const (
	DefaultTimeoutMs  = 2000
	DefaultIntervalMs = 200
	DefaultRetryMs    = 1000
	DefaultMirrorPath = "relay_mirror.json"
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	b := &cfg.Bridge

	if b.Source.TimeoutMs == 0 {
		b.Source.TimeoutMs = DefaultTimeoutMs
	}
	if b.Relay.TimeoutMs == 0 {
		b.Relay.TimeoutMs = DefaultTimeoutMs
	}
	if b.Poll.IntervalMs == 0 {
		b.Poll.IntervalMs = DefaultIntervalMs
	}
	if b.Poll.RetryMs == 0 {
		b.Poll.RetryMs = DefaultRetryMs
	}
	if b.Mirror.Path == "" {
		b.Mirror.Path = DefaultMirrorPath
	}
}
