// internal/config/config.go
package config

type Config struct {
	Bridge BridgeConfig `yaml:"bridge"`
}

type BridgeConfig struct {
	Source SourceConfig `yaml:"source"`
	Relay  RelayConfig  `yaml:"relay"`
	Poll   PollConfig   `yaml:"poll"`
	Mirror MirrorConfig `yaml:"mirror"`
}

// ---- SOURCE (upstream Modbus TCP) ----

type SourceConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- RELAY (downstream MMS gateway) ----

type RelayConfig struct {
	Endpoint  string `yaml:"endpoint"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
	RetryMs    int `yaml:"retry_ms"` // delay after a failed register read
}

// ---- MIRROR ----

type MirrorConfig struct {
	Path string `yaml:"path"`
}
