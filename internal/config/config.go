// internal/config/config.go
package config

type Config struct {
	Agent AgentConfig `yaml:"agent"`
}

type AgentConfig struct {
	Poll      PollConfig      `yaml:"poll"`
	Integrity IntegrityConfig `yaml:"integrity"`
}

// ---- POLL ----

// PollConfig overrides the scheduler window for bench runs.
// Zero values keep the protocol defaults (1ms floor, 250ms ceiling).
type PollConfig struct {
	MinIntervalMs int `yaml:"min_interval_ms"`
	MaxIntervalMs int `yaml:"max_interval_ms"`
	BackoffEvery  int `yaml:"backoff_every"`
}

// ---- INTEGRITY ----

// IntegrityConfig wires the flash verification task (opt-in).
type IntegrityConfig struct {
	Enabled       bool        `yaml:"enabled"`
	Link          LinkConfig  `yaml:"link"`
	Flash         FlashConfig `yaml:"flash"`
	ExpectedImage string      `yaml:"expected_image"`
}

// LinkConfig is the debug-link bridge attachment.
type LinkConfig struct {
	Transport    string `yaml:"transport"` // tcp | rtu
	Endpoint     string `yaml:"endpoint"`
	UnitID       uint8  `yaml:"unit_id"`
	TimeoutMs    int    `yaml:"timeout_ms"`
	BaseRegister uint16 `yaml:"base_register"`
	FlashBase    uint32 `yaml:"flash_base"`
}

// FlashConfig is the verified address range.
type FlashConfig struct {
	Start uint32 `yaml:"start"`
	End   uint32 `yaml:"end"`
}
