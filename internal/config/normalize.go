// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	it := &cfg.Agent.Integrity
	if !it.Enabled {
		return
	}

	if it.Link.TimeoutMs == 0 {
		it.Link.TimeoutMs = 1000
	}
	if it.Link.FlashBase == 0 {
		// An unset bridge base means registers start at the verified range.
		it.Link.FlashBase = it.Flash.Start
	}
}
