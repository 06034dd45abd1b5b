// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/hif-agent/internal/integrity"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	// ------------------------------------------------------------
	// POLL WINDOW
	// ------------------------------------------------------------

	p := cfg.Agent.Poll
	if p.MinIntervalMs < 0 || p.MaxIntervalMs < 0 || p.BackoffEvery < 0 {
		return fmt.Errorf("poll: intervals must not be negative")
	}
	if p.MinIntervalMs != 0 && p.MaxIntervalMs != 0 && p.MinIntervalMs > p.MaxIntervalMs {
		return fmt.Errorf(
			"poll: min_interval_ms %d above max_interval_ms %d",
			p.MinIntervalMs, p.MaxIntervalMs,
		)
	}

	// ------------------------------------------------------------
	// INTEGRITY TASK (OPT-IN)
	// ------------------------------------------------------------

	it := cfg.Agent.Integrity
	if !it.Enabled {
		return nil
	}

	switch it.Link.Transport {
	case "tcp", "rtu":
	case "":
		return fmt.Errorf("integrity: link transport required")
	default:
		return fmt.Errorf("integrity: unknown link transport %q", it.Link.Transport)
	}

	if it.Link.Endpoint == "" {
		return fmt.Errorf("integrity: link endpoint required")
	}
	if it.Link.TimeoutMs < 0 {
		return fmt.Errorf("integrity: link timeout must not be negative")
	}

	if it.Flash.End <= it.Flash.Start {
		return fmt.Errorf(
			"integrity: empty flash range %#x..%#x",
			it.Flash.Start, it.Flash.End,
		)
	}
	if (it.Flash.End-it.Flash.Start)%integrity.ReadSize != 0 {
		return fmt.Errorf(
			"integrity: flash range must be a multiple of %d bytes",
			integrity.ReadSize,
		)
	}
	if it.Flash.Start < it.Link.FlashBase {
		return fmt.Errorf(
			"integrity: flash start %#x below bridge base %#x",
			it.Flash.Start, it.Link.FlashBase,
		)
	}

	if it.ExpectedImage == "" {
		return fmt.Errorf("integrity: expected_image required")
	}

	return nil
}
