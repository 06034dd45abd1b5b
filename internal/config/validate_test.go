// internal/config/validate_test.go
package config

import "testing"

// helper to build an enabled integrity config quickly
func integrityCfg(transport, endpoint string, start, end uint32, image string) *Config {
	return &Config{
		Agent: AgentConfig{
			Integrity: IntegrityConfig{
				Enabled: true,
				Link: LinkConfig{
					Transport: transport,
					Endpoint:  endpoint,
				},
				Flash: FlashConfig{
					Start: start,
					End:   end,
				},
				ExpectedImage: image,
			},
		},
	}
}

// ---- tests ----

func TestValidate_DefaultsAreValid(t *testing.T) {
	cfg := &Config{}

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_PollWindowInverted(t *testing.T) {
	cfg := &Config{
		Agent: AgentConfig{
			Poll: PollConfig{MinIntervalMs: 100, MaxIntervalMs: 10},
		},
	}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected inverted window error, got nil")
	}
}

func TestValidate_IntegrityDisabledSkipsChecks(t *testing.T) {
	cfg := integrityCfg("", "", 0, 0, "")
	cfg.Agent.Integrity.Enabled = false

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_IntegrityTransport(t *testing.T) {
	if err := Validate(integrityCfg("tcp", "host:502", 0, 1024, "img.bin")); err != nil {
		t.Fatalf("unexpected error for tcp: %v", err)
	}
	if err := Validate(integrityCfg("rtu", "/dev/ttyUSB0", 0, 1024, "img.bin")); err != nil {
		t.Fatalf("unexpected error for rtu: %v", err)
	}
	if err := Validate(integrityCfg("udp", "host:502", 0, 1024, "img.bin")); err == nil {
		t.Fatalf("expected unknown transport error, got nil")
	}
	if err := Validate(integrityCfg("", "host:502", 0, 1024, "img.bin")); err == nil {
		t.Fatalf("expected missing transport error, got nil")
	}
}

func TestValidate_IntegrityFlashGeometry(t *testing.T) {
	if err := Validate(integrityCfg("tcp", "h:502", 1024, 1024, "img.bin")); err == nil {
		t.Fatalf("expected empty range error, got nil")
	}
	if err := Validate(integrityCfg("tcp", "h:502", 0, 1000, "img.bin")); err == nil {
		t.Fatalf("expected unaligned range error, got nil")
	}
}

func TestValidate_IntegrityExpectedImageRequired(t *testing.T) {
	if err := Validate(integrityCfg("tcp", "h:502", 0, 1024, "")); err == nil {
		t.Fatalf("expected missing image error, got nil")
	}
}

func TestNormalize_IntegrityDefaults(t *testing.T) {
	cfg := integrityCfg("tcp", "h:502", 0x8000, 0x8000+1024, "img.bin")

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Normalize(cfg)

	if cfg.Agent.Integrity.Link.TimeoutMs != 1000 {
		t.Fatalf("timeout = %d, want default 1000", cfg.Agent.Integrity.Link.TimeoutMs)
	}
	if cfg.Agent.Integrity.Link.FlashBase != 0x8000 {
		t.Fatalf("flash base = %#x, want flash start", cfg.Agent.Integrity.Link.FlashBase)
	}
}
