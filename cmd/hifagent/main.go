// cmd/hifagent/main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/tamzrod/hif-agent/internal/agent"
	"github.com/tamzrod/hif-agent/internal/board"
	"github.com/tamzrod/hif-agent/internal/config"
	"github.com/tamzrod/hif-agent/internal/integrity"
	"github.com/tamzrod/hif-agent/internal/integrity/swd"
	"github.com/tamzrod/hif-agent/internal/mailbox"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: hifagent <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	ctx := context.Background()

	// --------------------
	// Mailbox + agent task
	// --------------------

	mb := mailbox.New(board.DataSize)

	a, err := agent.New(
		agent.Config{
			MinInterval:  time.Duration(cfg.Agent.Poll.MinIntervalMs) * time.Millisecond,
			MaxInterval:  time.Duration(cfg.Agent.Poll.MaxIntervalMs) * time.Millisecond,
			BackoffEvery: cfg.Agent.Poll.BackoffEvery,
		},
		mb,
		board.Table(),
	)
	if err != nil {
		log.Fatalf("agent build failed (board=%s): %v", board.Name, err)
	}

	// --------------------
	// Flash integrity task (opt-in)
	// --------------------

	if it := cfg.Agent.Integrity; it.Enabled {
		expected, err := os.ReadFile(it.ExpectedImage)
		if err != nil {
			log.Fatalf("expected image load failed: %v", err)
		}

		link, err := swd.New(swd.Config{
			Transport:    it.Link.Transport,
			Endpoint:     it.Link.Endpoint,
			UnitID:       it.Link.UnitID,
			Timeout:      time.Duration(it.Link.TimeoutMs) * time.Millisecond,
			BaseRegister: it.Link.BaseRegister,
			FlashBase:    it.Link.FlashBase,
		})
		if err != nil {
			log.Fatalf("debug link build failed: %v", err)
		}

		task, err := integrity.New(integrity.Config{
			FlashStart: it.Flash.Start,
			FlashEnd:   it.Flash.End,
			Expected:   expected,
		}, link)
		if err != nil {
			log.Fatalf("integrity task build failed: %v", err)
		}

		go func() {
			if err := task.Run(ctx); err != nil {
				// A mismatch is terminal for the task, not for the agent.
				log.Printf("integrity task stopped: %v", err)
			}
		}()
	}

	// --------------------
	// Run forever
	// --------------------

	a.Run(ctx)
}
