// internal/agent/sched.go
package agent

import (
	"context"
	"errors"
	"time"
)

// Config tunes the adaptive poll scheduler. Zero values take the protocol
// defaults; bench runs may tighten or loosen the window.
type Config struct {
	// MinInterval is the sleep right after any host activity.
	MinInterval time.Duration
	// MaxInterval is the idle ceiling and the initial interval.
	MaxInterval time.Duration
	// BackoffEvery is the consecutive idle ticks before one backoff step.
	BackoffEvery int
}

const (
	defaultMinInterval  = 1 * time.Millisecond
	defaultMaxInterval  = 250 * time.Millisecond
	defaultBackoffEvery = 10

	// backoffFactor multiplies the interval at each backoff step.
	backoffFactor = 10
)

func (c *Config) normalize() error {
	if c.MinInterval == 0 {
		c.MinInterval = defaultMinInterval
	}
	if c.MaxInterval == 0 {
		c.MaxInterval = defaultMaxInterval
	}
	if c.BackoffEvery == 0 {
		c.BackoffEvery = defaultBackoffEvery
	}

	if c.MinInterval < 0 || c.MaxInterval < 0 || c.BackoffEvery < 0 {
		return errors.New("agent: intervals must not be negative")
	}
	if c.MinInterval > c.MaxInterval {
		return errors.New("agent: min interval above max")
	}
	return nil
}

// sleepFunc is the cooperative suspension point. It reports false when the
// surrounding context ended instead of the timer.
type sleepFunc func(ctx context.Context, d time.Duration) bool

func sleepTimer(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// Run is the task loop. It idles at the current interval with the ready
// word marked, backing off toward MaxInterval after sustained quiet, and
// drops to MinInterval on any kick: host requests arrive in bursts, so
// after one the next is expected soon.
//
// Run returns only when ctx ends. Invocation failures never stop it.
func (a *Agent) Run(ctx context.Context) {
	interval := a.cfg.MaxInterval
	idle := 0

	for {
		a.mb.EnterIdle()
		woke := a.sleep(ctx, interval)
		a.mb.LeaveIdle()

		if !woke {
			return
		}

		if !a.mb.TakeKick() {
			idle++
			if idle == a.cfg.BackoffEvery {
				interval = min(interval*backoffFactor, a.cfg.MaxInterval)
				idle = 0
			}
			continue
		}

		// Kicked: respond at minimum latency from here on.
		interval = a.cfg.MinInterval
		idle = 0

		a.ExecOnce()
	}
}
