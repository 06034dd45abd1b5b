// internal/agent/agent.go

// Package agent is the resident device task: it waits on the mailbox kick
// word, runs one program per kick through the engine, and publishes the
// outcome. One invocation at a time, forever, regardless of how many fail.
package agent

import (
	"errors"

	"github.com/tamzrod/hif-agent/internal/hif"
	"github.com/tamzrod/hif-agent/internal/mailbox"
	"github.com/tamzrod/hif-agent/internal/ringbuf"
)

// Engine is the bytecode engine entry point. The agent depends on this
// signature only; hif.Execute is the production engine.
type Engine func(
	text []byte,
	funcs hif.Table,
	data []byte,
	stack *hif.Stack,
	rstack *hif.ReturnStack,
	scratch []byte,
	trace hif.TraceFunc,
) *hif.Failure

// TraceDepth is the diagnostic ring capacity.
const TraceDepth = 16

// Agent owns the mailbox buffers and the per-invocation engine state.
type Agent struct {
	cfg   Config
	mb    *mailbox.Mailbox
	funcs hif.Table

	engine Engine
	trace  *ringbuf.Ring[Event]

	// Per-invocation state, reinitialized empty by the engine each run.
	stack   hif.Stack
	rstack  *hif.ReturnStack
	scratch [mailbox.ScratchSize]byte

	sleep sleepFunc
}

// New builds the agent task around a mailbox and a board capability table.
func New(cfg Config, mb *mailbox.Mailbox, funcs hif.Table) (*Agent, error) {
	if mb == nil {
		return nil, errors.New("agent: mailbox required")
	}
	if len(funcs) == 0 {
		return nil, errors.New("agent: capability table required")
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return &Agent{
		cfg:    cfg,
		mb:     mb,
		funcs:  funcs,
		engine: hif.Execute,
		trace:  ringbuf.New[Event](TraceDepth),
		rstack: hif.BindReturnStack(mb.RStack()),
		sleep:  sleepTimer,
	}, nil
}

// Trace returns the diagnostic event ring.
func (a *Agent) Trace() *ringbuf.Ring[Event] { return a.trace }

// ExecOnce dispatches exactly one invocation and publishes its outcome.
// No retry, no timeout: the engine's own step limit bounds execution.
func (a *Agent) ExecOnce() {
	f := a.engine(
		a.mb.Text(),
		a.funcs,
		a.mb.Data(),
		&a.stack,
		a.rstack,
		a.scratch[:],
		a.traceStep,
	)

	if f == nil {
		a.mb.PublishSuccess()
		a.trace.Put(Event{Kind: EventSuccess})
		return
	}

	a.mb.PublishFailure(f)
	a.trace.Put(Event{Kind: EventFailure, Failure: f})
}

// traceStep is the observation-only step hook handed to the engine.
func (a *Agent) traceStep(offset int, op hif.Op) {
	a.trace.Put(Event{Kind: EventStep, Offset: offset, Op: op})
}
