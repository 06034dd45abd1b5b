// internal/mailbox/mailbox.go

// Package mailbox is the fixed shared region forming the host/device
// protocol boundary. The word layout in layout.go is the only externally
// visible contract; everything else is owned by the device task.
//
// Ownership windows are protocol convention, not enforced locking: the host
// writes text/data only while the device is idle (ready nonzero, kick zero),
// and the device owns all buffers while an invocation runs. Scalar word
// updates are independent and non-transactional; a host polling between
// fields must tolerate a partially updated view, which the monotonic
// counters make self-evident.
package mailbox

import (
	"sync/atomic"

	"github.com/tamzrod/hif-agent/internal/hif"
)

// Mailbox owns the shared buffers and scalar words. Exactly one device task
// drives it; any number of host-side readers may observe it.
type Mailbox struct {
	text   [TextSize]byte
	data   []byte
	rstack [RStackSize]byte

	requests atomic.Uint32
	errors   atomic.Uint32
	kick     atomic.Uint32
	ready    atomic.Uint32

	// Last failure, overwritten on failure only. Never cleared on success:
	// the slot is for post-mortem inspection, not live health.
	failure atomic.Pointer[hif.Failure]
}

// New creates a mailbox with the given constant-data tier
// (DataSizeSmall or DataSizeLarge).
func New(dataSize int) *Mailbox {
	return &Mailbox{data: make([]byte, dataSize)}
}

// ---- DEVICE SIDE ----

// Text returns the program text buffer. Device-exclusive while executing.
func (m *Mailbox) Text() []byte { return m.text[:] }

// Data returns the constant-data buffer.
func (m *Mailbox) Data() []byte { return m.data }

// RStack returns the return stack buffer.
func (m *Mailbox) RStack() []byte { return m.rstack[:] }

// TakeKick consumes one pending request. It decrements the kick word by
// exactly 1 and reports whether there was one; extra kicks stay queued.
// Single consumer: only the device decrements.
func (m *Mailbox) TakeKick() bool {
	if m.kick.Load() == 0 {
		return false
	}
	m.kick.Add(^uint32(0))
	return true
}

// EnterIdle marks the device as waiting to be kicked. Call only around the
// scheduler's sleep point.
func (m *Mailbox) EnterIdle() { m.ready.Add(1) }

// LeaveIdle unmarks the device, netting EnterIdle exactly.
func (m *Mailbox) LeaveIdle() { m.ready.Add(^uint32(0)) }

// PublishSuccess records one successful invocation.
func (m *Mailbox) PublishSuccess() { m.requests.Add(1) }

// PublishFailure records one failed invocation and overwrites the
// last-failure slot.
func (m *Mailbox) PublishFailure(f *hif.Failure) {
	m.errors.Add(1)
	m.failure.Store(f)
}
