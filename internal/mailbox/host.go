// internal/mailbox/host.go
package mailbox

import (
	"errors"

	"github.com/tamzrod/hif-agent/internal/hif"
)

var (
	ErrTextTooLong = errors.New("mailbox: program text exceeds buffer")
	ErrDataTooLong = errors.New("mailbox: constant data exceeds buffer")
)

// Host is the external tool's view of the mailbox: the word block, the
// kick signal, and write access to the program buffers. It carries no state
// of its own and is safe to copy.
type Host struct {
	mb *Mailbox
}

// Host returns the host-side view.
func (m *Mailbox) Host() Host { return Host{mb: m} }

// Signal queues one invocation request. Fire-and-forget: there is no
// acknowledgment; completion shows up as a counter increment.
func (h Host) Signal() { h.mb.kick.Add(1) }

// Requests reads the success counter.
func (h Host) Requests() uint32 { return h.mb.requests.Load() }

// Errors reads the failure counter.
func (h Host) Errors() uint32 { return h.mb.errors.Load() }

// Kick reads the pending-request depth.
func (h Host) Kick() uint32 { return h.mb.kick.Load() }

// Ready reports whether the device is idling between invocations.
func (h Host) Ready() bool { return h.mb.ready.Load() != 0 }

// Version returns the format version triple.
func (h Host) Version() (major, minor, patch uint32) {
	return hif.VersionMajor, hif.VersionMinor, hif.VersionPatch
}

// LastFailure returns the most recent failure descriptor, or nil if no
// invocation has ever failed. A success after a failure leaves it in place.
func (h Host) LastFailure() *hif.Failure { return h.mb.failure.Load() }

// RStack returns the return stack region where function results land.
func (h Host) RStack() []byte { return h.mb.rstack[:] }

// WriteText places program text, zero-filling the remainder of the buffer.
// By protocol convention the host calls this only while Ready() is true and
// Kick() is zero; nothing here enforces that window.
func (h Host) WriteText(p []byte) error {
	if len(p) > TextSize {
		return ErrTextTooLong
	}
	n := copy(h.mb.text[:], p)
	for i := n; i < TextSize; i++ {
		h.mb.text[i] = 0
	}
	return nil
}

// WriteData places constant data, zero-filling the remainder. Same ownership
// window as WriteText.
func (h Host) WriteData(p []byte) error {
	if len(p) > len(h.mb.data) {
		return ErrDataTooLong
	}
	n := copy(h.mb.data, p)
	for i := n; i < len(h.mb.data); i++ {
		h.mb.data[i] = 0
	}
	return nil
}

// Words renders the scalar block at its fixed indices. This is the view an
// external tool reads word by word; the fields are captured independently,
// not as one atomic snapshot.
func (h Host) Words() [NumWords]uint32 {
	var w [NumWords]uint32
	w[WordRequests] = h.mb.requests.Load()
	w[WordErrors] = h.mb.errors.Load()
	w[WordKick] = h.mb.kick.Load()
	w[WordReady] = h.mb.ready.Load()
	w[WordVersionMajor] = hif.VersionMajor
	w[WordVersionMinor] = hif.VersionMinor
	w[WordVersionPatch] = hif.VersionPatch
	return w
}
