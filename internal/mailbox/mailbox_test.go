// internal/mailbox/mailbox_test.go
package mailbox

import (
	"testing"

	"github.com/tamzrod/hif-agent/internal/hif"
)

func TestSignal_QueuesAsCounter(t *testing.T) {
	mb := New(DataSizeSmall)
	h := mb.Host()

	h.Signal()
	h.Signal()

	if got := h.Kick(); got != 2 {
		t.Fatalf("kick = %d, want 2", got)
	}

	// Exactly one decrement per take; extras stay queued.
	if !mb.TakeKick() {
		t.Fatalf("first take reported no kick")
	}
	if got := h.Kick(); got != 1 {
		t.Fatalf("kick = %d after one take, want 1", got)
	}
	if !mb.TakeKick() {
		t.Fatalf("second take reported no kick")
	}
	if mb.TakeKick() {
		t.Fatalf("third take reported a kick on empty counter")
	}
	if got := h.Kick(); got != 0 {
		t.Fatalf("kick = %d, want 0", got)
	}
}

func TestPublish_FailureSlotPersistsAcrossSuccess(t *testing.T) {
	mb := New(DataSizeSmall)
	h := mb.Host()

	if h.LastFailure() != nil {
		t.Fatalf("failure slot populated before any failure")
	}

	f := &hif.Failure{Fault: hif.FaultStackUnderflow, PC: 4}
	mb.PublishFailure(f)
	mb.PublishSuccess()
	mb.PublishSuccess()

	if got := h.LastFailure(); got != f {
		t.Fatalf("failure slot = %v, want the original descriptor", got)
	}
	if h.Requests() != 2 || h.Errors() != 1 {
		t.Fatalf("counters = %d/%d, want 2/1", h.Requests(), h.Errors())
	}
}

func TestPublish_FailureSlotLastWriteWins(t *testing.T) {
	mb := New(DataSizeSmall)
	h := mb.Host()

	first := &hif.Failure{Fault: hif.FaultIllegalOp, PC: 1}
	second := &hif.Failure{Fault: hif.FaultBadFunction, PC: 9}
	mb.PublishFailure(first)
	mb.PublishFailure(second)

	if got := h.LastFailure(); got != second {
		t.Fatalf("failure slot = %v, want most recent descriptor", got)
	}
}

func TestReady_NetsAroundIdleWindow(t *testing.T) {
	mb := New(DataSizeSmall)
	h := mb.Host()

	if h.Ready() {
		t.Fatalf("ready before entering idle")
	}
	mb.EnterIdle()
	if !h.Ready() {
		t.Fatalf("not ready inside idle window")
	}
	mb.LeaveIdle()
	if h.Ready() {
		t.Fatalf("ready left spuriously set after idle window")
	}
}

func TestWriteText_ZeroFillsRemainder(t *testing.T) {
	mb := New(DataSizeSmall)
	h := mb.Host()

	long := make([]byte, 16)
	for i := range long {
		long[i] = 0xEE
	}
	if err := h.WriteText(long); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := h.WriteText([]byte{1, 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := mb.Text()
	if text[0] != 1 || text[1] != 2 {
		t.Fatalf("text prefix = %v, want [1 2]", text[:2])
	}
	for i := 2; i < 16; i++ {
		if text[i] != 0 {
			t.Fatalf("stale byte %#x at offset %d after shorter write", text[i], i)
		}
	}
}

func TestWriteText_RejectsOversizedProgram(t *testing.T) {
	mb := New(DataSizeSmall)

	if err := mb.Host().WriteText(make([]byte, TextSize+1)); err != ErrTextTooLong {
		t.Fatalf("err = %v, want ErrTextTooLong", err)
	}
}

func TestWriteData_RespectsTier(t *testing.T) {
	small := New(DataSizeSmall)
	if err := small.Host().WriteData(make([]byte, DataSizeLarge)); err != ErrDataTooLong {
		t.Fatalf("err = %v, want ErrDataTooLong on small tier", err)
	}

	large := New(DataSizeLarge)
	if err := large.Host().WriteData(make([]byte, DataSizeLarge)); err != nil {
		t.Fatalf("unexpected error on large tier: %v", err)
	}
}

func TestWords_FixedIndices(t *testing.T) {
	mb := New(DataSizeSmall)
	h := mb.Host()

	mb.PublishSuccess()
	mb.PublishFailure(&hif.Failure{Fault: hif.FaultIllegalOp})
	h.Signal()
	mb.EnterIdle()

	w := h.Words()
	if w[WordRequests] != 1 {
		t.Fatalf("requests word = %d, want 1", w[WordRequests])
	}
	if w[WordErrors] != 1 {
		t.Fatalf("errors word = %d, want 1", w[WordErrors])
	}
	if w[WordKick] != 1 {
		t.Fatalf("kick word = %d, want 1", w[WordKick])
	}
	if w[WordReady] != 1 {
		t.Fatalf("ready word = %d, want 1", w[WordReady])
	}
	if w[WordVersionMajor] != hif.VersionMajor ||
		w[WordVersionMinor] != hif.VersionMinor ||
		w[WordVersionPatch] != hif.VersionPatch {
		t.Fatalf("version words = %v, want %d.%d.%d",
			w[WordVersionMajor:], hif.VersionMajor, hif.VersionMinor, hif.VersionPatch)
	}
}
