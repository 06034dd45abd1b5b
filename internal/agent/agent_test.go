// internal/agent/agent_test.go
package agent

import (
	"testing"

	"github.com/tamzrod/hif-agent/internal/hif"
	"github.com/tamzrod/hif-agent/internal/mailbox"
)

func TestExecOnce_PassesMailboxBuffers(t *testing.T) {
	mb := mailbox.New(mailbox.DataSizeSmall)
	a, err := New(Config{}, mb, testTable())
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	var gotText, gotData, gotScratch []byte
	a.engine = func(text []byte, funcs hif.Table, data []byte, stack *hif.Stack, rstack *hif.ReturnStack, scratch []byte, trace hif.TraceFunc) *hif.Failure {
		gotText, gotData, gotScratch = text, data, scratch
		if trace == nil {
			t.Fatalf("engine invoked without a trace hook")
		}
		return nil
	}

	a.ExecOnce()

	if &gotText[0] != &mb.Text()[0] {
		t.Fatalf("engine did not receive the mailbox text buffer")
	}
	if &gotData[0] != &mb.Data()[0] {
		t.Fatalf("engine did not receive the mailbox data buffer")
	}
	if len(gotScratch) != mailbox.ScratchSize {
		t.Fatalf("scratch len = %d, want %d", len(gotScratch), mailbox.ScratchSize)
	}
}

func TestExecOnce_ReturnStackVisibleToHost(t *testing.T) {
	mb := mailbox.New(mailbox.DataSizeSmall)

	deposit := hif.Table{
		func(_ *hif.Stack, rstack *hif.ReturnStack, _ []byte) *hif.Failure {
			rstack.Write([]byte{0xC0, 0xDE})
			return nil
		},
	}

	a, err := New(Config{}, mb, deposit)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	h := mb.Host()
	if err := h.WriteText([]byte{byte(hif.OpCall), 0, byte(hif.OpDone)}); err != nil {
		t.Fatalf("WriteText err=%v", err)
	}

	a.ExecOnce()

	r := h.RStack()
	if r[0] != 0xC0 || r[1] != 0xDE {
		t.Fatalf("host rstack = %v, want function result", r[:2])
	}
	if h.Requests() != 1 {
		t.Fatalf("requests = %d, want 1", h.Requests())
	}
}

func TestExecOnce_StepTraceRecorded(t *testing.T) {
	mb := mailbox.New(mailbox.DataSizeSmall)
	a, err := New(Config{}, mb, testTable())
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	h := mb.Host()
	if err := h.WriteText([]byte{byte(hif.OpPush8), 9, byte(hif.OpDrop), byte(hif.OpDone)}); err != nil {
		t.Fatalf("WriteText err=%v", err)
	}

	a.ExecOnce()

	steps := 0
	for _, e := range a.Trace().Snapshot() {
		if e.Kind == EventStep {
			steps++
		}
	}
	if steps != 3 {
		t.Fatalf("step events = %d, want 3", steps)
	}
}
