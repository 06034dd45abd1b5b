// internal/agent/events.go
package agent

import "github.com/tamzrod/hif-agent/internal/hif"

// EventKind discriminates trace entries.
type EventKind uint8

const (
	// EventStep records one instruction about to execute.
	EventStep EventKind = iota + 1
	// EventSuccess records one completed invocation.
	EventSuccess
	// EventFailure records one failed invocation with its descriptor.
	EventFailure
)

func (k EventKind) String() string {
	switch k {
	case EventStep:
		return "step"
	case EventSuccess:
		return "success"
	case EventFailure:
		return "failure"
	default:
		return "none"
	}
}

// Event is one diagnostic trace entry. Entries are observational only; the
// scheduler and dispatcher never read them back.
type Event struct {
	Kind    EventKind
	Offset  int          // step: text offset of the op
	Op      hif.Op       // step
	Failure *hif.Failure // failure
}
