// internal/integrity/events.go
package integrity

import "crypto/sha256"

// EventKind discriminates verification trace entries.
type EventKind uint8

const (
	// EventStart marks the beginning of a pass.
	EventStart EventKind = iota + 1
	// EventEnd marks the end of a pass.
	EventEnd
	// EventErrCount records the cumulative link error count.
	EventErrCount
	// EventAddr records the flash address of a failed link read.
	EventAddr
	// EventHash records the digest of a completed pass.
	EventHash
	// EventMismatch records a byte that disagreed with the expected image.
	EventMismatch
)

// Event is one verification trace entry.
type Event struct {
	Kind  EventKind
	Addr  uint32             // addr, mismatch
	Count int                // errcount
	Sum   [sha256.Size]byte  // hash
	// Mismatch context: chunk offset, byte read, byte expected.
	Offset int
	Got    byte
	Want   byte
}
