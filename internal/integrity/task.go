// internal/integrity/task.go

// Package integrity verifies an external program flash against a
// build-embedded expected image. It reads the flash over a debug link in
// fixed chunks, hashing as it goes; link errors are retried until the read
// succeeds, a content mismatch is terminal. One pass per loop, forever.
package integrity

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/tamzrod/hif-agent/internal/ringbuf"
)

const (
	// ReadSize is one link read.
	ReadSize = 256
	// TransactionSize is one link read window.
	TransactionSize = 1024
)

// TraceDepth is the verification ring capacity.
const TraceDepth = 16

// Link is the debug-link driver contract. One window is opened with
// ReadTransactionStart and drained by consecutive ReadTransaction calls;
// after any error the caller re-runs Setup before retrying.
type Link interface {
	Setup() error
	ReadTransactionStart(from, to uint32) error
	ReadTransaction(buf []byte) error
}

// Config fixes the verified range and its expected content.
type Config struct {
	FlashStart uint32
	FlashEnd   uint32
	Expected   []byte // len must equal FlashEnd-FlashStart
}

// MismatchError reports a byte that disagreed with the expected image.
type MismatchError struct {
	Addr   uint32
	Offset int
	Got    byte
	Want   byte
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf(
		"integrity: mismatch at %#x+%d: got %#02x want %#02x",
		e.Addr, e.Offset, e.Got, e.Want,
	)
}

// Task is the resident verification task.
type Task struct {
	cfg    Config
	link   Link
	trace  *ringbuf.Ring[Event]
	errCnt int
}

// New validates the geometry and builds the task.
func New(cfg Config, link Link) (*Task, error) {
	if link == nil {
		return nil, errors.New("integrity: link required")
	}
	if cfg.FlashEnd <= cfg.FlashStart {
		return nil, errors.New("integrity: empty flash range")
	}
	span := cfg.FlashEnd - cfg.FlashStart
	if span%ReadSize != 0 {
		return nil, fmt.Errorf("integrity: flash range must be a multiple of %d", ReadSize)
	}
	if uint32(len(cfg.Expected)) != span {
		return nil, fmt.Errorf(
			"integrity: expected image is %d bytes, flash range is %d",
			len(cfg.Expected), span,
		)
	}

	return &Task{
		cfg:   cfg,
		link:  link,
		trace: ringbuf.New[Event](TraceDepth),
	}, nil
}

// Trace returns the verification event ring.
func (t *Task) Trace() *ringbuf.Ring[Event] { return t.trace }

// ErrCount reports cumulative link errors across all passes.
func (t *Task) ErrCount() int { return t.errCnt }

// Run verifies the flash over and over until ctx ends or a pass finds a
// mismatch. Link errors never stop it.
func (t *Task) Run(ctx context.Context) error {
	for {
		sum, err := t.VerifyPass(ctx)
		if err != nil {
			return err
		}

		t.trace.Put(Event{Kind: EventErrCount, Count: t.errCnt})
		t.trace.Put(Event{Kind: EventHash, Sum: sum})

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// VerifyPass reads and checks the whole range once. Every chunk is compared
// against the expected image before it is hashed, so the returned digest is
// meaningful only because a pass with any disagreement never finishes.
func (t *Task) VerifyPass(ctx context.Context) ([sha256.Size]byte, error) {
	var sum [sha256.Size]byte

	if err := t.setupRetry(ctx); err != nil {
		return sum, err
	}

	h := sha256.New()
	buf := make([]byte, ReadSize)

	t.trace.Put(Event{Kind: EventStart})

	for addr := t.cfg.FlashStart; addr < t.cfg.FlashEnd; addr += ReadSize {
		off := addr - t.cfg.FlashStart

		if off%TransactionSize == 0 {
			if err := t.startRetry(ctx, addr, addr+TransactionSize); err != nil {
				return sum, err
			}
		}

		for i := range buf {
			buf[i] = 0
		}
		if err := t.readRetry(ctx, addr, buf); err != nil {
			return sum, err
		}

		want := t.cfg.Expected[off : off+ReadSize]
		if i, got, exp, bad := firstDiff(buf, want); bad {
			t.trace.Put(Event{Kind: EventErrCount, Count: t.errCnt})
			t.trace.Put(Event{
				Kind: EventMismatch, Addr: addr, Offset: i, Got: got, Want: exp,
			})
			return sum, &MismatchError{Addr: addr, Offset: i, Got: got, Want: exp}
		}

		h.Write(buf)
	}

	t.trace.Put(Event{Kind: EventEnd})

	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// setupRetry brings the link up, retrying until it succeeds or ctx ends.
func (t *Task) setupRetry(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.link.Setup(); err != nil {
			t.errCnt++
			continue
		}
		return nil
	}
}

// startRetry opens a read window, re-running Setup between failed attempts.
func (t *Task) startRetry(ctx context.Context, from, to uint32) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.link.ReadTransactionStart(from, to); err != nil {
			t.errCnt++
			t.link.Setup()
			continue
		}
		return nil
	}
}

// readRetry fills buf from the current window. On failure it records the
// address, re-establishes the link and reopens a window running to the end
// of the range, then tries again.
func (t *Task) readRetry(ctx context.Context, addr uint32, buf []byte) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.link.ReadTransaction(buf); err != nil {
			t.trace.Put(Event{Kind: EventAddr, Addr: addr})
			t.errCnt++
			if err := t.link.Setup(); err != nil {
				continue
			}
			if err := t.link.ReadTransactionStart(addr, t.cfg.FlashEnd); err != nil {
				continue
			}
			continue
		}
		return nil
	}
}

func firstDiff(got, want []byte) (int, byte, byte, bool) {
	for i := range got {
		if got[i] != want[i] {
			return i, got[i], want[i], true
		}
	}
	return 0, 0, 0, false
}
