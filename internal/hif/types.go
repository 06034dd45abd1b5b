// internal/hif/types.go
package hif

import "fmt"

// Format version. Exported through the agent mailbox so a host can refuse
// to talk to a format it does not understand.
const (
	VersionMajor uint32 = 0
	VersionMinor uint32 = 3
	VersionPatch uint32 = 0
)

// StackSlots is the fixed operand stack depth.
const StackSlots = 32

// Word is one operand slot. None is a real value in the format: functions
// take it to mean "no argument".
type Word struct {
	Value uint32
	None  bool
}

// Stack is the fixed-depth operand stack. It holds no memory of past
// invocations; callers Reset() it before each run.
type Stack struct {
	slots [StackSlots]Word
	sp    int
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.sp = 0
	for i := range s.slots {
		s.slots[i] = Word{}
	}
}

// Depth reports the number of occupied slots.
func (s *Stack) Depth() int { return s.sp }

// Push adds a word. It reports false when the stack is full.
func (s *Stack) Push(w Word) bool {
	if s.sp >= StackSlots {
		return false
	}
	s.slots[s.sp] = w
	s.sp++
	return true
}

// Pop removes the top word. It reports false when the stack is empty.
func (s *Stack) Pop() (Word, bool) {
	if s.sp == 0 {
		return Word{}, false
	}
	s.sp--
	return s.slots[s.sp], true
}

// ReturnStack is the byte region functions deposit results into. The agent
// binds it over the mailbox rstack buffer so the host can read results back.
type ReturnStack struct {
	buf []byte
	n   int
}

// BindReturnStack wraps buf without copying. Reset() reuses the same backing.
func BindReturnStack(buf []byte) *ReturnStack {
	return &ReturnStack{buf: buf}
}

// Reset zeroes the written region and rewinds the cursor.
func (r *ReturnStack) Reset() {
	for i := 0; i < r.n; i++ {
		r.buf[i] = 0
	}
	r.n = 0
}

// Write appends p. It reports false when p does not fit.
func (r *ReturnStack) Write(p []byte) bool {
	if r.n+len(p) > len(r.buf) {
		return false
	}
	copy(r.buf[r.n:], p)
	r.n += len(p)
	return true
}

// Bytes returns the written region.
func (r *ReturnStack) Bytes() []byte { return r.buf[:r.n] }

// Fault classifies why the interpreter itself gave up on a program.
type Fault uint32

const (
	FaultIllegalOp Fault = iota + 1
	FaultTruncatedOp
	FaultStackOverflow
	FaultStackUnderflow
	FaultReturnStackOverflow
	FaultBadFunction
	FaultDataOutOfRange
	FaultStepsExceeded
	// FaultFunctionError carries a board-function error code in Failure.Code.
	FaultFunctionError
)

func (f Fault) String() string {
	switch f {
	case FaultIllegalOp:
		return "illegal op"
	case FaultTruncatedOp:
		return "truncated op"
	case FaultStackOverflow:
		return "stack overflow"
	case FaultStackUnderflow:
		return "stack underflow"
	case FaultReturnStackOverflow:
		return "return stack overflow"
	case FaultBadFunction:
		return "bad function index"
	case FaultDataOutOfRange:
		return "data offset out of range"
	case FaultStepsExceeded:
		return "step limit exceeded"
	case FaultFunctionError:
		return "function error"
	default:
		return fmt.Sprintf("fault(%d)", uint32(f))
	}
}

// Failure describes why one invocation did not succeed: the fault, the text
// offset of the op that raised it, and the operand in flight if there was one.
type Failure struct {
	Fault   Fault
	Code    uint32 // function error code; valid when Fault == FaultFunctionError
	PC      int    // text offset of the faulting op
	Operand Word   // operand context, best effort
}

func (f *Failure) Error() string {
	if f.Fault == FaultFunctionError {
		return fmt.Sprintf("hif: function error %d at offset %d", f.Code, f.PC)
	}
	return fmt.Sprintf("hif: %s at offset %d", f.Fault, f.PC)
}

// Function is one board capability invoked by OpCall. Implementations pop
// their arguments from the stack and deposit results on the return stack.
type Function func(stack *Stack, rstack *ReturnStack, scratch []byte) *Failure

// Table is a board capability table, indexed by OpCall operand. Tables are
// resolved at build configuration time and never switched at runtime.
type Table []Function

// TraceFunc observes each step before it executes. It cannot abort or
// rewrite execution.
type TraceFunc func(offset int, op Op)
