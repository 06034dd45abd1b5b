// internal/board/board.go

// Package board supplies the per-board capability table and buffer tier.
// The board family is fixed at build configuration time with build tags
// (stm32h7, lpc55, default generic); there is no runtime branching between
// families.
package board

import (
	"time"

	"github.com/tamzrod/hif-agent/internal/hif"
)

// Capability table indices shared by every family. Board files may append
// family-specific entries after FuncBase.
const (
	FuncSleep = 0
	FuncIdent = 1
	FuncBase  = 2
)

// maxSleepMs bounds a program-requested sleep so a program cannot park the
// task indefinitely.
const maxSleepMs = 250

// funcSleep pops a millisecond count and suspends the task for it.
func funcSleep(stack *hif.Stack, _ *hif.ReturnStack, _ []byte) *hif.Failure {
	w, ok := stack.Pop()
	if !ok {
		return &hif.Failure{Fault: hif.FaultStackUnderflow}
	}
	if w.None {
		return &hif.Failure{Fault: hif.FaultFunctionError, Code: 1, Operand: w}
	}

	ms := w.Value
	if ms > maxSleepMs {
		ms = maxSleepMs
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return nil
}

// funcIdent writes the board name onto the return stack.
func funcIdent(_ *hif.Stack, rstack *hif.ReturnStack, _ []byte) *hif.Failure {
	if !rstack.Write([]byte(Name)) {
		return &hif.Failure{Fault: hif.FaultReturnStackOverflow}
	}
	return nil
}

func baseTable() hif.Table {
	t := make(hif.Table, FuncBase)
	t[FuncSleep] = funcSleep
	t[FuncIdent] = funcIdent
	return t
}
