// internal/hif/ops.go
package hif

import (
	"encoding/binary"
	"fmt"
)

// OpCode is the first byte of every instruction.
//
// The encoding is protocol-locked: a host compiles against these values.
// MUST NOT be renumbered without bumping VersionMajor.
type OpCode byte

const (
	OpDone     OpCode = 0x00 // stop, publish success
	OpPush8    OpCode = 0x01 // push zero-extended imm8
	OpPush16   OpCode = 0x02 // push zero-extended little-endian imm16
	OpPush32   OpCode = 0x03 // push little-endian imm32
	OpPushNone OpCode = 0x04 // push the none word
	OpDrop     OpCode = 0x05
	OpDup      OpCode = 0x06
	OpSwap     OpCode = 0x07
	OpAdd      OpCode = 0x08 // pop b, pop a, push a+b (wrapping)
	OpLoadData OpCode = 0x09 // pop offset, push data[offset]
	OpCall     OpCode = 0x0A // imm8 = capability table index
)

func (c OpCode) String() string {
	switch c {
	case OpDone:
		return "done"
	case OpPush8:
		return "push8"
	case OpPush16:
		return "push16"
	case OpPush32:
		return "push32"
	case OpPushNone:
		return "pushnone"
	case OpDrop:
		return "drop"
	case OpDup:
		return "dup"
	case OpSwap:
		return "swap"
	case OpAdd:
		return "add"
	case OpLoadData:
		return "loaddata"
	case OpCall:
		return "call"
	default:
		return fmt.Sprintf("op(%#02x)", byte(c))
	}
}

// Op is one decoded instruction.
type Op struct {
	Code OpCode
	Arg  uint32
}

// immWidth returns the operand byte count for an opcode, or -1 for an
// opcode outside the format.
func immWidth(c OpCode) int {
	switch c {
	case OpPush8, OpCall:
		return 1
	case OpPush16:
		return 2
	case OpPush32:
		return 4
	case OpDone, OpPushNone, OpDrop, OpDup, OpSwap, OpAdd, OpLoadData:
		return 0
	default:
		return -1
	}
}

// decode reads one instruction at pc. It returns the op and the offset of
// the next instruction.
func decode(text []byte, pc int) (Op, int, *Failure) {
	c := OpCode(text[pc])

	w := immWidth(c)
	if w < 0 {
		return Op{}, 0, &Failure{Fault: FaultIllegalOp, PC: pc}
	}
	if pc+1+w > len(text) {
		return Op{}, 0, &Failure{Fault: FaultTruncatedOp, PC: pc}
	}

	op := Op{Code: c}
	switch w {
	case 1:
		op.Arg = uint32(text[pc+1])
	case 2:
		op.Arg = uint32(binary.LittleEndian.Uint16(text[pc+1:]))
	case 4:
		op.Arg = binary.LittleEndian.Uint32(text[pc+1:])
	}

	return op, pc + 1 + w, nil
}
