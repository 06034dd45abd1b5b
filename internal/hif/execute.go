// internal/hif/execute.go
package hif

// StepLimit bounds one invocation. A program that has not reached OpDone
// after this many steps fails with FaultStepsExceeded.
const StepLimit = 65536

// Execute runs one program to completion and returns nil on success or the
// failure that stopped it. The caller owns all buffers; stack and rstack are
// reset here so every invocation starts empty.
//
// Reaching the end of text without OpDone counts as success: the text buffer
// is fixed-size and zero-padded, and 0x00 is OpDone.
func Execute(
	text []byte,
	funcs Table,
	data []byte,
	stack *Stack,
	rstack *ReturnStack,
	scratch []byte,
	trace TraceFunc,
) *Failure {
	stack.Reset()
	rstack.Reset()
	for i := range scratch {
		scratch[i] = 0
	}

	pc := 0
	for steps := 0; pc < len(text); steps++ {
		if steps >= StepLimit {
			return &Failure{Fault: FaultStepsExceeded, PC: pc}
		}

		op, next, f := decode(text, pc)
		if f != nil {
			return f
		}

		if trace != nil {
			trace(pc, op)
		}

		switch op.Code {
		case OpDone:
			return nil

		case OpPush8, OpPush16, OpPush32:
			if !stack.Push(Word{Value: op.Arg}) {
				return &Failure{Fault: FaultStackOverflow, PC: pc, Operand: Word{Value: op.Arg}}
			}

		case OpPushNone:
			if !stack.Push(Word{None: true}) {
				return &Failure{Fault: FaultStackOverflow, PC: pc, Operand: Word{None: true}}
			}

		case OpDrop:
			if _, ok := stack.Pop(); !ok {
				return &Failure{Fault: FaultStackUnderflow, PC: pc}
			}

		case OpDup:
			w, ok := stack.Pop()
			if !ok {
				return &Failure{Fault: FaultStackUnderflow, PC: pc}
			}
			stack.Push(w)
			if !stack.Push(w) {
				return &Failure{Fault: FaultStackOverflow, PC: pc, Operand: w}
			}

		case OpSwap:
			b, ok := stack.Pop()
			if !ok {
				return &Failure{Fault: FaultStackUnderflow, PC: pc}
			}
			a, ok := stack.Pop()
			if !ok {
				stack.Push(b)
				return &Failure{Fault: FaultStackUnderflow, PC: pc}
			}
			stack.Push(b)
			stack.Push(a)

		case OpAdd:
			b, ok := stack.Pop()
			if !ok {
				return &Failure{Fault: FaultStackUnderflow, PC: pc}
			}
			a, ok := stack.Pop()
			if !ok {
				return &Failure{Fault: FaultStackUnderflow, PC: pc, Operand: b}
			}
			if a.None || b.None {
				return &Failure{Fault: FaultIllegalOp, PC: pc, Operand: b}
			}
			stack.Push(Word{Value: a.Value + b.Value})

		case OpLoadData:
			w, ok := stack.Pop()
			if !ok {
				return &Failure{Fault: FaultStackUnderflow, PC: pc}
			}
			// Compare in uint64: int(w.Value) flips sign on 32-bit targets.
			if w.None || uint64(w.Value) >= uint64(len(data)) {
				return &Failure{Fault: FaultDataOutOfRange, PC: pc, Operand: w}
			}
			stack.Push(Word{Value: uint32(data[w.Value])})

		case OpCall:
			idx := int(op.Arg)
			if idx >= len(funcs) || funcs[idx] == nil {
				return &Failure{Fault: FaultBadFunction, PC: pc, Operand: Word{Value: op.Arg}}
			}
			if f := funcs[idx](stack, rstack, scratch); f != nil {
				if f.PC == 0 {
					f.PC = pc
				}
				return f
			}
		}

		pc = next
	}

	return nil
}
