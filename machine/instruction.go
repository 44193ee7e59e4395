package machine

import (
	"fmt"
)

// Instruction is a single slot of a program.
//
// For OP_INC, Next is the jump target. For OP_DEC, Next is taken when the
// register was positive (and is decremented), IfZero otherwise. OP_HALT
// uses no operands.
type Instruction struct {
	Op       Op  // Kind of instruction.
	Register int // Register operand.
	Next     int // Jump target, or the positive branch of OP_DEC.
	IfZero   int // Zero branch of OP_DEC.
}

// MakeHalt returns a HALT instruction.
func MakeHalt() Instruction {
	return Instruction{Op: OP_HALT}
}

// MakeIncrement returns an instruction that increments reg, then jumps to next.
func MakeIncrement(reg int, next int) Instruction {
	return Instruction{Op: OP_INC, Register: reg, Next: next}
}

// MakeDecrement returns an instruction that decrements reg and jumps to
// ifPositive if reg is non-zero, otherwise jumps to ifZero.
func MakeDecrement(reg int, ifPositive int, ifZero int) Instruction {
	return Instruction{Op: OP_DEC, Register: reg, Next: ifPositive, IfZero: ifZero}
}

// String returns the statement in source syntax, without a line prefix.
func (in Instruction) String() (out string) {
	switch in.Op {
	case OP_INC:
		out = fmt.Sprintf("R%d+ -> L%d", in.Register, in.Next)
	case OP_DEC:
		out = fmt.Sprintf("R%d- -> L%d, L%d", in.Register, in.Next, in.IfZero)
	default:
		out = in.Op.String()
	}

	return
}
