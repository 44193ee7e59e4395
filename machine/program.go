package machine

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Program is an immutable, fixed-size table of instructions.
// A Program may be shared between concurrent executions.
type Program struct {
	instructions []Instruction
	lineNo       []int // Source line of each slot, 0 if padded.
	registers    int
}

// NewProgram creates a program from a list of instructions.
func NewProgram(instructions ...Instruction) (prog *Program) {
	prog = &Program{
		instructions: slices.Clone(instructions),
		lineNo:       make([]int, len(instructions)),
	}
	prog.registers = registersOf(prog.instructions)

	return
}

// registersOf returns the number of registers an instruction table refers to.
func registersOf(instructions []Instruction) (count int) {
	count = 1
	for _, in := range instructions {
		if in.Op != OP_HALT && in.Register >= count {
			count = in.Register + 1
		}
	}
	return
}

// Len returns the number of instruction slots.
func (prog *Program) Len() int {
	return len(prog.instructions)
}

// Registers returns the number of registers the program declares,
// which is one more than the highest register referenced.
func (prog *Program) Registers() int {
	return prog.registers
}

// At returns the instruction in a slot. ok is false if line is outside
// the program, which execution treats as HALT.
func (prog *Program) At(line int) (in Instruction, ok bool) {
	if line < 0 || line >= len(prog.instructions) {
		return MakeHalt(), false
	}

	return prog.instructions[line], true
}

// LineNo returns the source text line a slot was parsed from.
// Padding slots, and slots of programs built with NewProgram, return 0.
func (prog *Program) LineNo(line int) int {
	if line < 0 || line >= len(prog.lineNo) {
		return 0
	}
	return prog.lineNo[line]
}

// Instructions iterates over all slots in order.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(line int, in Instruction) bool) {
		for n, in := range prog.instructions {
			if !yield(n, in) {
				return
			}
		}
	}
}

// Equal reports whether two programs have identical instruction tables.
func (prog *Program) Equal(other *Program) bool {
	return slices.Equal(prog.instructions, other.instructions)
}

// String returns a listing that parses back to an equal program.
func (prog *Program) String() string {
	var sb strings.Builder
	for n, in := range prog.Instructions() {
		fmt.Fprintf(&sb, "L%d: %v\n", n, in)
	}
	return sb.String()
}
