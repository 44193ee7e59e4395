// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"log"
	"strings"
)

// Word is the set of unsigned integer types a register may hold.
// Arithmetic wraps on overflow.
type Word interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Machine is the execution state of a program: a program counter and a
// register file. A Machine is owned by a single caller; to run a Program
// concurrently, use one Machine per goroutine.
type Machine[T Word] struct {
	Verbose bool // Set to enable verbose logging.

	Program  *Program // Program being executed.
	Pc       int      // Slot of the next instruction.
	Register []T      // Register file.
	Ticks    int      // Instructions executed since reset.
}

// NewMachine creates a machine for prog with all registers zero.
func NewMachine[T Word](prog *Program) (m *Machine[T]) {
	m = &Machine[T]{
		Program: prog,
	}

	m.Reset()

	return
}

// Reset the machine to slot 0, with the first registers set from
// initial and the rest zero. The register file holds at least as many
// registers as the program declares.
func (m *Machine[T]) Reset(initial ...T) {
	size := max(m.Program.Registers(), len(initial))
	if cap(m.Register) >= size {
		m.Register = m.Register[:size]
		clear(m.Register)
	} else {
		m.Register = make([]T, size)
	}
	copy(m.Register, initial)

	m.Pc = 0
	m.Ticks = 0

	if m.Verbose {
		log.Printf("machine: reset %v\n", m.Register)
	}
}

// Halted returns true if the machine is on a HALT, or outside the program.
func (m *Machine[T]) Halted() bool {
	in, ok := m.Program.At(m.Pc)
	return !ok || in.Op == OP_HALT
}

// Value returns the result register.
func (m *Machine[T]) Value() T {
	return m.Register[0]
}

// Tick executes a single instruction. done is set, and nothing is
// executed, if the machine has halted.
func (m *Machine[T]) Tick() (done bool) {
	in, ok := m.Program.At(m.Pc)
	if !ok || in.Op == OP_HALT {
		done = true
		return
	}

	if m.Verbose {
		log.Printf("L%d: %v ; R%d=%v\n", m.Pc, in, in.Register, m.Register[in.Register])
	}

	switch in.Op {
	case OP_INC:
		m.Register[in.Register]++
		m.Pc = in.Next
	case OP_DEC:
		if m.Register[in.Register] > 0 {
			m.Register[in.Register]--
			m.Pc = in.Next
		} else {
			m.Pc = in.IfZero
		}
	}

	m.Ticks++

	return
}

// Run executes until halted, and returns the result register.
// Run does not return if the program never halts.
func (m *Machine[T]) Run() T {
	for !m.Tick() {
	}

	return m.Value()
}

// String returns the current machine state as a string.
func (m *Machine[T]) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%5s: L%d\n", "pc", m.Pc)
	fmt.Fprintf(&sb, "%5s: %d\n", "ticks", m.Ticks)
	for n, value := range m.Register {
		fmt.Fprintf(&sb, "%5s: %v\n", fmt.Sprintf("R%d", n), value)
	}

	return sb.String()
}
