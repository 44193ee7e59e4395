// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator hosts a register machine with an optional tick budget.
package emulator

import (
	"log"

	"github.com/ezrec/regmach/machine"
)

// Emulator state. Machine + tick budget.
type Emulator[T machine.Word] struct {
	Verbose  bool // If set, enables verbose logging.
	MaxTicks int  // If non-zero, the maximum instructions to execute after a reset.

	*machine.Machine[T] // Reference to the machine simulation.
}

// NewEmulator creates a new emulator for a program.
func NewEmulator[T machine.Word](prog *machine.Program) (emu *Emulator[T]) {
	emu = &Emulator[T]{
		Machine: machine.NewMachine[T](prog),
	}

	return
}

// Reset the machine with initial register values.
func (emu *Emulator[T]) Reset(initial ...T) {
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Reset(initial...)
}

// LineNo returns the source line number of the current instruction.
func (emu *Emulator[T]) LineNo() int {
	return emu.Program.LineNo(emu.Pc)
}

// Tick performs a single tick of the emulator.
func (emu *Emulator[T]) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Slot: pc, Err: err}
		}
	}()

	if emu.MaxTicks > 0 && emu.Ticks >= emu.MaxTicks && !emu.Halted() {
		err = ErrTickLimit
		return
	}

	done = emu.Machine.Tick()

	return
}

// Run ticks the emulator until the program halts, or the tick budget
// is exhausted.
func (emu *Emulator[T]) Run() (value T, err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted at L%d after %d ticks\n", emu.Pc, emu.Ticks)
	}

	value = emu.Value()

	return
}
