// Package machine implements the parser and executor for a minimal
// register machine.
//
// A program is a fixed-size table of instructions, one per line slot.
// Each instruction either increments a register and jumps, decrements a
// register and branches on whether it was positive, or halts:
//
//	L0: R1- -> L1, L2
//	L1: R0+ -> L0
//	L2: HALT
//
// The optional L<n>: prefix must match the slot it appears in. Execution
// starts at slot 0 and stops on HALT, or when the program counter leaves
// the table. The result of a run is the value of register 0.
package machine
