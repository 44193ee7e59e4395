// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/regmach/emulator"
	"github.com/ezrec/regmach/internal/expr"
	"github.com/ezrec/regmach/machine"
)

// run executes prog with T sized registers, and prints register 0.
func run[T machine.Word](prog *machine.Program, regs []uint64, limit int, verbose bool) {
	initial := make([]T, len(regs))
	for n, value := range regs {
		initial[n] = T(value)
	}

	emu := emulator.NewEmulator[T](prog)
	emu.Verbose = verbose
	emu.MaxTicks = limit

	emu.Reset(initial...)
	value, err := emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(value)
}

func main() {
	var compile string
	var text string
	var capacity int
	var strict bool
	var limit int
	var width int
	var list bool
	var verbose bool

	flag.StringVar(&compile, "c", "", "program file to run ('-' for stdin)")
	flag.StringVar(&text, "e", "", "program text to run")
	flag.IntVar(&capacity, "n", 0, "instruction capacity (0 to infer from the program)")
	flag.BoolVar(&strict, "strict", false, "Reject programs that exceed the capacity")
	flag.IntVar(&limit, "limit", 0, "Maximum instructions to execute (0 for no limit)")
	flag.IntVar(&width, "bits", 64, "Register width: 8, 16, 32 or 64")
	flag.BoolVar(&list, "l", false, "List the parsed program, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if (len(compile) == 0) == (len(text) == 0) {
		log.Fatalf("%v: exactly one of -c or -e is required", os.Args[0])
	}

	source := "-e"
	if len(compile) != 0 {
		source = compile
		var data []byte
		var err error
		if compile == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(compile)
		}
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		text = string(data)
	}

	regs, err := expr.Assign(flag.Args())
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if capacity == 0 {
		_, capacity = machine.Infer(text)
	}

	parser := &machine.Parser{Verbose: verbose, Strict: strict}
	prog, err := parser.Parse(text, capacity)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if list {
		fmt.Print(prog.String())
		return
	}

	switch width {
	case 8:
		run[uint8](prog, regs, limit, verbose)
	case 16:
		run[uint16](prog, regs, limit, verbose)
	case 32:
		run[uint32](prog, regs, limit, verbose)
	case 64:
		run[uint64](prog, regs, limit, verbose)
	default:
		log.Fatalf("%v: -bits %v: unsupported register width", os.Args[0], width)
	}
}
