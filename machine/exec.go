package machine

// Execute runs prog from slot 0 with the first registers set to initial,
// and returns register 0 once the program halts.
//
// Execute does not return if the program never halts.
func Execute[T Word](prog *Program, initial ...T) T {
	m := &Machine[T]{Program: prog}
	m.Reset(initial...)
	return m.Run()
}
