package emulator

import (
	"errors"

	"github.com/ezrec/regmach/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit exceeded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int // Source line of the current instruction.
	Slot   int // Program counter.
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d (L%d) %v", err.LineNo, err.Slot, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
