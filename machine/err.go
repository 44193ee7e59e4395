package machine

import (
	"errors"

	"github.com/ezrec/regmach/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrCapacityInvalid    = errors.New(f("capacity must be at least one instruction"))
	ErrCapacityExceeded   = errors.New(f("program exceeds instruction capacity"))
	ErrUnexpectedEOF      = errors.New(f("unexpected end of input"))
	ErrNumberMissing      = errors.New(f("no number specified"))
	ErrNumberOverflow     = errors.New(f("number too large"))
	ErrLineExpected       = errors.New(f("expected line number"))
	ErrColonExpected      = errors.New(f("expected ':'"))
	ErrOperatorExpected   = errors.New(f("expected '+' or '-'"))
	ErrArrowExpected      = errors.New(f("expected \"->\""))
	ErrCommaExpected      = errors.New(f("expected ','"))
	ErrTerminatorExpected = errors.New(f("missing statement terminator (';', newline or end of input)"))
	ErrStatementInvalid   = errors.New(f("unexpected characters"))
)

// ErrLineNumber is returned when an L<n>: prefix does not match the slot
// it labels.
type ErrLineNumber struct {
	Want int // Slot being parsed.
	Got  int // Number given in the prefix.
}

func (err ErrLineNumber) Error() string {
	return f("line number L%d is incorrect, expected L%d", err.Got, err.Want)
}

// ErrUnexpected reports the byte found where another token was expected.
type ErrUnexpected struct {
	Found byte
	Err   error
}

func (err ErrUnexpected) Error() string {
	return f("%v, found %v", err.Err, translate.Quote(err.Found))
}

func (err ErrUnexpected) Unwrap() error {
	return err.Err
}

// ErrSyntax locates a parse failure in the source text.
type ErrSyntax struct {
	LineNo int    // 1-based line of the source text.
	Column int    // 1-based byte column within the line.
	Offset int    // 0-based byte offset into the source text.
	Slot   int    // Instruction slot being parsed.
	Line   string // Text of the offending line.
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d:%d '%v' %v", err.LineNo, err.Column, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
