// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"errors"
	"io"
	"log"
	"math"
	"strings"
)

// Parser is a single pass, non-backtracking parser for register machine
// programs.
type Parser struct {
	Verbose bool // If set, logs each parsed slot.
	Strict  bool // If set, text beyond the capacity is an error instead of ignored.
}

// Parse parses text into a program of exactly capacity slots.
//
// Slots not filled by the text are HALT. Statements beyond capacity are
// ignored, unless Strict is set.
func (p *Parser) Parse(text string, capacity int) (prog *Program, err error) {
	if capacity < 1 {
		err = ErrCapacityInvalid
		return
	}

	sc := &scanner{input: text, lines: 1}

	defer func() {
		if err != nil {
			err = sc.syntax(err)
		}
	}()

	instructions := make([]Instruction, capacity)
	lineNo := make([]int, capacity)

	sc.skipLinesAndSpaces()

	for slot := 0; slot < capacity && !sc.eof(); slot++ {
		sc.slot = slot
		lineNo[slot] = sc.lineNo()

		var in Instruction
		in, err = sc.statement(slot)
		if err != nil {
			return
		}

		if p.Verbose {
			log.Printf("L%d: %v\n", slot, in)
		}

		instructions[slot] = in

		sc.skipLinesAndSpaces()
	}

	if !sc.eof() {
		if p.Strict {
			sc.slot = capacity
			err = ErrCapacityExceeded
			return
		}
		if p.Verbose {
			log.Printf("capacity %d reached, ignoring text from line %d\n", capacity, sc.lineNo())
		}
	}

	prog = &Program{
		instructions: instructions,
		lineNo:       lineNo,
		registers:    registersOf(instructions),
	}

	return
}

// Read parses a program from an input stream.
func (p *Parser) Read(input io.Reader, capacity int) (prog *Program, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return p.Parse(string(data), capacity)
}

// Parse parses text with a default Parser.
func Parse(text string, capacity int) (prog *Program, err error) {
	return (&Parser{}).Parse(text, capacity)
}

// ParseAuto parses text with a capacity derived by Infer.
func ParseAuto(text string) (prog *Program, err error) {
	_, capacity := Infer(text)
	return Parse(text, capacity)
}

// MustParse is like Parse, but panics on error.
func MustParse(text string, capacity int) *Program {
	prog, err := Parse(text, capacity)
	if err != nil {
		panic(err)
	}
	return prog
}

// scanner holds the cursor over the program text.
type scanner struct {
	input string
	pos   int
	slot  int

	lines   int // Line number at counted.
	counted int // Offset lines has been counted up to.
}

func (sc *scanner) eof() bool {
	return sc.pos >= len(sc.input)
}

func (sc *scanner) peek() byte {
	return sc.input[sc.pos]
}

// is reports whether the next byte is one of cs.
func (sc *scanner) is(cs ...byte) bool {
	if sc.eof() {
		return false
	}
	return strings.IndexByte(string(cs), sc.peek()) >= 0
}

// match consumes the next byte if it is one of cs.
func (sc *scanner) match(cs ...byte) bool {
	if sc.is(cs...) {
		sc.pos++
		return true
	}
	return false
}

// matchString consumes str if the input continues with it.
func (sc *scanner) matchString(str string) bool {
	if strings.HasPrefix(sc.input[sc.pos:], str) {
		sc.pos += len(str)
		return true
	}
	return false
}

func (sc *scanner) skipSpaces() {
	for sc.match(' ', '\t') {
	}
}

func (sc *scanner) skipLinesAndSpaces() {
	for sc.match(' ', '\t', '\n') {
	}
}

// lineNo returns the 1-based source line of the cursor.
func (sc *scanner) lineNo() int {
	sc.lines += strings.Count(sc.input[sc.counted:sc.pos], "\n")
	sc.counted = sc.pos
	return sc.lines
}

// expected builds the error for a missing token at the cursor.
func (sc *scanner) expected(err error) error {
	if sc.eof() {
		return errors.Join(ErrUnexpectedEOF, err)
	}
	return ErrUnexpected{Found: sc.peek(), Err: err}
}

// integer parses a run of decimal digits, no larger than math.MaxInt32.
func (sc *scanner) integer() (value int, err error) {
	if !sc.is('0', '1', '2', '3', '4', '5', '6', '7', '8', '9') {
		err = sc.expected(ErrNumberMissing)
		return
	}

	for sc.is('0', '1', '2', '3', '4', '5', '6', '7', '8', '9') {
		digit := int(sc.peek() - '0')
		if value > (math.MaxInt32-digit)/10 {
			err = ErrNumberOverflow
			return
		}
		value = value*10 + digit
		sc.pos++
	}

	return
}

// lineNumber parses an L<n> reference.
func (sc *scanner) lineNumber() (line int, err error) {
	if sc.eof() {
		err = ErrUnexpectedEOF
		return
	}

	if !sc.match('L') {
		err = sc.expected(ErrLineExpected)
		return
	}

	return sc.integer()
}

// eol parses a statement terminator.
func (sc *scanner) eol() (err error) {
	sc.skipSpaces()

	if !sc.eof() && !sc.match(';', '\n', 0) {
		err = sc.expected(ErrTerminatorExpected)
	}

	return
}

// statement parses an optional line prefix, a statement and its terminator.
func (sc *scanner) statement(slot int) (in Instruction, err error) {
	if sc.is('L') {
		start := sc.pos
		var line int
		line, err = sc.lineNumber()
		if err != nil {
			return
		}
		if line != slot {
			sc.pos = start
			err = ErrLineNumber{Want: slot, Got: line}
			return
		}

		sc.skipSpaces()

		if !sc.match(':') {
			err = sc.expected(ErrColonExpected)
			return
		}

		sc.skipSpaces()
	}

	switch {
	case sc.match('R'):
		var reg, next, ifZero int
		reg, err = sc.integer()
		if err != nil {
			return
		}

		sc.skipSpaces()

		var op Op
		switch {
		case sc.match('+'):
			op = OP_INC
		case sc.match('-'):
			op = OP_DEC
		default:
			err = sc.expected(ErrOperatorExpected)
			return
		}

		sc.skipSpaces()

		if !sc.matchString("->") {
			err = sc.expected(ErrArrowExpected)
			return
		}

		sc.skipSpaces()

		next, err = sc.lineNumber()
		if err != nil {
			return
		}

		if op == OP_INC {
			err = sc.eol()
			in = MakeIncrement(reg, next)
			return
		}

		sc.skipSpaces()

		if !sc.match(',') {
			err = sc.expected(ErrCommaExpected)
			return
		}

		sc.skipSpaces()

		ifZero, err = sc.lineNumber()
		if err != nil {
			return
		}

		err = sc.eol()
		in = MakeDecrement(reg, next, ifZero)
	case sc.matchString("HALT"):
		err = sc.eol()
		in = MakeHalt()
	case sc.eof() || sc.match(';', '\n', 0):
		// Empty statement.
		in = MakeHalt()
	default:
		err = sc.expected(ErrStatementInvalid)
	}

	return
}

// syntax wraps err with the location of the cursor.
func (sc *scanner) syntax(err error) error {
	pos := min(sc.pos, len(sc.input))

	start := strings.LastIndexByte(sc.input[:pos], '\n') + 1
	end := strings.IndexByte(sc.input[pos:], '\n')
	if end < 0 {
		end = len(sc.input)
	} else {
		end += pos
	}

	return ErrSyntax{
		LineNo: 1 + strings.Count(sc.input[:pos], "\n"),
		Column: pos - start + 1,
		Offset: pos,
		Slot:   sc.slot,
		Line:   sc.input[start:end],
		Err:    err,
	}
}
