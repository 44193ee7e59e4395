package machine

// Op is the kind of an instruction.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_HALT = Op(0) // HALT
	OP_INC  = Op(1) // +
	OP_DEC  = Op(2) // -
)
