package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzParse(f *testing.F) {
	f.Add(addProgram, uint8(5))
	f.Add(mulProgram, uint8(3))
	f.Add("L0: R1+ L1", uint8(1))
	f.Add(";;\n L0:", uint8(4))
	f.Add("R0- -> L0, L0\x00HALT", uint8(2))

	f.Fuzz(func(t *testing.T, text string, size uint8) {
		assert := assert.New(t)

		capacity := int(size%16) + 1

		prog, err := Parse(text, capacity)
		if err != nil {
			assert.Nil(prog)
			var se ErrSyntax
			if assert.True(errors.As(err, &se), err.Error()) {
				assert.LessOrEqual(se.Offset, len(text))
				assert.GreaterOrEqual(se.LineNo, 1)
				assert.GreaterOrEqual(se.Column, 1)
			}
			return
		}

		assert.Equal(capacity, prog.Len())

		registers, _ := Infer(text)
		assert.GreaterOrEqual(registers, prog.Registers())

		again, err := Parse(prog.String(), capacity)
		assert.NoError(err)
		if err == nil {
			assert.True(prog.Equal(again), text)
		}
	})
}
