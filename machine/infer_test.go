package machine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfer(t *testing.T) {
	table := [](struct {
		text         string
		registers    int
		instructions int
	}){
		{"", 1, 1},
		{"HALT", 1, 1},
		{addProgram, 3, 5},
		{"L0: R12+ -> L7", 13, 8},
		{"R0+ -> L10", 1, 11},
		{"R1L2", 2, 3},
		{"7 R 3 L", 1, 1},
		{"R99999999999999999999999999+", math.MaxInt, 1},
	}

	for _, entry := range table {
		assert := assert.New(t)

		registers, instructions := Infer(entry.text)
		assert.Equal(entry.registers, registers, entry.text)
		assert.Equal(entry.instructions, instructions, entry.text)
	}
}

func TestInferMatchesParse(t *testing.T) {
	assert := assert.New(t)

	programs := []string{
		addProgram,
		"L0: R4- -> L1, L2\nL1: R0+ -> L0\nL2: HALT",
		"L0: R0+ -> L1;L1: R1+ -> L2;L2: R2+ -> L3;L3: HALT",
	}

	for _, text := range programs {
		registers, instructions := Infer(text)
		prog, err := Parse(text, instructions)
		assert.NoError(err, text)
		if err != nil {
			continue
		}
		assert.Equal(registers, prog.Registers(), text)
		assert.Equal(instructions, prog.Len(), text)
	}
}
