package machine

import (
	"math"
)

// Infer scans text for R<n> and L<n> references and returns the register
// and instruction capacities needed to hold them: the highest register
// plus one, and the highest line plus one.
//
// Infer does not validate syntax.
func Infer(text string) (registers, instructions int) {
	var marker byte
	var value, maxReg, maxLine int

	flush := func() {
		switch marker {
		case 'R':
			maxReg = max(maxReg, value)
		case 'L':
			maxLine = max(maxLine, value)
		}
		marker = 0
		value = 0
	}

	for n := range len(text) {
		c := text[n]
		switch {
		case c >= '0' && c <= '9':
			if marker == 0 {
				continue
			}
			digit := int(c - '0')
			if value > (math.MaxInt-1-digit)/10 {
				value = math.MaxInt - 1
			} else {
				value = value*10 + digit
			}
		case c == 'R' || c == 'L':
			flush()
			marker = c
		default:
			flush()
		}
	}
	flush()

	return maxReg + 1, maxLine + 1
}
