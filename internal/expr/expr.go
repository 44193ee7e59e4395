// Package expr evaluates register initialiser expressions.
package expr

import (
	"fmt"
	"regexp"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/regmach/translate"
)

var f = translate.From

// ErrExpression is returned for an expression that is not a non-negative integer.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a valid expression", string(err))
}

// ErrAssign is returned for an argument not of the form R<n>=<expr>.
type ErrAssign string

func (err ErrAssign) Error() string {
	return f("'%v' is not a register assignment", string(err))
}

// Eval evaluates a Starlark integer expression, with vars as predeclared
// names.
func Eval(expr string, vars map[string]uint64) (value uint64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, v := range vars {
		pred[key] = starlark.MakeUint64(v)
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", "rc="+expr+"\n", pred)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrExpression(expr), err)
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}

	value, ok = st_int.Uint64()
	if !ok {
		err = ErrExpression(expr)
		return
	}

	return
}

var assignRe = regexp.MustCompile(`^R([0-9]+)=(.+)$`)

// Assign evaluates R<n>=<expr> arguments in order, and returns the
// initial register file they describe. Each expression may refer to the
// registers assigned before it.
func Assign(args []string) (regs []uint64, err error) {
	vars := map[string]uint64{}

	for _, arg := range args {
		match := assignRe.FindStringSubmatch(arg)
		if match == nil {
			err = ErrAssign(arg)
			return
		}

		var index int
		index, err = strconv.Atoi(match[1])
		if err != nil {
			err = ErrAssign(arg)
			return
		}

		var value uint64
		value, err = Eval(match[2], vars)
		if err != nil {
			return
		}

		if index >= len(regs) {
			regs = append(regs, make([]uint64, index+1-len(regs))...)
		}
		regs[index] = value
		vars[fmt.Sprintf("R%d", index)] = value
	}

	return
}
