package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOperand reads a literal number or the reference "last" / "$last".
func ParseOperand(s string) (Operand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "last", "$last":
		return LastRef(), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Operand{}, fmt.Errorf("invalid operand %q", s)
	}
	return Literal(v), nil
}

// ParseStep reads a one-line step such as "add 5 3", "* last 2", "pow 2 -1" or "last".
func ParseStep(line string) (Step, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Step{}, fmt.Errorf("empty step")
	}
	op, err := ParseOperation(fields[0])
	if err != nil {
		return Step{}, err
	}
	args := fields[1:]
	step := Step{Op: op}

	switch {
	case op == OpLast:
		if len(args) != 0 {
			return Step{}, fmt.Errorf("last takes no operands")
		}
	case op == OpPower:
		if len(args) != 2 {
			return Step{}, fmt.Errorf("power takes BASE EXP, got %d operands", len(args))
		}
		if step.A, err = ParseOperand(args[0]); err != nil {
			return Step{}, err
		}
		exp, err := strconv.ParseInt(args[1], 10, 32)
		if err != nil {
			return Step{}, fmt.Errorf("invalid exponent %q", args[1])
		}
		step.Exp = int32(exp)
	default:
		if len(args) != 2 {
			return Step{}, fmt.Errorf("%s takes A B, got %d operands", op, len(args))
		}
		if step.A, err = ParseOperand(args[0]); err != nil {
			return Step{}, err
		}
		if step.B, err = ParseOperand(args[1]); err != nil {
			return Step{}, err
		}
	}
	return step, nil
}
