package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Operation identifies one calculator operation.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
	OpPower    Operation = "power"
	OpLast     Operation = "last"
)

// operationAliases maps user-facing spellings to canonical operations.
var operationAliases = map[string]Operation{
	"add":             OpAdd,
	"+":               OpAdd,
	"plus":            OpAdd,
	"sum":             OpAdd,
	"subtract":        OpSubtract,
	"-":               OpSubtract,
	"sub":             OpSubtract,
	"minus":           OpSubtract,
	"multiply":        OpMultiply,
	"*":               OpMultiply,
	"mul":             OpMultiply,
	"times":           OpMultiply,
	"divide":          OpDivide,
	"/":               OpDivide,
	"div":             OpDivide,
	"power":           OpPower,
	"^":               OpPower,
	"pow":             OpPower,
	"last":            OpLast,
	"result":          OpLast,
	"get_last_result": OpLast,
}

// ParseOperation resolves a name or alias into an Operation.
func ParseOperation(name string) (Operation, error) {
	if op, ok := operationAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return op, nil
	}
	return "", fmt.Errorf("unknown operation %q", name)
}

// Symbol returns the infix symbol used when rendering an expression.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpPower:
		return "^"
	}
	return ""
}

// IsBinary reports whether the operation takes two float operands.
func (o Operation) IsBinary() bool {
	switch o {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

// UnmarshalYAML accepts any alias understood by ParseOperation.
func (o *Operation) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	op, err := ParseOperation(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*o = op
	return nil
}
