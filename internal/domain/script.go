package domain

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPrecision is the number of decimal places used for display when a
// script does not set one.
const DefaultPrecision = 2

// Operand is either a literal value or a reference to the calculator's last result.
type Operand struct {
	Value   float64
	UseLast bool
	set     bool
}

// Literal returns an operand holding v.
func Literal(v float64) Operand { return Operand{Value: v, set: true} }

// LastRef returns an operand that resolves to the last result at step time.
func LastRef() Operand { return Operand{UseLast: true, set: true} }

// IsSet reports whether the operand was provided.
func (o Operand) IsSet() bool { return o.set }

// IsZero lets yaml omitempty drop operands that were never set.
func (o Operand) IsZero() bool { return !o.set }

// Resolve returns the operand's value, reading last when it is a reference.
func (o Operand) Resolve(last func() float64) float64 {
	if o.UseLast {
		return last()
	}
	return o.Value
}

func (o Operand) String() string {
	if o.UseLast {
		return "last"
	}
	return strconv.FormatFloat(o.Value, 'g', -1, 64)
}

// UnmarshalYAML decodes a number (including .nan/.inf) or the reference "last" / "$last".
func (o *Operand) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: operand must be a scalar", node.Line)
	}
	switch strings.ToLower(strings.TrimSpace(node.Value)) {
	case "last", "$last":
		*o = LastRef()
		return nil
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("line %d: invalid operand %q: %w", node.Line, node.Value, err)
	}
	*o = Literal(v)
	return nil
}

// MarshalYAML writes references as "last" and literals as numbers.
func (o Operand) MarshalYAML() (interface{}, error) {
	if o.UseLast {
		return "last", nil
	}
	return o.Value, nil
}

// Step is one operation in a Script.
type Step struct {
	Label string    `yaml:"label,omitempty"`
	Op    Operation `yaml:"op"`
	A     Operand   `yaml:"a,omitempty"`
	B     Operand   `yaml:"b,omitempty"`
	Exp   int32     `yaml:"exp,omitempty"`
}

// Expression renders the step with unresolved operands, e.g. "last * 2".
func (s Step) Expression() string {
	return s.render(s.A.String(), s.B.String())
}

// ResolvedExpression renders the step with the given operand values.
func (s Step) ResolvedExpression(a, b float64) string {
	return s.render(strconv.FormatFloat(a, 'g', -1, 64), strconv.FormatFloat(b, 'g', -1, 64))
}

func (s Step) render(a, b string) string {
	switch {
	case s.Op == OpLast:
		return "last"
	case s.Op == OpPower:
		return fmt.Sprintf("%s ^ %d", a, s.Exp)
	case s.Op.IsBinary():
		return fmt.Sprintf("%s %s %s", a, s.Op.Symbol(), b)
	}
	return string(s.Op)
}

// Script is an ordered list of calculator steps loaded from YAML.
type Script struct {
	Name            string `yaml:"name"`
	LogLevel        string `yaml:"log_level,omitempty"`
	Precision       *int32 `yaml:"precision,omitempty"`
	ContinueOnError bool   `yaml:"continue_on_error,omitempty"`
	Steps           []Step `yaml:"steps"`
}

// DisplayPrecision returns the configured precision or DefaultPrecision.
func (s *Script) DisplayPrecision() int32 {
	if s.Precision == nil {
		return DefaultPrecision
	}
	return *s.Precision
}
