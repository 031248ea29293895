package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseOperation(t *testing.T) {
	tests := map[string]Operation{
		"add":             OpAdd,
		" PLUS ":          OpAdd,
		"-":               OpSubtract,
		"times":           OpMultiply,
		"/":               OpDivide,
		"^":               OpPower,
		"get_last_result": OpLast,
	}
	for in, want := range tests {
		got, err := ParseOperation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOperation("sqrt")
	assert.Error(t, err)
}

func TestOperation_IsBinary(t *testing.T) {
	assert.True(t, OpAdd.IsBinary())
	assert.True(t, OpDivide.IsBinary())
	assert.False(t, OpPower.IsBinary())
	assert.False(t, OpLast.IsBinary())
}

func TestStep_Expression(t *testing.T) {
	assert.Equal(t, "5 + 3", Step{Op: OpAdd, A: Literal(5), B: Literal(3)}.Expression())
	assert.Equal(t, "last / 0.5", Step{Op: OpDivide, A: LastRef(), B: Literal(0.5)}.Expression())
	assert.Equal(t, "2 ^ -3", Step{Op: OpPower, A: Literal(2), Exp: -3}.Expression())
	assert.Equal(t, "last", Step{Op: OpLast}.Expression())
	assert.Equal(t, "16 - 1", Step{Op: OpSubtract, A: LastRef(), B: Literal(1)}.ResolvedExpression(16, 1))
}

func TestOperand_Resolve(t *testing.T) {
	last := func() float64 { return 42 }

	assert.Equal(t, 7.0, Literal(7).Resolve(last))
	assert.Equal(t, 42.0, LastRef().Resolve(last))
	assert.False(t, Operand{}.IsSet())
}

func TestScript_YAMLRoundTrip(t *testing.T) {
	precision := int32(4)
	script := Script{
		Name:      "rt",
		Precision: &precision,
		Steps: []Step{
			{Op: OpAdd, A: Literal(1.5), B: LastRef()},
			{Op: OpPower, A: Literal(math.Inf(-1)), Exp: 3},
			{Op: OpLast},
		},
	}

	data, err := yaml.Marshal(&script)
	require.NoError(t, err)

	var decoded Script
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, script, decoded)
	assert.NotContains(t, string(data), "b: 0")
}

func TestScript_DisplayPrecision(t *testing.T) {
	assert.Equal(t, int32(DefaultPrecision), (&Script{}).DisplayPrecision())

	zero := int32(0)
	assert.Equal(t, int32(0), (&Script{Precision: &zero}).DisplayPrecision())
}

func TestRunResult_HasLastResult(t *testing.T) {
	assert.False(t, (&RunResult{LastResult: math.NaN()}).HasLastResult())
	assert.True(t, (&RunResult{LastResult: 0}).HasLastResult())
}
