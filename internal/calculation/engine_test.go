package calculation

import (
	"context"
	"math"
	"testing"

	"github.com/mathengine/math-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainScript() *domain.Script {
	return &domain.Script{
		Name: "chain",
		Steps: []domain.Step{
			{Op: domain.OpAdd, A: domain.Literal(5), B: domain.Literal(3)},
			{Op: domain.OpMultiply, A: domain.LastRef(), B: domain.Literal(2)},
			{Op: domain.OpDivide, A: domain.LastRef(), B: domain.Literal(4)},
			{Op: domain.OpSubtract, A: domain.LastRef(), B: domain.Literal(1)},
			{Op: domain.OpLast},
		},
	}
}

func TestEngine_RunScriptChain(t *testing.T) {
	engine := NewEngine(nil)

	result, err := engine.RunScript(context.Background(), chainScript())
	require.NoError(t, err)

	require.Len(t, result.Steps, 5)
	assert.Equal(t, "chain", result.Name)
	assert.Equal(t, int32(domain.DefaultPrecision), result.Precision)
	assert.Equal(t, 8.0, result.Steps[0].Value)
	assert.Equal(t, "8 * 2", result.Steps[1].Expression)
	assert.Equal(t, 16.0, result.Steps[1].Value)
	assert.Equal(t, 4.0, result.Steps[2].Value)
	assert.Equal(t, 3.0, result.Steps[3].Value)
	assert.Equal(t, 3.0, result.Steps[4].Value)
	assert.Equal(t, 3.0, result.LastResult)
	assert.Zero(t, result.Failures)
	assert.Equal(t, 3.0, engine.Calc.LastResult())
}

func TestEngine_RunScriptStopsOnError(t *testing.T) {
	engine := NewEngine(nil)
	script := &domain.Script{
		Name: "stop",
		Steps: []domain.Step{
			{Op: domain.OpAdd, A: domain.Literal(1), B: domain.Literal(1)},
			{Op: domain.OpDivide, A: domain.LastRef(), B: domain.Literal(0)},
			{Op: domain.OpAdd, A: domain.Literal(100), B: domain.Literal(1)},
		},
	}

	result, err := engine.RunScript(context.Background(), script)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Contains(t, err.Error(), "step 2")

	require.Len(t, result.Steps, 2)
	assert.True(t, result.Steps[1].Failed())
	assert.Equal(t, 1, result.Failures)
	assert.Equal(t, 2.0, result.LastResult)
}

func TestEngine_RunScriptContinueOnError(t *testing.T) {
	log := &recordingLogger{}
	engine := NewEngine(log)
	script := &domain.Script{
		Name:            "continue",
		ContinueOnError: true,
		Steps: []domain.Step{
			{Op: domain.OpDivide, A: domain.Literal(1), B: domain.Literal(0)},
			{Op: domain.OpPower, A: domain.Literal(2), Exp: 8},
			{Op: domain.OpDivide, A: domain.LastRef(), B: domain.Literal(0.00000000001)},
		},
	}

	result, err := engine.RunScript(context.Background(), script)
	require.NoError(t, err)

	require.Len(t, result.Steps, 3)
	assert.Equal(t, 2, result.Failures)
	assert.Contains(t, result.Steps[0].Err, "Cannot divide by zero")
	assert.Equal(t, 256.0, result.Steps[1].Value)
	assert.Equal(t, 256.0, result.LastResult)
	assert.Contains(t, log.levels(), "WARN")
}

func TestEngine_RunScriptNoSuccessLeavesNaN(t *testing.T) {
	engine := NewEngine(nil)
	script := &domain.Script{
		Name:  "empty",
		Steps: []domain.Step{{Op: domain.OpLast}},
	}

	result, err := engine.RunScript(context.Background(), script)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(result.Steps[0].Value))
	assert.False(t, result.HasLastResult())
}

func TestEngine_RunScriptCancelled(t *testing.T) {
	engine := NewEngine(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := engine.RunScript(ctx, chainScript())
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Steps)
}

func TestEngine_RunScriptNil(t *testing.T) {
	_, err := NewEngine(nil).RunScript(context.Background(), nil)
	assert.Error(t, err)
}

func TestEngine_Apply(t *testing.T) {
	engine := NewEngine(nil)

	v, err := engine.Apply(domain.OpPower, 3, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	_, err = engine.Apply(domain.Operation("modulo"), 1, 2, 0)
	assert.Error(t, err)
}

func TestEngine_SetLoggerPropagates(t *testing.T) {
	engine := NewEngine(nil)
	log := &recordingLogger{}
	engine.SetLogger(log)

	engine.Calc.Add(1, 2)
	assert.Equal(t, []string{"INFO", "DEBUG"}, log.levels())
}
