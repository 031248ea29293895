package calculation

import (
	"context"
	"fmt"

	"github.com/mathengine/math-engine/internal/domain"
)

// Engine runs calculation scripts against a single Calculator session.
type Engine struct {
	Calc   *Calculator
	Logger Logger
}

// NewEngine creates an engine with a fresh calculator session.
func NewEngine(logger Logger) *Engine {
	e := &Engine{}
	e.SetLogger(logger)
	e.Calc = NewCalculator(e.Logger)
	return e
}

// SetLogger sets the logger for the engine and its calculator. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
	if e.Calc != nil {
		e.Calc.SetLogger(l)
	}
}

// Apply evaluates a step whose operands are already resolved.
func (e *Engine) Apply(op domain.Operation, a, b float64, exp int32) (float64, error) {
	switch op {
	case domain.OpAdd:
		return e.Calc.Add(a, b), nil
	case domain.OpSubtract:
		return e.Calc.Subtract(a, b), nil
	case domain.OpMultiply:
		return e.Calc.Multiply(a, b), nil
	case domain.OpDivide:
		return e.Calc.Divide(a, b)
	case domain.OpPower:
		return e.Calc.Power(a, exp), nil
	case domain.OpLast:
		return e.Calc.LastResult(), nil
	}
	return 0, fmt.Errorf("unsupported operation %q", op)
}

// RunStep resolves the step's operands against the session and applies it.
// The returned error is also recorded in the StepResult.
func (e *Engine) RunStep(index int, step domain.Step) (domain.StepResult, error) {
	a := step.A.Resolve(e.Calc.LastResult)
	b := step.B.Resolve(e.Calc.LastResult)
	res := domain.StepResult{
		Index:      index,
		Label:      step.Label,
		Op:         step.Op,
		Expression: step.ResolvedExpression(a, b),
	}
	v, err := e.Apply(step.Op, a, b, step.Exp)
	if err != nil {
		res.Err = err.Error()
		return res, err
	}
	res.Value = v
	return res, nil
}

// RunScript executes every step of the script in order. When a step fails and
// the script does not continue on error, the partial result is returned along
// with the step's error.
func (e *Engine) RunScript(ctx context.Context, script *domain.Script) (*domain.RunResult, error) {
	if script == nil {
		return nil, fmt.Errorf("nil script")
	}
	result := &domain.RunResult{
		Name:      script.Name,
		Precision: script.DisplayPrecision(),
		Steps:     make([]domain.StepResult, 0, len(script.Steps)),
	}
	defer func() { result.LastResult = e.Calc.peek() }()

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("script %q interrupted before step %d: %w", script.Name, i+1, err)
		}
		sr, err := e.RunStep(i+1, step)
		result.Steps = append(result.Steps, sr)
		if err == nil {
			continue
		}
		result.Failures++
		if !script.ContinueOnError {
			return result, fmt.Errorf("step %d (%s): %w", i+1, sr.Expression, err)
		}
		e.Logger.Warnf("Step %d (%s) failed, continuing: %v", i+1, sr.Expression, err)
	}
	return result, nil
}
