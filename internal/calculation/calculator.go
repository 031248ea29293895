package calculation

import (
	"errors"
	"math"
	"sync"
)

// DivisionByZeroThreshold is the divisor magnitude below which Divide fails.
const DivisionByZeroThreshold = 1e-10

// ErrDivisionByZero is returned by Divide when |b| < DivisionByZeroThreshold.
var ErrDivisionByZero = errors.New("Cannot divide by zero")

// Calculator is a calculation session: arithmetic over float64 operands that
// remembers the result of the most recent successful operation.
//
// A Calculator is safe for concurrent use. Each session owns its last result;
// create one per caller context rather than sharing a package-level value.
type Calculator struct {
	mu         sync.Mutex
	lastResult float64
	Logger     Logger
}

// NewCalculator creates a session whose last result is NaN. A nil logger
// disables logging.
func NewCalculator(logger Logger) *Calculator {
	c := &Calculator{lastResult: math.NaN()}
	c.SetLogger(logger)
	return c
}

// SetLogger sets the logger for the calculator. If nil is provided, a no-op logger is used.
func (c *Calculator) SetLogger(l Logger) {
	if l == nil {
		c.Logger = NopLogger{}
		return
	}
	c.Logger = l
}

func (c *Calculator) log() Logger {
	if c.Logger == nil {
		return NopLogger{}
	}
	return c.Logger
}

// store records a successful result and logs it.
func (c *Calculator) store(result float64) float64 {
	c.mu.Lock()
	c.lastResult = result
	c.mu.Unlock()
	c.log().Debugf("Result: %g", result)
	return result
}

// Add returns a+b.
func (c *Calculator) Add(a, b float64) float64 {
	c.log().Infof("Calculating: %g + %g", a, b)
	return c.store(a + b)
}

// Subtract returns a-b.
func (c *Calculator) Subtract(a, b float64) float64 {
	c.log().Infof("Calculating: %g - %g", a, b)
	return c.store(a - b)
}

// Multiply returns a*b.
func (c *Calculator) Multiply(a, b float64) float64 {
	c.log().Infof("Calculating: %g * %g", a, b)
	return c.store(a * b)
}

// Divide returns a/b, or ErrDivisionByZero when |b| is below
// DivisionByZeroThreshold. The last result is left untouched on failure.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	c.log().Infof("Calculating: %g / %g", a, b)
	if math.Abs(b) < DivisionByZeroThreshold {
		c.log().Errorf("Division by zero attempted!")
		return 0, ErrDivisionByZero
	}
	return c.store(a / b), nil
}

// Power returns base raised to exp using math.Pow. Negative exponents are
// allowed and only produce a warning.
func (c *Calculator) Power(base float64, exp int32) float64 {
	c.log().Infof("Calculating: %g^%d", base, exp)
	if exp < 0 {
		c.log().Warnf("Negative exponent - may lose precision")
	}
	return c.store(math.Pow(base, float64(exp)))
}

// LastResult returns the most recent successful result, or NaN if there is none.
func (c *Calculator) LastResult() float64 {
	c.log().Debugf("Retrieving last result")
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastResult
}

// peek reads the last result without logging.
func (c *Calculator) peek() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastResult
}
