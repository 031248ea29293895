package domain

import "math"

// StepResult records the outcome of a single script step.
type StepResult struct {
	Index      int
	Label      string
	Op         Operation
	Expression string
	Value      float64
	Err        string
}

// Failed reports whether the step returned an error.
func (r StepResult) Failed() bool { return r.Err != "" }

// RunResult is the outcome of running a Script.
type RunResult struct {
	Name       string
	Precision  int32
	Steps      []StepResult
	LastResult float64
	Failures   int
}

// HasLastResult reports whether the session holds a numeric last result.
func (r *RunResult) HasLastResult() bool { return !math.IsNaN(r.LastResult) }
