package output

import (
	"encoding/json"

	"github.com/mathengine/math-engine/internal/domain"
)

// JSONFormatter serializes the run result as pretty-printed JSON. Non-finite
// values have no JSON number form, so they are reported only in the display fields.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonStep struct {
	Index      int              `json:"index"`
	Label      string           `json:"label,omitempty"`
	Op         domain.Operation `json:"op"`
	Expression string           `json:"expression"`
	Value      *float64         `json:"value,omitempty"`
	Display    string           `json:"display,omitempty"`
	Error      string           `json:"error,omitempty"`
}

type jsonReport struct {
	Name              string     `json:"name,omitempty"`
	Precision         int32      `json:"precision"`
	Steps             []jsonStep `json:"steps"`
	LastResult        *float64   `json:"last_result"`
	LastResultDisplay string     `json:"last_result_display"`
	Failures          int        `json:"failures"`
}

func (j JSONFormatter) Format(results *domain.RunResult) ([]byte, error) {
	report := jsonReport{
		Name:              results.Name,
		Precision:         results.Precision,
		Steps:             make([]jsonStep, 0, len(results.Steps)),
		LastResult:        finite(results.LastResult),
		LastResultDisplay: FormatNumber(results.LastResult, results.Precision),
		Failures:          results.Failures,
	}
	for _, s := range results.Steps {
		js := jsonStep{
			Index:      s.Index,
			Label:      s.Label,
			Op:         s.Op,
			Expression: s.Expression,
			Error:      s.Err,
		}
		if !s.Failed() {
			js.Value = finite(s.Value)
			js.Display = FormatNumber(s.Value, results.Precision)
		}
		report.Steps = append(report.Steps, js)
	}
	return json.MarshalIndent(report, "", "  ")
}
