package output

import (
	"bytes"
	"fmt"

	"github.com/mathengine/math-engine/internal/domain"
)

// ConsoleFormatter renders one line per step followed by the session's last result.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.RunResult) ([]byte, error) {
	var buf bytes.Buffer
	title := "CALCULATION"
	if results.Name != "" {
		title += ": " + results.Name
	}
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, "================================")
	for _, step := range results.Steps {
		expr := step.Expression
		if step.Label != "" {
			expr = "[" + step.Label + "] " + expr
		}
		if step.Failed() {
			fmt.Fprintf(&buf, "%3d. %-28s ! %s\n", step.Index, expr, step.Err)
			continue
		}
		fmt.Fprintf(&buf, "%3d. %-28s = %s\n", step.Index, expr, FormatNumber(step.Value, results.Precision))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Last result: %s\n", FormatNumber(results.LastResult, results.Precision))
	if results.Failures > 0 {
		fmt.Fprintf(&buf, "Failed steps: %d\n", results.Failures)
	}
	return buf.Bytes(), nil
}
