package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/mathengine/math-engine/internal/domain"
)

// CSVFormatter writes one row per step.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.RunResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Index", "Label", "Operation", "Expression", "Value", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range results.Steps {
		value := ""
		if !s.Failed() {
			value = FormatNumber(s.Value, results.Precision)
		}
		row := []string{
			strconv.Itoa(s.Index),
			s.Label,
			string(s.Op),
			s.Expression,
			value,
			s.Err,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
