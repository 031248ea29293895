package output

import (
	"math"

	"github.com/shopspring/decimal"
)

// FormatNumber renders v with a fixed number of decimal places. Non-finite
// values have no decimal form and render as NaN, +Inf or -Inf.
func FormatNumber(v float64, precision int32) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return decimal.NewFromFloat(v).StringFixed(precision)
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
