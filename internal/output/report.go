package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mathengine/math-engine/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches the requested name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// lookup resolves a formatter or returns an error listing the alternatives.
func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GenerateReport renders results in the requested format to w.
func GenerateReport(w io.Writer, results *domain.RunResult, format string) error {
	f, err := lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveReport writes results in the requested format to a timestamped file in dir.
func SaveReport(results *domain.RunResult, format, dir string) (string, error) {
	f, err := lookup(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, results, Extension(format), dir)
}
