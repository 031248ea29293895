package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mathengine/math-engine/internal/domain"
	"github.com/mathengine/math-engine/internal/logger"
	"gopkg.in/yaml.v3"
)

// EnvLogLevel names the environment variable that overrides a script's log level.
const EnvLogLevel = "MATHENGINE_LOG_LEVEL"

// MaxPrecision is the largest display precision a script may request.
const MaxPrecision = 15

// ErrEmptyScript is returned when a script has no steps.
var ErrEmptyScript = errors.New("script has no steps")

// InputParser handles parsing of calculation script files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation script from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	script, err := ip.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return script, nil
}

// Parse decodes and validates a calculation script
func (ip *InputParser) Parse(data []byte) (*domain.Script, error) {
	var script domain.Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScript(&script); err != nil {
		return nil, fmt.Errorf("script validation failed: %w", err)
	}

	return &script, nil
}

// ValidateScript validates the loaded script
func (ip *InputParser) ValidateScript(script *domain.Script) error {
	if len(script.Steps) == 0 {
		return ErrEmptyScript
	}

	if script.Precision != nil && (*script.Precision < 0 || *script.Precision > MaxPrecision) {
		return fmt.Errorf("precision must be between 0 and %d, got %d", MaxPrecision, *script.Precision)
	}

	if script.LogLevel != "" {
		if _, err := logger.ParseLevel(script.LogLevel); err != nil {
			return err
		}
	}

	for i, step := range script.Steps {
		if err := ip.validateStep(step); err != nil {
			return fmt.Errorf("step %d validation failed: %w", i+1, err)
		}
	}

	return nil
}

// validateStep validates a single step's operands against its operation
func (ip *InputParser) validateStep(step domain.Step) error {
	switch {
	case step.Op == "":
		return fmt.Errorf("operation is required")
	case step.Op.IsBinary():
		if !step.A.IsSet() {
			return fmt.Errorf("%s requires operand a", step.Op)
		}
		if !step.B.IsSet() {
			return fmt.Errorf("%s requires operand b", step.Op)
		}
		if step.Exp != 0 {
			return fmt.Errorf("%s does not take an exponent", step.Op)
		}
	case step.Op == domain.OpPower:
		if !step.A.IsSet() {
			return fmt.Errorf("power requires a base (operand a)")
		}
		if step.B.IsSet() {
			return fmt.Errorf("power takes its exponent from exp, not b")
		}
	case step.Op == domain.OpLast:
		if step.A.IsSet() || step.B.IsSet() || step.Exp != 0 {
			return fmt.Errorf("last takes no operands")
		}
	default:
		return fmt.Errorf("unsupported operation %q", step.Op)
	}
	return nil
}

// LogLevelFromEnv returns the level named by MATHENGINE_LOG_LEVEL, if set.
func LogLevelFromEnv() (logger.Level, bool, error) {
	v := strings.TrimSpace(os.Getenv(EnvLogLevel))
	if v == "" {
		return logger.LevelDebug, false, nil
	}
	lvl, err := logger.ParseLevel(v)
	if err != nil {
		return logger.LevelDebug, false, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	return lvl, true, nil
}

// ResolveLogLevel picks the effective level: flag, then environment, then
// script, then debug.
func ResolveLogLevel(flagValue string, script *domain.Script) (logger.Level, error) {
	if flagValue != "" {
		return logger.ParseLevel(flagValue)
	}
	if lvl, ok, err := LogLevelFromEnv(); err != nil || ok {
		return lvl, err
	}
	if script != nil && script.LogLevel != "" {
		return logger.ParseLevel(script.LogLevel)
	}
	return logger.LevelDebug, nil
}
