package main

import (
	"fmt"
	"strconv"

	"github.com/mathengine/math-engine/internal/calculation"
	"github.com/mathengine/math-engine/internal/config"
	"github.com/mathengine/math-engine/internal/domain"
	"github.com/mathengine/math-engine/internal/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel  string
	quiet     bool
	precision int32
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "mathengine",
		Short: "Stateful calculator with audit logging",
		Long: "mathengine performs arithmetic on 64-bit floats, logging every operation\n" +
			"to standard error. Use -- before negative operands, e.g. mathengine add -- -3 5.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.precision < 0 || opts.precision > config.MaxPrecision {
				return fmt.Errorf("--precision must be between 0 and %d", config.MaxPrecision)
			}
			if opts.logLevel != "" {
				if _, err := logger.ParseLevel(opts.logLevel); err != nil {
					return err
				}
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "minimum log level: debug, info, warn, error (env "+config.EnvLogLevel+")")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "disable log output")
	root.PersistentFlags().Int32Var(&opts.precision, "precision", domain.DefaultPrecision, "decimal places shown in results")

	root.AddCommand(
		newBinaryCmd(opts, domain.OpAdd, "Add two numbers"),
		newBinaryCmd(opts, domain.OpSubtract, "Subtract B from A"),
		newBinaryCmd(opts, domain.OpMultiply, "Multiply two numbers"),
		newBinaryCmd(opts, domain.OpDivide, "Divide A by B"),
		newPowerCmd(opts),
		newSessionCmd(opts),
		newRunCmd(opts),
		newDemoCmd(opts),
		newConsumerCmd(opts),
	)
	return root
}

// newLogger builds the logger for a command. The script may be nil.
func (o *rootOptions) newLogger(cmd *cobra.Command, script *domain.Script) (calculation.Logger, error) {
	if o.quiet {
		return calculation.NopLogger{}, nil
	}
	lvl, err := config.ResolveLogLevel(o.logLevel, script)
	if err != nil {
		return nil, err
	}
	return logger.New(cmd.ErrOrStderr(), lvl), nil
}

func (o *rootOptions) newEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	l, err := o.newLogger(cmd, nil)
	if err != nil {
		return nil, err
	}
	return calculation.NewEngine(l), nil
}

func parseFloatArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected a number", name, s)
	}
	return v, nil
}

func parseExpArg(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid exponent %q: expected a 32-bit integer", s)
	}
	return int32(v), nil
}
