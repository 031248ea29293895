package main

import (
	"fmt"

	"github.com/mathengine/math-engine/internal/domain"
	"github.com/mathengine/math-engine/internal/output"
	"github.com/spf13/cobra"
)

func newBinaryCmd(opts *rootOptions, op domain.Operation, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(op) + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseFloatArg("operand", args[0])
			if err != nil {
				return err
			}
			b, err := parseFloatArg("operand", args[1])
			if err != nil {
				return err
			}
			engine, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}
			v, err := engine.Apply(op, a, b, 0)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.FormatNumber(v, opts.precision))
			return nil
		},
	}
}

func newPowerCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "power BASE EXP",
		Short:   "Raise BASE to the integer power EXP",
		Aliases: []string{"pow"},
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseFloatArg("base", args[0])
			if err != nil {
				return err
			}
			exp, err := parseExpArg(args[1])
			if err != nil {
				return err
			}
			engine, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.FormatNumber(engine.Calc.Power(base, exp), opts.precision))
			return nil
		},
	}
}
