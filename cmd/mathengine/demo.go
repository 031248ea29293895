package main

import (
	"errors"
	"fmt"

	"github.com/mathengine/math-engine/internal/calculation"
	"github.com/mathengine/math-engine/internal/output"
	"github.com/spf13/cobra"
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every calculator operation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}
			calc := engine.Calc
			out := cmd.OutOrStdout()
			num := func(v float64) string { return output.FormatNumber(v, opts.precision) }

			fmt.Fprintln(out, "========================================")
			fmt.Fprintln(out, "  MathEngine Demo")
			fmt.Fprintln(out, "========================================")
			fmt.Fprintln(out)

			fmt.Fprintln(out, "--- Basic Operations ---")
			fmt.Fprintf(out, "10.0 + 5.0 = %s\n", num(calc.Add(10, 5)))
			fmt.Fprintf(out, "10.0 - 3.0 = %s\n", num(calc.Subtract(10, 3)))
			fmt.Fprintf(out, "4.0 * 7.0 = %s\n", num(calc.Multiply(4, 7)))
			q, err := calc.Divide(20, 4)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "20.0 / 4.0 = %s\n", num(q))
			fmt.Fprintln(out)

			fmt.Fprintln(out, "--- Power Operation ---")
			fmt.Fprintf(out, "2.0^10 = %s\n", num(calc.Power(2, 10)))
			fmt.Fprintln(out)

			fmt.Fprintln(out, "--- Last Result ---")
			fmt.Fprintf(out, "Last result: %s\n", num(calc.LastResult()))
			fmt.Fprintln(out)

			fmt.Fprintln(out, "--- Error Handling ---")
			if _, err := calc.Divide(10, 0); errors.Is(err, calculation.ErrDivisionByZero) {
				fmt.Fprintf(out, "Caught error: %v\n", err)
			}
			fmt.Fprintf(out, "Last result after failed division: %s\n", num(calc.LastResult()))
			return nil
		},
	}
}

func newConsumerCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "consumer",
		Short: "Chain power, add and divide in one session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}
			calc := engine.Calc
			out := cmd.OutOrStdout()
			num := func(v float64) string { return output.FormatNumber(v, opts.precision) }

			result := calc.Power(2, 8)
			fmt.Fprintf(out, "2.0^8 = %s\n", num(result))
			result = calc.Add(result, 10)
			fmt.Fprintf(out, "+ 10 = %s\n", num(result))
			result, err = calc.Divide(result, 3)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "/ 3 = %s\n", num(result))
			return nil
		},
	}
}
