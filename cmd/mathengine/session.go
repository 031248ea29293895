package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/mathengine/math-engine/internal/domain"
	"github.com/mathengine/math-engine/internal/output"
	"github.com/spf13/cobra"
)

func newSessionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Read steps from standard input against one calculator session",
		Long: "session reads one step per line, e.g. \"add 5 3\", \"mul last 2\", \"pow 2 10\" or \"last\".\n" +
			"Blank lines and lines starting with # are skipped; \"quit\" ends the session.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.newEngine(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			index := 0
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				if line == "quit" || line == "exit" {
					break
				}
				step, err := domain.ParseStep(line)
				if err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
					continue
				}
				index++
				res, err := engine.RunStep(index, step)
				if err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
					continue
				}
				fmt.Fprintf(out, "%s = %s\n", res.Expression, output.FormatNumber(res.Value, opts.precision))
			}
			return scanner.Err()
		},
	}
}
