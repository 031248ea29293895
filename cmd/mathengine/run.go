package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mathengine/math-engine/internal/calculation"
	"github.com/mathengine/math-engine/internal/config"
	"github.com/mathengine/math-engine/internal/output"
	"github.com/mathengine/math-engine/internal/watch"
	"github.com/spf13/cobra"
)

type runOptions struct {
	format   string
	save     bool
	saveDir  string
	watch    bool
	debounce time.Duration
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	ro := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run SCRIPT",
		Short: "Run a YAML calculation script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output.GetFormatterByName(ro.format) == nil {
				return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, ro.format)
			}
			path := args[0]
			if !ro.watch {
				return runScriptOnce(cmd.Context(), cmd, opts, ro, path)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rerun := func() {
				if err := runScriptOnce(ctx, cmd, opts, ro, path); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				}
			}
			sw, err := watch.NewScriptWatcher(path, rerun)
			if err != nil {
				return err
			}
			sw.SetDebounceDelay(ro.debounce)
			sw.SetErrorHandler(func(err error) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Watch error: %v\n", err)
			})

			rerun()
			fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for changes. Press Ctrl+C to exit.\n", path)
			return sw.Watch(ctx)
		},
	}
	cmd.Flags().StringVarP(&ro.format, "format", "f", "console", "output format: console, json, csv")
	cmd.Flags().BoolVar(&ro.save, "save", false, "also save the report to a timestamped file")
	cmd.Flags().StringVar(&ro.saveDir, "save-dir", ".", "directory for saved reports")
	cmd.Flags().BoolVarP(&ro.watch, "watch", "w", false, "re-run the script whenever it changes")
	cmd.Flags().DurationVar(&ro.debounce, "debounce", watch.DefaultDebounce, "quiet period before re-running in watch mode")
	return cmd
}

// runScriptOnce loads the script, runs it in a fresh session and writes the
// report. A failing step still produces the partial report before the error
// is returned.
func runScriptOnce(ctx context.Context, cmd *cobra.Command, opts *rootOptions, ro *runOptions, path string) error {
	script, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return err
	}
	l, err := opts.newLogger(cmd, script)
	if err != nil {
		return err
	}
	engine := calculation.NewEngine(l)

	result, runErr := engine.RunScript(ctx, script)
	if result == nil {
		return runErr
	}
	if err := output.GenerateReport(cmd.OutOrStdout(), result, ro.format); err != nil {
		return err
	}
	if ro.save {
		filename, err := output.SaveReport(result, ro.format, ro.saveDir)
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to %s\n", filename)
	}
	return runErr
}
