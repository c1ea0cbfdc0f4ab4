package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/agrocalc"
	"github.com/aretw0/agrocalc/internal/cli"
	"github.com/aretw0/agrocalc/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var runOpts cli.RunOptions

var runCmd = &cobra.Command{
	Use:   "run [#MODULE]",
	Short: "Start the interactive calculator",
	Long: `Starts an interactive session. Type 'help' for the commands.
An optional "#MODULE" argument opens that calculator, like a URL fragment.
With --json the session speaks JSON-Lines on stdin/stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			runOpts.Fragment = args[0]
		}
		engine, err := newEngine(nil)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if !runOpts.JSON && cli.IsTerminal(os.Stdout) {
			tui.PrintBanner(os.Stdout, agrocalc.Version)
		}
		_, err = cli.Run(ctx, engine, logger, runOpts, os.Stdin, os.Stdout)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	runCmd.Flags().BoolVar(&runOpts.JSON, "json", false, "JSON-Lines input and output")
	runCmd.Flags().BoolVar(&runOpts.Plain, "plain", false, "print raw Markdown instead of rendering it")
	runCmd.Flags().IntVar(&runOpts.Width, "width", 0, "wrap rendered output at this width")
	rootCmd.AddCommand(runCmd)
}
